// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a new account after checking both unique identifiers.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.UserOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	existing, err := srv.userRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing user")
	}
	if existing != nil {
		return nil, domainerrors.ErrDuplicateUser.WrapMessage("registration rejected")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		// A hashing failure is an internal error, distinct from bad
		// credentials.
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hashed,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}

// Login verifies credentials and issues a one-hour bearer token. The failure
// for an unknown email is indistinguishable from a wrong password.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login successful", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, UserID: user.ID}, nil
}

// ListUsers returns every registered user without password material.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}
