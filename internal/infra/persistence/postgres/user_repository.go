package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository. It returns the
// repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. The unique indexes on email and username make
// the store the final authority on duplicates.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUser.WrapMessage("email or username already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByEmailOrUsername retrieves a user matching either identifier.
func (repo *userRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Or("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email or username")
	}

	return toUserDomain(&userM), nil
}

// ListAll returns every registered user.
func (repo *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		Username:     userM.Username,
		Name:         userM.Name,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}
