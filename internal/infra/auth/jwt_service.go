package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// accessTokenTTL is the fixed lifetime of issued bearer tokens.
const accessTokenTTL = time.Hour

// jwtService implements the TokenService interface using HMAC-signed JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. The signing secret comes
// from process-wide configuration; no rotation is modeled.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    accessTokenTTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token embedding the user id, expiring one hour
// from issuance.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID.String(),   // Subject (who the token is for)
		"iat": now.Unix(),        // Issued At
		"exp": now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a token string, returning the embedded user
// id. Malformed, badly signed, and expired tokens all map to
// service.ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return userID, nil
}
