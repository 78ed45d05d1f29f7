package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/akmalhzn/portfolio-api/internal/domain/entity"
	repo "github.com/akmalhzn/portfolio-api/internal/domain/repository"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

// AuthService issues and backs the admin session tokens. Token validity is
// signature + expiry only; there is no revocation list.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates the admin account and returns a session token.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return "", apperr.Validation("email, password and name are required")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", apperr.Store(err, "failed to hash password")
	}

	u := &entity.User{
		Email:    email,
		Password: hash,
		Name:     name,
		Role:     entity.RoleAdmin,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return "", apperr.Conflict("user already exists")
		}
		return "", err
	}

	token, _, err := s.JWT.Generate(u.ID.Hex(), u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("token generation failed")
		return "", apperr.Store(err, "failed to issue token")
	}
	return token, nil
}

// Login checks credentials and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return "", apperr.Unauthenticated("invalid credentials")
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", apperr.Unauthenticated("invalid credentials")
	}

	token, _, err := s.JWT.Generate(u.ID.Hex(), u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("token generation failed")
		return "", apperr.Store(err, "failed to issue token")
	}
	return token, nil
}

// Verify parses a bearer token and returns its claims, or an authorization
// error when the token is missing, malformed, or expired.
func (s *AuthService) Verify(token string) (*helpers.Claims, error) {
	if token == "" {
		return nil, apperr.Unauthorized("missing token")
	}
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, apperr.Unauthorized("invalid or expired token")
	}
	return claims, nil
}
