package auth

import (
	"context"
	"errors"
	"time"

	"github.com/Huntitude/locallibrary/internal/user"
)

var ErrUnauthorized = errors.New("unauthorized")

const accessTokenTTL = 24 * time.Hour

// Service issues tokens for library members.
type Service struct {
	secret string
	users  user.Repository
}

func NewService(secret string, users user.Repository) *Service {
	return &Service{secret: secret, users: users}
}

// Register creates a patron account with a hashed password.
func (s *Service) Register(ctx context.Context, email, username, password string) (user.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	u := user.User{
		Email:    email,
		Username: username,
		Password: hash,
		Role:     user.RolePatron,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Login verifies credentials and returns an access token with its TTL in
// seconds.
func (s *Service) Login(ctx context.Context, email, password string) (string, int, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || !VerifyPassword(u.Password, password) {
		return "", 0, ErrUnauthorized
	}

	token, _, err := GenerateToken(s.secret, u.ID, u.Role, accessTokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, int(accessTokenTTL.Seconds()), nil
}
