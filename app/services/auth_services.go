package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/pkg/apperr"
	"github.com/shashiranjanraj/shopadmin/pkg/auth"
	"github.com/shashiranjanraj/shopadmin/pkg/collection"
	"github.com/shashiranjanraj/shopadmin/pkg/rbac"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a
// wrong password. The two cases are not distinguished.
var ErrInvalidCredentials = errors.New("invalid email or password")

// demoAccounts are the built-in administrator logins.
var demoAccounts = []struct {
	user     models.User
	password string
}{
	{models.User{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin}, "admin123"},
	{models.User{ID: "2", Name: "Editor User", Email: "editor@example.com", Role: models.RoleEditor}, "editor123"},
}

// DemoUsers returns the built-in accounts with bcrypt password hashes.
func DemoUsers() ([]models.User, error) {
	users := make([]models.User, 0, len(demoAccounts))
	for _, a := range demoAccounts {
		hash, err := auth.HashPassword(a.password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.user.Email, err)
		}
		u := a.user
		u.PasswordHash = hash
		users = append(users, u)
	}
	return users, nil
}

// Session is the login response.
type Session struct {
	Token       string      `json:"token"`
	ExpiresAt   time.Time   `json:"expiresAt"`
	User        models.User `json:"user"`
	Permissions []string    `json:"permissions"`
}

// Profile is the current user with the permissions of their role.
type Profile struct {
	User        models.User `json:"user"`
	Permissions []string    `json:"permissions"`
}

type AuthService struct {
	users []models.User
}

func NewAuthService(users []models.User) *AuthService {
	return &AuthService{users: users}
}

// Login checks the credentials and issues a token valid for a day, or for
// a week when rememberMe is set.
func (s *AuthService) Login(_ context.Context, in models.LoginInput) (Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, ok := collection.First(s.users, func(u models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok || !auth.CheckPassword(user.PasswordHash, in.Password) {
		return Session{}, ErrInvalidCredentials
	}

	ttl := auth.SessionTTL
	if in.RememberMe {
		ttl = auth.RememberTTL
	}
	token, expires, err := auth.GenerateToken(user.ID, user.Email, user.Role, ttl)
	if err != nil {
		return Session{}, apperr.Internal("Failed to issue token", err)
	}

	return Session{
		Token:       token,
		ExpiresAt:   expires.UTC(),
		User:        user,
		Permissions: rbac.Permissions(user.Role),
	}, nil
}

// Me returns the profile of the user a token was issued to.
func (s *AuthService) Me(_ context.Context, userID string) (Profile, error) {
	user, ok := collection.First(s.users, func(u models.User) bool { return u.ID == userID })
	if !ok {
		return Profile{}, apperr.NotFound("User not found", nil)
	}
	return Profile{User: user, Permissions: rbac.Permissions(user.Role)}, nil
}
