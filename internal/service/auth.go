package service

import (
	"context"
	"strings"
	"time"

	"github.com/codermarch/taskboard/internal/domain/user"
	"github.com/codermarch/taskboard/internal/security"
	"github.com/codermarch/taskboard/internal/store"
	"github.com/google/uuid"
)

// TokenIssuer is what Login needs from the jwt manager.
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}

// Auth orchestrates the credential service and the store for
// registration and login.
type Auth struct {
	store  *store.Manager
	tokens TokenIssuer
}

func NewAuth(st *store.Manager, tokens TokenIssuer) *Auth {
	return &Auth{
		store:  st,
		tokens: tokens,
	}
}

// Register creates a new user. Email uniqueness is checked inside the
// same Update that persists the user, so two concurrent registrations
// with the same email cannot both land.
func (s *Auth) Register(ctx context.Context, req user.RegisterRequest) (user.Public, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)

	if email == "" {
		return user.Public{}, invalid("email", "is required")
	}

	if name == "" {
		return user.Public{}, invalid("name", "is required")
	}

	if len(req.Password) < 6 {
		return user.Public{}, invalid("password", "must be at least 6 characters")
	}

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		return user.Public{}, err
	}

	now := time.Now().UTC()

	newUser := user.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    now,
	}

	err = s.store.Update(ctx, func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == email {
				return user.ErrEmailTaken
			}
		}

		snap.Users = append(snap.Users, newUser)
		return nil
	})

	if err != nil {
		return user.Public{}, err
	}

	return newUser.Public(), nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password yield the same error.
func (s *Auth) Login(ctx context.Context, req user.LoginRequest) (user.Public, string, error) {
	if req.Email == "" || req.Password == "" {
		return user.Public{}, "", invalid("email", "and password are required")
	}

	var found user.User

	err := s.store.View(ctx, func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == req.Email {
				found = u
				return nil
			}
		}

		return user.ErrInvalidCredentials
	})

	if err != nil {
		return user.Public{}, "", err
	}

	err = security.CheckPassword(found.PasswordHash, req.Password)

	if err != nil {
		return user.Public{}, "", user.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(found.ID)

	if err != nil {
		return user.Public{}, "", err
	}

	return found.Public(), token, nil
}
