package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, role string) (*domain.User, string, error) {
	// 1. Input validation
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, "", apperror.BadRequest("Name and email are required")
	}
	if len(password) < 6 {
		return nil, "", apperror.BadRequest("Password must be at least 6 characters")
	}
	if role == "" {
		role = domain.RoleJobseeker
	}
	if !domain.ValidRole(role) {
		return nil, "", apperror.BadRequest("Invalid role")
	}

	// 2. Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 3. Persist; the unique index on email closes the race with a
	// concurrent registration.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, "", apperror.Conflict("An account with this email already exists")
		}
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Invalid credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
