package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*MockUserRepo, *auth.Manager, domain.AuthUsecase) {
	userRepo := new(MockUserRepo)
	tokens := auth.NewManager("test-secret", time.Hour)
	uc := usecase.NewAuthUsecase(userRepo, tokens)
	return userRepo, tokens, uc
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a jobseeker by default and return a parsable token", func(t *testing.T) {
		userRepo, tokens, uc := newAuthFixture()

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = "user1"
		}).Return(nil)

		user, token, err := uc.Register(ctx, "Sam", "SAM@Example.com", "secret1", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleJobseeker, user.Role)
		assert.Equal(t, "sam@example.com", user.Email)

		claims, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, "user1", claims.Subject)
		assert.Equal(t, domain.RoleJobseeker, claims.Role)
	})

	t.Run("Should map duplicate email to Conflict", func(t *testing.T) {
		userRepo, _, uc := newAuthFixture()

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate)

		_, _, err := uc.Register(ctx, "Sam", "sam@example.com", "secret1", "")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		userRepo, _, uc := newAuthFixture()

		_, _, err := uc.Register(ctx, "Sam", "sam@example.com", "abc", "")
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	stored := &domain.User{ID: "user1", Email: "sam@example.com", PasswordHash: string(hash), Role: domain.RoleJobseeker}

	t.Run("Should accept correct credentials", func(t *testing.T) {
		userRepo, _, uc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "sam@example.com").Return(stored, nil)

		user, token, err := uc.Login(ctx, "sam@example.com", "secret1")
		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		userRepo, _, uc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "sam@example.com").Return(stored, nil)

		_, _, err := uc.Login(ctx, "sam@example.com", "wrong")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Should not reveal whether the account exists", func(t *testing.T) {
		userRepo, _, uc := newAuthFixture()

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(ctx, "ghost@example.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})
}
