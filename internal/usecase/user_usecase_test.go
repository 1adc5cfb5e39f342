package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserFixture() (*MockUserRepo, *MockJobRepo, *MockObjectStore, domain.UserUsecase) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	store := new(MockObjectStore)
	uc := usecase.NewUserUsecase(userRepo, jobRepo, store)
	return userRepo, jobRepo, store, uc
}

func TestToggleSavedJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should save when not yet saved", func(t *testing.T) {
		userRepo, jobRepo, _, uc := newUserFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(&domain.Job{ID: "job1"}, nil)
		userRepo.On("IsJobSaved", ctx, "user1", "job1").Return(false, nil)
		userRepo.On("SaveJob", ctx, "user1", "job1").Return(nil)

		saved, err := uc.ToggleSavedJob(ctx, "user1", "job1")
		assert.NoError(t, err)
		assert.True(t, saved)
	})

	t.Run("Should unsave when already saved", func(t *testing.T) {
		userRepo, jobRepo, _, uc := newUserFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(&domain.Job{ID: "job1"}, nil)
		userRepo.On("IsJobSaved", ctx, "user1", "job1").Return(true, nil)
		userRepo.On("UnsaveJob", ctx, "user1", "job1").Return(nil)

		saved, err := uc.ToggleSavedJob(ctx, "user1", "job1")
		assert.NoError(t, err)
		assert.False(t, saved)
	})

	t.Run("Should 404 for a missing job", func(t *testing.T) {
		userRepo, jobRepo, _, uc := newUserFixture()

		jobRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.ToggleSavedJob(ctx, "user1", "ghost")
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "SaveJob")
	})
}

func TestUpdateUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should merge only the provided fields", func(t *testing.T) {
		userRepo, _, _, uc := newUserFixture()

		existing := &domain.User{
			ID:     "user1",
			Name:   "Sam",
			Skills: []string{"Go"},
		}
		userRepo.On("GetByID", ctx, "user1").Return(existing, nil)
		userRepo.On("UpdateProfile", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		bio := "Hello"
		user, err := uc.UpdateProfile(ctx, "user1", &domain.ProfileUpdate{Bio: &bio})
		assert.NoError(t, err)
		assert.Equal(t, "Hello", *user.Bio)
		assert.Equal(t, "Sam", user.Name)
		assert.Equal(t, []string{"Go"}, user.Skills)
	})
}

func TestUploadResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete the previous object before storing the new one", func(t *testing.T) {
		userRepo, _, store, uc := newUserFixture()

		old := "https://bucket.s3.amazonaws.com/resumes/user1/old.pdf"
		store.On("IsConfigured").Return(true)
		userRepo.On("GetByID", ctx, "user1").Return(&domain.User{ID: "user1", ResumeURL: &old}, nil)
		store.On("KeyFromURL", old).Return("resumes/user1/old.pdf")
		store.On("Delete", ctx, "resumes/user1/old.pdf").Return(nil)
		store.On("Put", ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
			Return("https://bucket.s3.amazonaws.com/resumes/user1/new.pdf", nil)
		userRepo.On("SetResumeURL", ctx, "user1", "https://bucket.s3.amazonaws.com/resumes/user1/new.pdf").Return(nil)

		url, err := uc.UploadResume(ctx, "user1", "cv.pdf", []byte("%PDF-1.4 test"))
		assert.NoError(t, err)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/resumes/user1/new.pdf", url)
		store.AssertExpectations(t)
	})

	t.Run("Should reject disallowed file types", func(t *testing.T) {
		_, _, store, uc := newUserFixture()

		store.On("IsConfigured").Return(true)

		_, err := uc.UploadResume(ctx, "user1", "virus.exe", []byte{0x4D, 0x5A})
		assert.Error(t, err)
		store.AssertNotCalled(t, "Put")
	})

	t.Run("Should fail when storage is unconfigured", func(t *testing.T) {
		_, _, store, uc := newUserFixture()

		store.On("IsConfigured").Return(false)

		_, err := uc.UploadResume(ctx, "user1", "cv.pdf", []byte("%PDF-1.4"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})
}
