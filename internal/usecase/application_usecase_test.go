package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func newApplicationFixture() (*MockApplicationRepo, *MockJobRepo, *MockCompanyRepo, *MockUserRepo, domain.ApplicationUsecase) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	companyRepo := new(MockCompanyRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, companyRepo, userRepo)
	return appRepo, jobRepo, companyRepo, userRepo, uc
}

func activeJob() *domain.Job {
	return &domain.Job{
		ID:        "job1",
		CompanyID: "company1",
		Status:    domain.JobStatusActive,
		PostedBy:  "employer1",
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create a pending application with resume snapshot", func(t *testing.T) {
		appRepo, jobRepo, _, userRepo, uc := newApplicationFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(activeJob(), nil)
		appRepo.On("Exists", ctx, "job1", "seeker1").Return(false, nil)
		userRepo.On("GetByID", ctx, "seeker1").Return(&domain.User{
			ID:        "seeker1",
			ResumeURL: strPtr("https://bucket/resumes/seeker1/cv.pdf"),
		}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app, err := uc.Apply(ctx, "seeker1", "job1", "hello")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Equal(t, "company1", app.CompanyID)
		assert.Equal(t, "https://bucket/resumes/seeker1/cv.pdf", app.ResumeURL)
	})

	t.Run("Should reject a duplicate application", func(t *testing.T) {
		appRepo, jobRepo, _, _, uc := newApplicationFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(activeJob(), nil)
		appRepo.On("Exists", ctx, "job1", "seeker1").Return(true, nil)

		_, err := uc.Apply(ctx, "seeker1", "job1", "")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should reject when the deadline has just passed", func(t *testing.T) {
		_, jobRepo, _, _, uc := newApplicationFixture()

		past := time.Now().Add(-1 * time.Second)
		job := activeJob()
		job.Deadline = &past
		jobRepo.On("GetByID", ctx, "job1").Return(job, nil)

		_, err := uc.Apply(ctx, "seeker1", "job1", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deadline")
	})

	t.Run("Should reject when no resume is on file", func(t *testing.T) {
		appRepo, jobRepo, _, userRepo, uc := newApplicationFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(activeJob(), nil)
		appRepo.On("Exists", ctx, "job1", "seeker1").Return(false, nil)
		userRepo.On("GetByID", ctx, "seeker1").Return(&domain.User{ID: "seeker1"}, nil)

		_, err := uc.Apply(ctx, "seeker1", "job1", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "resume")
	})

	t.Run("Should reject applications to closed jobs", func(t *testing.T) {
		_, jobRepo, _, _, uc := newApplicationFixture()

		job := activeJob()
		job.Status = domain.JobStatusClosed
		jobRepo.On("GetByID", ctx, "job1").Return(job, nil)

		_, err := uc.Apply(ctx, "seeker1", "job1", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting")
	})

	t.Run("Should surface a repository duplicate as Conflict", func(t *testing.T) {
		appRepo, jobRepo, _, userRepo, uc := newApplicationFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(activeJob(), nil)
		appRepo.On("Exists", ctx, "job1", "seeker1").Return(false, nil)
		userRepo.On("GetByID", ctx, "seeker1").Return(&domain.User{
			ID:        "seeker1",
			ResumeURL: strPtr("https://bucket/resumes/seeker1/cv.pdf"),
		}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := uc.Apply(ctx, "seeker1", "job1", "")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	application := &domain.Application{
		ID:        "app1",
		JobID:     "job1",
		CompanyID: "company1",
		Status:    domain.ApplicationStatusPending,
	}
	company := &domain.Company{ID: "company1", OwnerID: "employer1"}

	t.Run("Should update status for the company owner", func(t *testing.T) {
		appRepo, _, companyRepo, _, uc := newApplicationFixture()

		appRepo.On("GetByID", ctx, "app1").Return(application, nil)
		companyRepo.On("GetByID", ctx, "company1").Return(company, nil)
		appRepo.On("UpdateStatus", ctx, "app1", domain.ApplicationStatusShortlisted).Return(nil)

		err := uc.UpdateStatus(ctx, "employer1", "app1", domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown status before touching storage", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationFixture()

		err := uc.UpdateStatus(ctx, "employer1", "app1", "archived")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application status")
		appRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should forbid users who do not own the company", func(t *testing.T) {
		appRepo, _, companyRepo, _, uc := newApplicationFixture()

		appRepo.On("GetByID", ctx, "app1").Return(application, nil)
		companyRepo.On("GetByID", ctx, "company1").Return(company, nil)

		err := uc.UpdateStatus(ctx, "someone_else", "app1", domain.ApplicationStatusHired)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
		appRepo.AssertNotCalled(t, "UpdateStatus")
	})
}

func TestListForJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid listing applicants for another employer's job", func(t *testing.T) {
		appRepo, jobRepo, companyRepo, _, uc := newApplicationFixture()

		jobRepo.On("GetByID", ctx, "job1").Return(activeJob(), nil)
		companyRepo.On("GetByID", ctx, "company1").Return(&domain.Company{ID: "company1", OwnerID: "employer1"}, nil)

		_, err := uc.ListForJob(ctx, "intruder", "job1")
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "GetByJobID")
	})
}
