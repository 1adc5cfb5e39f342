package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/genai"

	"github.com/stretchr/testify/assert"
)

func newAIFixture(gen genai.Generator) (*MockUserRepo, *MockJobRepo, *MockCompanyRepo, *MockApplicationRepo, domain.AIUsecase) {
	userRepo := new(MockUserRepo)
	jobRepo := new(MockJobRepo)
	companyRepo := new(MockCompanyRepo)
	appRepo := new(MockApplicationRepo)
	uc := usecase.NewAIUsecase(gen, genai.NopScorer{}, userRepo, jobRepo, companyRepo, appRepo)
	return userRepo, jobRepo, companyRepo, appRepo, uc
}

func TestGenerateJobDescription(t *testing.T) {
	ctx := context.Background()

	input := domain.JobDescriptionInput{
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		Industry:    "Software",
		JobType:     "Full-time",
		Experience:  "Mid Level",
		Location:    "Remote",
	}

	t.Run("Should return the generated text as-is", func(t *testing.T) {
		_, _, _, _, uc := newAIFixture(fakeGenerator{text: "A great job."})

		text, err := uc.GenerateJobDescription(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "A great job.", text)
	})

	t.Run("Should map generator failure to 502", func(t *testing.T) {
		_, _, _, _, uc := newAIFixture(fakeGenerator{err: errors.New("quota exceeded")})

		_, err := uc.GenerateJobDescription(ctx, input)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 502, appErr.Code)
	})

	t.Run("Should map the disabled generator to 503", func(t *testing.T) {
		_, _, _, _, uc := newAIFixture(genai.Disabled{})

		_, err := uc.GenerateJobDescription(ctx, input)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 503, appErr.Code)
	})
}

func TestAnalyzeResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should require a resume on file", func(t *testing.T) {
		userRepo, jobRepo, _, _, uc := newAIFixture(fakeGenerator{text: "analysis"})

		userRepo.On("GetByID", ctx, "seeker1").Return(&domain.User{ID: "seeker1", Name: "Sam"}, nil)
		jobRepo.On("GetByID", ctx, "job1").Return(&domain.Job{ID: "job1", Title: "Backend Engineer"}, nil)

		_, err := uc.AnalyzeResume(ctx, "seeker1", "job1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "resume")
	})
}

func TestAnalyzeApplications(t *testing.T) {
	ctx := context.Background()

	job := &domain.Job{
		ID:        "job1",
		CompanyID: "company1",
		Skills:    []string{"Go", "Postgres", "Docker"},
	}
	company := &domain.Company{ID: "company1", OwnerID: "employer1"}

	t.Run("Should split matching and missing skills case-insensitively", func(t *testing.T) {
		userRepo, jobRepo, companyRepo, appRepo, uc := newAIFixture(fakeGenerator{})

		jobRepo.On("GetByID", ctx, "job1").Return(job, nil)
		companyRepo.On("GetByID", ctx, "company1").Return(company, nil)
		appRepo.On("GetByJobID", ctx, "job1").Return([]domain.Application{
			{ID: "app1", ApplicantID: "seeker1"},
		}, nil)
		userRepo.On("GetByID", ctx, "seeker1").Return(&domain.User{
			ID:     "seeker1",
			Name:   "Sam",
			Skills: []string{"go", "postgres", "React"},
		}, nil)

		insights, err := uc.AnalyzeApplications(ctx, "employer1", "job1")
		assert.NoError(t, err)
		assert.Len(t, insights, 1)
		assert.Equal(t, []string{"Go", "Postgres"}, insights[0].MatchingSkills)
		assert.Equal(t, []string{"Docker"}, insights[0].MissingSkills)
		assert.Equal(t, 50, insights[0].Score)
		assert.Equal(t, "Average candidate - Consider", insights[0].Recommendation)
	})

	t.Run("Should forbid non-owners", func(t *testing.T) {
		_, jobRepo, companyRepo, appRepo, uc := newAIFixture(fakeGenerator{})

		jobRepo.On("GetByID", ctx, "job1").Return(job, nil)
		companyRepo.On("GetByID", ctx, "company1").Return(company, nil)

		_, err := uc.AnalyzeApplications(ctx, "intruder", "job1")
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "GetByJobID")
	})
}
