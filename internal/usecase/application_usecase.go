package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo     domain.ApplicationRepository
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, applicantID, jobID, coverLetter string) (*domain.Application, error) {
	// 1. The job must exist and be open for applications.
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}
	if job.Deadline != nil && time.Now().After(*job.Deadline) {
		return nil, apperror.BadRequest("The application deadline for this job has passed")
	}

	// 2. One application per job per applicant.
	exists, err := u.appRepo.Exists(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// 3. A resume on file is required before applying.
	applicant, err := u.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	if applicant.ResumeURL == nil || *applicant.ResumeURL == "" {
		return nil, apperror.BadRequest("Please upload a resume before applying")
	}

	now := time.Now()
	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CompanyID:   job.CompanyID,
		CoverLetter: coverLetter,
		ResumeURL:   *applicant.ResumeURL,
		Status:      domain.ApplicationStatusPending,
		AppliedAt:   now,
		LastUpdated: now,
	}

	// The unique index on (job, applicant) closes the race between the
	// existence check and the insert.
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) MyApplications(ctx context.Context, applicantID string) ([]domain.Application, error) {
	return u.appRepo.GetByApplicant(ctx, applicantID)
}

func (u *applicationUsecase) ListForJob(ctx context.Context, userID, jobID string) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	company, err := u.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	if !domain.CanViewJobApplications(userID, company) {
		return nil, apperror.Forbidden("Not authorized to view applications for this job")
	}

	return u.appRepo.GetByJobID(ctx, jobID)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID, applicationID, status string) error {
	// 1. Status must be a recognized value.
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid application status")
	}

	// 2. The application and its owning company must exist.
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	company, err := u.companyRepo.GetByID(ctx, app.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}

	// 3. Only the company owner may move an application.
	if !domain.CanUpdateApplicationStatus(userID, company) {
		return apperror.Forbidden("Not authorized to update this application")
	}

	return u.appRepo.UpdateStatus(ctx, applicationID, status)
}
