package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	appRepo     domain.ApplicationRepository
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	appRepo domain.ApplicationRepository,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		appRepo:     appRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	// 1. The posting company must exist and belong to the poster.
	company, err := u.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	if !domain.CanMutateCompany(userID, company) {
		return apperror.Forbidden("You can only post jobs for your own company")
	}

	// 2. Business validation
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !domain.ValidJobType(job.Type) {
		return apperror.BadRequest("Invalid job type")
	}
	if !domain.ValidExperienceLevel(job.Experience) {
		return apperror.BadRequest("Invalid experience level")
	}
	if job.Salary.Min != nil && job.Salary.Max != nil && *job.Salary.Min > *job.Salary.Max {
		return apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if !domain.ValidJobStatus(job.Status) {
		return apperror.BadRequest("Invalid job status")
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}

	job.PostedBy = userID
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) (*domain.JobPage, error) {
	// Normalize before the repository sees the filter.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Status == "" {
		filter.Status = domain.JobStatusActive
	}
	if !domain.ValidJobStatus(filter.Status) {
		return nil, apperror.BadRequest("Invalid job status")
	}

	switch filter.Sort {
	case domain.SortNewest, domain.SortOldest, domain.SortSalaryHigh, domain.SortSalaryLow:
	case domain.SortRelevance:
		// Relevance ranking needs a search term to rank against.
		if filter.Search == "" {
			filter.Sort = domain.SortNewest
		}
	default:
		filter.Sort = domain.SortNewest
	}

	jobs, total, err := u.jobRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	return &domain.JobPage{
		Jobs:        jobs,
		TotalPages:  totalPages(total, filter.Limit),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

// ListEmployerJobs returns every job across all companies the user owns,
// regardless of status.
func (u *jobUsecase) ListEmployerJobs(ctx context.Context, userID string) ([]domain.Job, error) {
	companies, err := u.companyRepo.FetchByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return []domain.Job{}, nil
	}

	ids := make([]string, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}

	jobs, err := u.jobRepo.FetchByCompanyIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID, id string, upd *domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	if !domain.CanMutateJob(userID, job) {
		return nil, apperror.Forbidden("Not authorized to update this job")
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, apperror.BadRequest("Title is required")
		}
		job.Title = title
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}
	if upd.Description != nil {
		job.Description = *upd.Description
	}
	if upd.Requirements != nil {
		job.Requirements = *upd.Requirements
	}
	if upd.Responsibilities != nil {
		job.Responsibilities = *upd.Responsibilities
	}
	if upd.Type != nil {
		if !domain.ValidJobType(*upd.Type) {
			return nil, apperror.BadRequest("Invalid job type")
		}
		job.Type = *upd.Type
	}
	if upd.Salary != nil {
		if upd.Salary.Min != nil && upd.Salary.Max != nil && *upd.Salary.Min > *upd.Salary.Max {
			return nil, apperror.BadRequest("Minimum salary cannot exceed maximum salary")
		}
		job.Salary = *upd.Salary
	}
	if upd.Experience != nil {
		if !domain.ValidExperienceLevel(*upd.Experience) {
			return nil, apperror.BadRequest("Invalid experience level")
		}
		job.Experience = *upd.Experience
	}
	if upd.Skills != nil {
		job.Skills = upd.Skills
	}
	if upd.Status != nil {
		if !domain.ValidJobStatus(*upd.Status) {
			return nil, apperror.BadRequest("Invalid job status")
		}
		job.Status = *upd.Status
	}
	if upd.Deadline != nil {
		job.Deadline = upd.Deadline
	}
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID, id string) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}

	if !domain.CanMutateJob(userID, job) {
		return apperror.Forbidden("Not authorized to delete this job")
	}

	// Applications reference the job; remove them first.
	if err := u.appRepo.DeleteByJobID(ctx, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}
