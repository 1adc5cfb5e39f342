package domain

import (
	"context"
	"time"
)

// Application status values. Any status may be set to any other by an
// authorized employer; only membership in this set is enforced.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

var applicationStatuses = map[string]bool{
	ApplicationStatusPending:     true,
	ApplicationStatusReviewed:    true,
	ApplicationStatusShortlisted: true,
	ApplicationStatusRejected:    true,
	ApplicationStatusHired:       true,
}

// ValidApplicationStatus reports whether status is one of the five values.
func ValidApplicationStatus(status string) bool {
	return applicationStatuses[status]
}

// Application is a jobseeker's submission against a job. CompanyID is
// denormalized from the job and ResumeURL is a snapshot of the applicant's
// resume at apply time, not a live reference.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job"`
	ApplicantID string    `json:"applicant"`
	CompanyID   string    `json:"company"`
	CoverLetter string    `json:"cover_letter"`
	ResumeURL   string    `json:"resume"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	LastUpdated time.Time `json:"last_updated"`

	// Joined data for list responses
	ApplicantName   *string `json:"applicant_name,omitempty"`
	ApplicantEmail  *string `json:"applicant_email,omitempty"`
	ApplicantAvatar *string `json:"applicant_avatar,omitempty"`
	JobTitle        *string `json:"job_title,omitempty"`
	JobStatus       *string `json:"job_status,omitempty"`
	CompanyName     *string `json:"company_name,omitempty"`
	CompanyLogoURL  *string `json:"company_logo,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteByJobID(ctx context.Context, jobID string) error
}

type ApplicationUsecase interface {
	// Jobseeker operations
	Apply(ctx context.Context, applicantID, jobID, coverLetter string) (*Application, error)
	MyApplications(ctx context.Context, applicantID string) ([]Application, error)

	// Employer operations
	ListForJob(ctx context.Context, userID, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, userID, applicationID, status string) error
}
