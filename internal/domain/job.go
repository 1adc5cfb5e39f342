package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// Job statuses
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

var jobTypes = map[string]bool{
	"Full-time":  true,
	"Part-time":  true,
	"Contract":   true,
	"Internship": true,
	"Remote":     true,
}

var experienceLevels = map[string]bool{
	"Entry Level":  true,
	"Mid Level":    true,
	"Senior Level": true,
	"Executive":    true,
}

func ValidJobType(t string) bool         { return jobTypes[t] }
func ValidExperienceLevel(l string) bool { return experienceLevels[l] }

func ValidJobStatus(s string) bool {
	return s == JobStatusActive || s == JobStatusClosed || s == JobStatusDraft
}

// Salary is an optional range on a job. Min/Max nil means the posting does
// not disclose a salary.
type Salary struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency"`
	Hidden   bool     `json:"hidden"`
}

type Job struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	CompanyID        string     `json:"company"`
	Location         string     `json:"location"`
	Description      string     `json:"description"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Type             string     `json:"type"`
	Salary           Salary     `json:"salary"`
	Experience       string     `json:"experience"`
	Skills           []string   `json:"skills"`
	Status           string     `json:"status"`
	PostedBy         string     `json:"postedBy"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Joined company data for list/detail responses
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyLogoURL *string `json:"company_logo,omitempty"`
}

// Job sort keys recognized by the listing endpoint.
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortSalaryHigh = "salary_high"
	SortSalaryLow  = "salary_low"
	SortRelevance  = "relevance"
)

// JobFilter is the structured form of the listing query parameters. The
// usecase normalizes it (sort whitelist, page/limit clamping, default status)
// before it reaches the repository.
type JobFilter struct {
	Search     string // full-text over title/description/requirements/responsibilities
	Location   string // case-insensitive substring
	Type       string
	Experience string
	CompanyID  string
	SalaryMin  *float64 // inclusive; jobs without a salary are excluded when set
	SalaryMax  *float64
	Skills     []string // ANY-match against the job's skill set
	Status     string   // defaults to active
	Sort       string
	Page       int
	Limit      int
}

// JobUpdate carries mutable fields; nil means unchanged.
type JobUpdate struct {
	Title            *string
	Location         *string
	Description      *string
	Requirements     *string
	Responsibilities *string
	Type             *string
	Salary           *Salary
	Experience       *string
	Skills           []string
	Status           *string
	Deadline         *time.Time
}

// JobPage is the paginated listing envelope.
type JobPage struct {
	Jobs        []Job `json:"jobs"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Total       int64 `json:"total"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Fetch(ctx context.Context, filter JobFilter) ([]Job, int64, error)
	FetchByCompanyIDs(ctx context.Context, companyIDs []string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) (*JobPage, error)
	ListEmployerJobs(ctx context.Context, userID string) ([]Job, error)
	UpdateJob(ctx context.Context, userID, id string, upd *JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, userID, id string) error
}
