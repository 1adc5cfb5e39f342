package domain

import "context"

// JobDescriptionInput holds the fields interpolated into the job description
// prompt.
type JobDescriptionInput struct {
	Title       string `json:"title" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	Industry    string `json:"industry" binding:"required"`
	JobType     string `json:"jobType" binding:"required"`
	Experience  string `json:"experience" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

// SearchPreferences are the jobseeker's stated preferences for search
// recommendations.
type SearchPreferences struct {
	Industries []string `json:"industries"`
	JobTypes   []string `json:"jobTypes"`
	Locations  []string `json:"locations"`
	MinSalary  float64  `json:"minSalary"`
}

// ApplicationInsight is one row of the employer's applicant analysis. The
// skill intersections are computed deterministically; the score comes from a
// pluggable scorer.
type ApplicationInsight struct {
	ApplicationID  string   `json:"applicationId"`
	ApplicantName  string   `json:"applicantName"`
	Score          int      `json:"aiScore"`
	Recommendation string   `json:"recommendation"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
}

// AIUsecase is the text bridge to the external generation service. Each
// operation assembles a prompt from record fields, forwards it, and returns
// the raw response. No retries, no caching, no response parsing.
type AIUsecase interface {
	GenerateJobDescription(ctx context.Context, in JobDescriptionInput) (string, error)
	AnalyzeResume(ctx context.Context, userID, jobID string) (string, error)
	GenerateCoverLetter(ctx context.Context, userID, jobID string) (string, error)
	SearchRecommendations(ctx context.Context, userID string, prefs SearchPreferences) (string, error)
	AnalyzeApplications(ctx context.Context, userID, jobID string) ([]ApplicationInsight, error)
}
