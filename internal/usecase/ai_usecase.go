package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/genai"
	"go-jobboard-backend/pkg/logger"
)

type aiUsecase struct {
	generator   genai.Generator
	scorer      genai.Scorer
	userRepo    domain.UserRepository
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
	appRepo     domain.ApplicationRepository
}

func NewAIUsecase(
	generator genai.Generator,
	scorer genai.Scorer,
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
	appRepo domain.ApplicationRepository,
) domain.AIUsecase {
	return &aiUsecase{
		generator:   generator,
		scorer:      scorer,
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		appRepo:     appRepo,
	}
}

// generate forwards a prompt and translates bridge failures.
func (u *aiUsecase) generate(ctx context.Context, prompt string) (string, error) {
	text, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, genai.ErrNotConfigured) {
			return "", apperror.ServiceUnavailable("AI features are not configured")
		}
		logger.Log.Error("text generation failed", "error", err)
		return "", apperror.BadGateway("The AI service is currently unavailable", err)
	}
	return text, nil
}

func (u *aiUsecase) GenerateJobDescription(ctx context.Context, in domain.JobDescriptionInput) (string, error) {
	prompt := genai.JobDescriptionPrompt(in.Title, in.CompanyName, in.Industry, in.JobType, in.Experience, in.Location)
	return u.generate(ctx, prompt)
}

func (u *aiUsecase) AnalyzeResume(ctx context.Context, userID, jobID string) (string, error) {
	user, job, err := u.loadUserAndJob(ctx, userID, jobID)
	if err != nil {
		return "", err
	}
	if user.ResumeURL == nil || *user.ResumeURL == "" {
		return "", apperror.BadRequest("Please upload a resume first")
	}

	prompt := genai.ResumeAnalysisPrompt(resumeText(user), jobText(job))
	return u.generate(ctx, prompt)
}

func (u *aiUsecase) GenerateCoverLetter(ctx context.Context, userID, jobID string) (string, error) {
	user, job, err := u.loadUserAndJob(ctx, userID, jobID)
	if err != nil {
		return "", err
	}

	prompt := genai.CoverLetterPrompt(resumeText(user), jobText(job), user.Name)
	return u.generate(ctx, prompt)
}

func (u *aiUsecase) SearchRecommendations(ctx context.Context, userID string, prefs domain.SearchPreferences) (string, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", err
	}

	prompt := genai.SearchRecommendationsPrompt(resumeText(user), preferencesText(prefs))
	return u.generate(ctx, prompt)
}

// AnalyzeApplications scores every applicant for a job the caller's company
// owns. Skill overlap is computed here; the numeric score comes from the
// injected scorer.
func (u *aiUsecase) AnalyzeApplications(ctx context.Context, userID, jobID string) ([]domain.ApplicationInsight, error) {
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
		return nil, apperror.Forbidden("Not authorized to analyze applications for this job")
	}

	apps, err := u.appRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	insights := make([]domain.ApplicationInsight, 0, len(apps))
	for _, app := range apps {
		applicant, err := u.userRepo.GetByID(ctx, app.ApplicantID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}

		matching, missing := skillOverlap(applicant.Skills, job.Skills)
		score, err := u.scorer.Score(ctx, genai.ScoreInput{
			ApplicantSkills: applicant.Skills,
			JobSkills:       job.Skills,
			CoverLetter:     app.CoverLetter,
		})
		if err != nil {
			return nil, apperror.BadGateway("Application scoring failed", err)
		}

		insights = append(insights, domain.ApplicationInsight{
			ApplicationID:  app.ID,
			ApplicantName:  applicant.Name,
			Score:          score,
			Recommendation: recommendationFor(score),
			MatchingSkills: matching,
			MissingSkills:  missing,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Score > insights[j].Score
	})
	return insights, nil
}

func (u *aiUsecase) loadUserAndJob(ctx context.Context, userID, jobID string) (*domain.User, *domain.Job, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("User not found")
		}
		return nil, nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Job not found")
		}
		return nil, nil, err
	}
	return user, job, nil
}

// resumeText flattens a user's profile into the plain-text form the prompts
// expect.
func resumeText(user *domain.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", user.Name)
	if user.Location != nil {
		fmt.Fprintf(&b, "Location: %s\n", *user.Location)
	}
	if user.Bio != nil {
		fmt.Fprintf(&b, "Bio: %s\n", *user.Bio)
	}
	if len(user.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(user.Skills, ", "))
	}
	if len(user.Experience) > 0 {
		b.WriteString("\nExperience:\n")
		for _, exp := range user.Experience {
			fmt.Fprintf(&b, "- %s at %s (%s", exp.Title, exp.Company, exp.From.Format("Jan 2006"))
			if exp.Current {
				b.WriteString(" - present)")
			} else if exp.To != nil {
				fmt.Fprintf(&b, " - %s)", exp.To.Format("Jan 2006"))
			} else {
				b.WriteString(")")
			}
			if exp.Description != nil {
				fmt.Fprintf(&b, ": %s", *exp.Description)
			}
			b.WriteString("\n")
		}
	}
	if len(user.Education) > 0 {
		b.WriteString("\nEducation:\n")
		for _, edu := range user.Education {
			fmt.Fprintf(&b, "- %s in %s, %s\n", edu.Degree, edu.FieldOfStudy, edu.School)
		}
	}
	return b.String()
}

// jobText flattens a job posting into prompt text.
func jobText(job *domain.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", job.Title)
	if job.CompanyName != nil {
		fmt.Fprintf(&b, "Company: %s\n", *job.CompanyName)
	}
	fmt.Fprintf(&b, "Location: %s\nType: %s\nExperience: %s\n", job.Location, job.Type, job.Experience)
	if len(job.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(job.Skills, ", "))
	}
	fmt.Fprintf(&b, "\nDescription:\n%s\n\nRequirements:\n%s\n\nResponsibilities:\n%s\n",
		job.Description, job.Requirements, job.Responsibilities)
	return b.String()
}

func preferencesText(prefs domain.SearchPreferences) string {
	var b strings.Builder
	if len(prefs.Industries) > 0 {
		fmt.Fprintf(&b, "Industries: %s\n", strings.Join(prefs.Industries, ", "))
	}
	if len(prefs.JobTypes) > 0 {
		fmt.Fprintf(&b, "Job types: %s\n", strings.Join(prefs.JobTypes, ", "))
	}
	if len(prefs.Locations) > 0 {
		fmt.Fprintf(&b, "Locations: %s\n", strings.Join(prefs.Locations, ", "))
	}
	if prefs.MinSalary > 0 {
		fmt.Fprintf(&b, "Minimum salary: %.0f\n", prefs.MinSalary)
	}
	if b.Len() == 0 {
		return "No specific preferences provided"
	}
	return b.String()
}

// skillOverlap splits the job's skills into those the applicant has and those
// they lack. Comparison is case-insensitive; the job's casing is kept.
func skillOverlap(applicantSkills, jobSkills []string) (matching, missing []string) {
	have := make(map[string]bool, len(applicantSkills))
	for _, s := range applicantSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	matching = []string{}
	missing = []string{}
	for _, s := range jobSkills {
		if have[strings.ToLower(strings.TrimSpace(s))] {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matching, missing
}

func recommendationFor(score int) string {
	switch {
	case score >= 85:
		return "Strong candidate - Highly Recommended"
	case score >= 70:
		return "Good candidate - Recommended"
	default:
		return "Average candidate - Consider"
	}
}
