package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.company_id, a.cover_letter,
	a.resume_url, a.status, a.applied_at, a.last_updated`

func scanApplicationBase(rows pgx.Rows, extra ...interface{}) (*domain.Application, error) {
	var a domain.Application
	dest := []interface{}{
		&a.ID, &a.JobID, &a.ApplicantID, &a.CompanyID, &a.CoverLetter,
		&a.ResumeURL, &a.Status, &a.AppliedAt, &a.LastUpdated,
	}
	dest = append(dest, extra...)
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	query := `INSERT INTO applications (id, job_id, applicant_id, company_id, cover_letter,
	            resume_url, status, applied_at, last_updated)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.ApplicantID, app.CompanyID, app.CoverLetter,
		app.ResumeURL, app.Status, app.AppliedAt, app.LastUpdated,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, u.name, u.email
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		WHERE a.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}

	var a *domain.Application
	var name, email *string
	a, err = scanApplicationBase(rows, &name, &email)
	if err != nil {
		return nil, err
	}
	a.ApplicantName = name
	a.ApplicantEmail = email
	return a, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, u.name, u.email, u.avatar_url
		FROM applications a
		LEFT JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		var name, email, avatar *string
		a, err := scanApplicationBase(rows, &name, &email, &avatar)
		if err != nil {
			return nil, err
		}
		a.ApplicantName = name
		a.ApplicantEmail = email
		a.ApplicantAvatar = avatar
		applications = append(applications, *a)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) GetByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, j.title, j.status, c.name, c.logo_url
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN companies c ON a.company_id = c.id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		var jobTitle, jobStatus, companyName, companyLogo *string
		a, err := scanApplicationBase(rows, &jobTitle, &jobStatus, &companyName, &companyLogo)
		if err != nil {
			return nil, err
		}
		a.JobTitle = jobTitle
		a.JobStatus = jobStatus
		a.CompanyName = companyName
		a.CompanyLogoURL = companyLogo
		applications = append(applications, *a)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`
	if err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE applications SET status = $2, last_updated = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) DeleteByJobID(ctx context.Context, jobID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID)
	return err
}
