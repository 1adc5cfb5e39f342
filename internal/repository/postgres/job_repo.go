package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobSelectColumns = `j.id, j.title, j.company_id, j.location, j.description, j.requirements,
	j.responsibilities, j.type, j.salary_min, j.salary_max, j.salary_currency, j.salary_hidden,
	j.experience, j.skills, j.status, j.posted_by, j.deadline, j.created_at, j.updated_at`

// searchVector is the combined text index the free-text search runs against.
const searchVector = `to_tsvector('english',
	j.title || ' ' || j.description || ' ' || j.requirements || ' ' || j.responsibilities)`

func scanJobRows(rows pgx.Rows) ([]domain.Job, error) {
	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		var skills []string
		if err := rows.Scan(
			&j.ID, &j.Title, &j.CompanyID, &j.Location, &j.Description, &j.Requirements,
			&j.Responsibilities, &j.Type, &j.Salary.Min, &j.Salary.Max, &j.Salary.Currency,
			&j.Salary.Hidden, &j.Experience, pq.Array(&skills), &j.Status, &j.PostedBy,
			&j.Deadline, &j.CreatedAt, &j.UpdatedAt,
			&j.CompanyName, &j.CompanyLogoURL,
		); err != nil {
			return nil, err
		}
		j.Skills = skills
		if j.Skills == nil {
			j.Skills = []string{}
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	query := `INSERT INTO jobs (id, title, company_id, location, description, requirements,
	            responsibilities, type, salary_min, salary_max, salary_currency, salary_hidden,
	            experience, skills, status, posted_by, deadline, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.CompanyID, job.Location, job.Description, job.Requirements,
		job.Responsibilities, job.Type, job.Salary.Min, job.Salary.Max, job.Salary.Currency,
		job.Salary.Hidden, job.Experience, pq.Array(job.Skills), job.Status, job.PostedBy,
		job.Deadline, job.CreatedAt, job.UpdatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT ` + jobSelectColumns + `, c.name, c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs, err := scanJobRows(rows)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &jobs[0], nil
}

// Fetch translates the normalized filter into WHERE/ORDER BY/LIMIT clauses
// and returns the matching page plus the total count for the same predicate.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		conds = append(conds, searchVector+" @@ websearch_to_tsquery('english', "+arg(filter.Search)+")")
	}
	if filter.Location != "" {
		conds = append(conds, "j.location ILIKE '%' || "+arg(filter.Location)+" || '%'")
	}
	if filter.Type != "" {
		conds = append(conds, "j.type = "+arg(filter.Type))
	}
	if filter.Experience != "" {
		conds = append(conds, "j.experience = "+arg(filter.Experience))
	}
	if filter.CompanyID != "" {
		conds = append(conds, "j.company_id = "+arg(filter.CompanyID))
	}
	// Jobs without a salary never satisfy a bound: NULL fails the comparison.
	if filter.SalaryMin != nil {
		conds = append(conds, "j.salary_max >= "+arg(*filter.SalaryMin))
	}
	if filter.SalaryMax != nil {
		conds = append(conds, "j.salary_min <= "+arg(*filter.SalaryMax))
	}
	if len(filter.Skills) > 0 {
		// ANY-match: the job's skill set overlaps the requested set
		conds = append(conds, "j.skills && "+arg(pq.Array(filter.Skills)))
	}
	if filter.Status != "" {
		conds = append(conds, "j.status = "+arg(filter.Status))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var orderBy string
	switch filter.Sort {
	case domain.SortOldest:
		orderBy = "j.created_at ASC"
	case domain.SortSalaryHigh:
		orderBy = "j.salary_max DESC NULLS LAST"
	case domain.SortSalaryLow:
		orderBy = "j.salary_min ASC NULLS LAST"
	case domain.SortRelevance:
		orderBy = "ts_rank(" + searchVector + ", websearch_to_tsquery('english', " + arg(filter.Search) + ")) DESC"
	default:
		orderBy = "j.created_at DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := `
		SELECT ` + jobSelectColumns + `, c.name, c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id` +
		where + " ORDER BY " + orderBy +
		" LIMIT " + arg(filter.Limit) + " OFFSET " + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobRows(rows)
	if err != nil {
		return nil, 0, err
	}

	// Count uses only the WHERE args (they were appended first).
	countArgs := args[:len(args)-countTrailingArgs(filter)]
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// countTrailingArgs returns how many args after the WHERE clause were added
// for ORDER BY/LIMIT/OFFSET.
func countTrailingArgs(filter domain.JobFilter) int {
	n := 2 // limit + offset
	if filter.Sort == domain.SortRelevance {
		n++ // rank query text
	}
	return n
}

func (r *jobRepo) FetchByCompanyIDs(ctx context.Context, companyIDs []string) ([]domain.Job, error) {
	if len(companyIDs) == 0 {
		return []domain.Job{}, nil
	}
	query := `
		SELECT ` + jobSelectColumns + `, c.name, c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.company_id = ANY($1)
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query, pq.Array(companyIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs, err := scanJobRows(rows)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		location = $3,
		description = $4,
		requirements = $5,
		responsibilities = $6,
		type = $7,
		salary_min = $8,
		salary_max = $9,
		salary_currency = $10,
		salary_hidden = $11,
		experience = $12,
		skills = $13,
		status = $14,
		deadline = $15,
		updated_at = $16
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Location, job.Description, job.Requirements,
		job.Responsibilities, job.Type, job.Salary.Min, job.Salary.Max, job.Salary.Currency,
		job.Salary.Hidden, job.Experience, pq.Array(job.Skills), job.Status, job.Deadline,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
