package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, avatar_url, resume_url, skills,
	location, bio, social_linkedin, social_github, social_website, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var skills []string
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.AvatarURL, &u.ResumeURL,
		pq.Array(&skills), &u.Location, &u.Bio,
		&u.Social.LinkedIn, &u.Social.GitHub, &u.Social.Website,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.Skills = skills
	if u.Skills == nil {
		u.Skills = []string{}
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, name, email, password_hash, role, skills, location, bio,
	            social_linkedin, social_github, social_website, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		pq.Array(user.Skills), user.Location, user.Bio,
		user.Social.LinkedIn, user.Social.GitHub, user.Social.Website,
		user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}

	if err := r.loadExperience(ctx, user); err != nil {
		return nil, err
	}
	if err := r.loadEducation(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *userRepo) loadExperience(ctx context.Context, user *domain.User) error {
	query := `SELECT id, user_id, title, company, location, from_date, to_date, current, description
	          FROM experiences WHERE user_id = $1 ORDER BY from_date DESC`
	rows, err := r.db.Query(ctx, query, user.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch experience: %w", err)
	}
	defer rows.Close()

	user.Experience = []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.Location,
			&e.From, &e.To, &e.Current, &e.Description); err != nil {
			return err
		}
		user.Experience = append(user.Experience, e)
	}
	return rows.Err()
}

func (r *userRepo) loadEducation(ctx context.Context, user *domain.User) error {
	query := `SELECT id, user_id, school, degree, field_of_study, from_date, to_date, current, description
	          FROM educations WHERE user_id = $1 ORDER BY from_date DESC`
	rows, err := r.db.Query(ctx, query, user.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch education: %w", err)
	}
	defer rows.Close()

	user.Education = []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.School, &e.Degree, &e.FieldOfStudy,
			&e.From, &e.To, &e.Current, &e.Description); err != nil {
			return err
		}
		user.Education = append(user.Education, e)
	}
	return rows.Err()
}

// UpdateProfile writes the mutable profile fields and replaces the experience
// and education entries in a single transaction.
func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE users SET
		name = $2, location = $3, bio = $4, skills = $5,
		social_linkedin = $6, social_github = $7, social_website = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := tx.Exec(ctx, query,
		user.ID, user.Name, user.Location, user.Bio, pq.Array(user.Skills),
		user.Social.LinkedIn, user.Social.GitHub, user.Social.Website,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM experiences WHERE user_id = $1`, user.ID); err != nil {
		return err
	}
	for i := range user.Experience {
		e := &user.Experience[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO experiences (id, user_id, title, company, location, from_date, to_date, current, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID, user.ID, e.Title, e.Company, e.Location, e.From, e.To, e.Current, e.Description)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM educations WHERE user_id = $1`, user.ID); err != nil {
		return err
	}
	for i := range user.Education {
		e := &user.Education[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO educations (id, user_id, school, degree, field_of_study, from_date, to_date, current, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.ID, user.ID, e.School, e.Degree, e.FieldOfStudy, e.From, e.To, e.Current, e.Description)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *userRepo) SetPasswordHash(ctx context.Context, id, hash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) SetResumeURL(ctx context.Context, id, url string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET resume_url = $2, updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) SetAvatarURL(ctx context.Context, id, url string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) IsJobSaved(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID).Scan(&exists)
	return exists, err
}

func (r *userRepo) SaveJob(ctx context.Context, userID, jobID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id, created_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID)
	return err
}

func (r *userRepo) UnsaveJob(ctx context.Context, userID, jobID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	return err
}

func (r *userRepo) ListSavedJobs(ctx context.Context, userID string) ([]domain.Job, error) {
	query := `
		SELECT ` + jobSelectColumns + `, c.name, c.logo_url
		FROM saved_jobs s
		JOIN jobs j ON s.job_id = j.id
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobRows(rows)
}
