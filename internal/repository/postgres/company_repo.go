package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `c.id, c.name, c.website, c.logo_url, c.description, c.industry,
	c.location, c.size, c.founded, c.owner_id, c.contact_email,
	c.social_linkedin, c.social_twitter, c.social_facebook, c.created_at`

func scanCompanyRows(rows pgx.Rows, withOwner bool) ([]domain.Company, error) {
	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		dest := []interface{}{
			&c.ID, &c.Name, &c.Website, &c.LogoURL, &c.Description, &c.Industry,
			&c.Location, &c.Size, &c.Founded, &c.OwnerID, &c.ContactEmail,
			&c.Social.LinkedIn, &c.Social.Twitter, &c.Social.Facebook, &c.CreatedAt,
		}
		if withOwner {
			dest = append(dest, &c.OwnerName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	query := `INSERT INTO companies (id, name, website, description, industry, location, size,
	            founded, owner_id, contact_email, social_linkedin, social_twitter, social_facebook, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Website, company.Description, company.Industry,
		company.Location, company.Size, company.Founded, company.OwnerID, company.ContactEmail,
		company.Social.LinkedIn, company.Social.Twitter, company.Social.Facebook, company.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `
		SELECT ` + companyColumns + `, u.name
		FROM companies c
		LEFT JOIN users u ON c.owner_id = u.id
		WHERE c.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies, err := scanCompanyRows(rows, true)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.ErrNotFound
	}
	return &companies[0], nil
}

func (r *companyRepo) Fetch(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, int64, error) {
	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		conds = append(conds, "c.name ILIKE '%' || "+arg(filter.Search)+" || '%'")
	}
	if filter.Industry != "" {
		conds = append(conds, "c.industry = "+arg(filter.Industry))
	}
	if filter.Size != "" {
		conds = append(conds, "c.size = "+arg(filter.Size))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var orderBy string
	switch filter.Sort {
	case "name_desc":
		orderBy = "c.name DESC"
	case "newest":
		orderBy = "c.created_at DESC"
	default:
		orderBy = "c.name ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := `SELECT ` + companyColumns + ` FROM companies c` +
		where + " ORDER BY " + orderBy +
		" LIMIT " + arg(filter.Limit) + " OFFSET " + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies, err := scanCompanyRows(rows, false)
	if err != nil {
		return nil, 0, err
	}

	countArgs := args[:len(args)-2]
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies c`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *companyRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies c WHERE c.owner_id = $1 ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies, err := scanCompanyRows(rows, false)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		website = $3,
		description = $4,
		industry = $5,
		location = $6,
		size = $7,
		founded = $8,
		contact_email = $9,
		social_linkedin = $10,
		social_twitter = $11,
		social_facebook = $12
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Website, company.Description, company.Industry,
		company.Location, company.Size, company.Founded, company.ContactEmail,
		company.Social.LinkedIn, company.Social.Twitter, company.Social.Facebook,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SetLogoURL(ctx context.Context, id, url string) error {
	result, err := r.db.Exec(ctx, `UPDATE companies SET logo_url = $2 WHERE id = $1`, id, url)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
