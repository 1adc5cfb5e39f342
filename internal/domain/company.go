package domain

import (
	"context"
	"time"
)

// Company size brackets
var companySizes = map[string]bool{
	"1-10":     true,
	"11-50":    true,
	"51-200":   true,
	"201-500":  true,
	"501-1000": true,
	"1000+":    true,
}

// ValidCompanySize reports whether size is a recognized bracket.
func ValidCompanySize(size string) bool {
	return companySizes[size]
}

// Company is an employer profile. Ownership is immutable after creation; a
// user may own several companies but (name, owner) pairs are unique.
type Company struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Website      *string     `json:"website,omitempty"`
	LogoURL      *string     `json:"logo,omitempty"`
	Description  string      `json:"description"`
	Industry     string      `json:"industry"`
	Location     string      `json:"location"`
	Size         string      `json:"size"`
	Founded      *int        `json:"founded,omitempty"`
	OwnerID      string      `json:"owner"`
	ContactEmail string      `json:"contact_email"`
	Social       SocialLinks `json:"social"`
	CreatedAt    time.Time   `json:"created_at"`

	// Joined data for list/detail responses
	OwnerName *string `json:"owner_name,omitempty"`
}

// CompanyFilter translates list query parameters into the repository query.
type CompanyFilter struct {
	Search   string // case-insensitive substring on name
	Industry string
	Size     string
	Sort     string // name_asc | name_desc | newest
	Page     int
	Limit    int
}

// CompanyUpdate carries mutable fields; nil means unchanged.
type CompanyUpdate struct {
	Name         *string
	Website      *string
	Description  *string
	Industry     *string
	Location     *string
	Size         *string
	Founded      *int
	ContactEmail *string
	Social       *SocialLinks
}

// CompanyPage is the paginated listing envelope.
type CompanyPage struct {
	Companies   []Company `json:"companies"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	Total       int64     `json:"total"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	Fetch(ctx context.Context, filter CompanyFilter) ([]Company, int64, error)
	FetchByOwner(ctx context.Context, ownerID string) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	SetLogoURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, ownerID string, company *Company) error
	GetCompany(ctx context.Context, id string) (*Company, error)
	ListCompanies(ctx context.Context, filter CompanyFilter) (*CompanyPage, error)
	ListMyCompanies(ctx context.Context, ownerID string) ([]Company, error)
	UpdateCompany(ctx context.Context, userID, id string, upd *CompanyUpdate) (*Company, error)
	DeleteCompany(ctx context.Context, userID, id string) error
	UploadLogo(ctx context.Context, userID, id, filename string, data []byte) (string, error)
}
