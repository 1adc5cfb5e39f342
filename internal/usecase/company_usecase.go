package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// logoMaxDim is the longest edge a company logo is downscaled to.
const logoMaxDim = 512

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	jobRepo     domain.JobRepository
	appRepo     domain.ApplicationRepository
	store       storage.ObjectStore
	validate    *validator.Validate
}

func NewCompanyUsecase(
	companyRepo domain.CompanyRepository,
	jobRepo domain.JobRepository,
	appRepo domain.ApplicationRepository,
	store storage.ObjectStore,
	validate *validator.Validate,
) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		store:       store,
		validate:    validate,
	}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, ownerID string, company *domain.Company) error {
	// 1. Business validation
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}
	if company.Size != "" && !domain.ValidCompanySize(company.Size) {
		return apperror.BadRequest("Invalid company size")
	}
	if company.ContactEmail != "" {
		if err := u.validate.Var(company.ContactEmail, "email"); err != nil {
			return apperror.BadRequest("Invalid contact email")
		}
	}
	if company.Website != nil && *company.Website != "" {
		if err := u.validate.Var(*company.Website, "url"); err != nil {
			return apperror.BadRequest("Invalid website URL")
		}
	}

	company.OwnerID = ownerID
	company.CreatedAt = time.Now()

	// 2. Persist; the unique index on (name, owner) closes the race with a
	// concurrent create of the same name.
	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("You already have a company with this name")
		}
		return err
	}
	return nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context, filter domain.CompanyFilter) (*domain.CompanyPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Size != "" && !domain.ValidCompanySize(filter.Size) {
		return nil, apperror.BadRequest("Invalid company size")
	}
	switch filter.Sort {
	case "name_asc", "name_desc", "newest":
	default:
		filter.Sort = "name_asc"
	}

	companies, total, err := u.companyRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []domain.Company{}
	}

	return &domain.CompanyPage{
		Companies:   companies,
		TotalPages:  totalPages(total, filter.Limit),
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

func (u *companyUsecase) ListMyCompanies(ctx context.Context, ownerID string) ([]domain.Company, error) {
	return u.companyRepo.FetchByOwner(ctx, ownerID)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, userID, id string, upd *domain.CompanyUpdate) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}

	if !domain.CanMutateCompany(userID, company) {
		return nil, apperror.Forbidden("Not authorized to update this company")
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperror.BadRequest("Company name is required")
		}
		company.Name = name
	}
	if upd.Website != nil {
		company.Website = upd.Website
	}
	if upd.Description != nil {
		company.Description = *upd.Description
	}
	if upd.Industry != nil {
		company.Industry = *upd.Industry
	}
	if upd.Location != nil {
		company.Location = *upd.Location
	}
	if upd.Size != nil {
		if !domain.ValidCompanySize(*upd.Size) {
			return nil, apperror.BadRequest("Invalid company size")
		}
		company.Size = *upd.Size
	}
	if upd.Founded != nil {
		company.Founded = upd.Founded
	}
	if upd.ContactEmail != nil {
		if *upd.ContactEmail != "" {
			if err := u.validate.Var(*upd.ContactEmail, "email"); err != nil {
				return nil, apperror.BadRequest("Invalid contact email")
			}
		}
		company.ContactEmail = *upd.ContactEmail
	}
	if upd.Social != nil {
		company.Social = *upd.Social
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You already have a company with this name")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, userID, id string) error {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return err
	}

	if !domain.CanMutateCompany(userID, company) {
		return apperror.Forbidden("Not authorized to delete this company")
	}

	// Remove the company's jobs and their applications first.
	jobs, err := u.jobRepo.FetchByCompanyIDs(ctx, []string{id})
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if err := u.appRepo.DeleteByJobID(ctx, job.ID); err != nil {
			return err
		}
		if err := u.jobRepo.Delete(ctx, job.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	return u.companyRepo.Delete(ctx, id)
}

func (u *companyUsecase) UploadLogo(ctx context.Context, userID, id, filename string, data []byte) (string, error) {
	if !u.store.IsConfigured() {
		return "", apperror.ServiceUnavailable("File storage is not configured")
	}

	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.NotFound("Company not found")
		}
		return "", err
	}

	if !domain.CanMutateCompany(userID, company) {
		return "", apperror.Forbidden("Not authorized to update this company")
	}

	if _, err := storage.ValidateFile(filename, data, storage.KindImage); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	resized, ext, err := storage.Downscale(data, logoMaxDim)
	if err != nil {
		return "", apperror.BadRequest("Could not process image")
	}

	if company.LogoURL != nil {
		if key := u.store.KeyFromURL(*company.LogoURL); key != "" {
			if err := u.store.Delete(ctx, key); err != nil {
				logger.Log.Warn("failed to delete old logo", "company_id", id, "error", err)
			}
		}
	}

	key := fmt.Sprintf("logos/%s/%s%s", id, uuid.NewString(), ext)
	url, err := u.store.Put(ctx, key, storage.ContentTypeFor(ext), resized)
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := u.companyRepo.SetLogoURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// totalPages is ceil(total/limit), at least 1 page when there are results.
func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
