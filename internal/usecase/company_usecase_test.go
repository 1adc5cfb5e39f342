package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCompanyFixture() (*MockCompanyRepo, *MockJobRepo, *MockApplicationRepo, *MockObjectStore, domain.CompanyUsecase) {
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	appRepo := new(MockApplicationRepo)
	store := new(MockObjectStore)
	uc := usecase.NewCompanyUsecase(companyRepo, jobRepo, appRepo, store, validator.New())
	return companyRepo, jobRepo, appRepo, store, uc
}

func TestCreateCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create and stamp the owner", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		companyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(nil)

		company := &domain.Company{Name: "Acme", Industry: "Software"}
		err := uc.CreateCompany(ctx, "owner1", company)
		assert.NoError(t, err)
		assert.Equal(t, "owner1", company.OwnerID)
	})

	t.Run("Should map a duplicate name to Conflict", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		companyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Company")).Return(domain.ErrDuplicate)

		err := uc.CreateCompany(ctx, "owner1", &domain.Company{Name: "Acme"})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should reject a malformed contact email", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		err := uc.CreateCompany(ctx, "owner1", &domain.Company{Name: "Acme", ContactEmail: "not-an-email"})
		assert.Error(t, err)
		companyRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an unknown size bracket", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		err := uc.CreateCompany(ctx, "owner1", &domain.Company{Name: "Acme", Size: "huge"})
		assert.Error(t, err)
		companyRepo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("Should allow the owner and merge fields", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		companyRepo.On("GetByID", ctx, "c1").Return(&domain.Company{ID: "c1", Name: "Acme", OwnerID: "owner1"}, nil)
		companyRepo.On("Update", ctx, mock.AnythingOfType("*domain.Company")).Return(nil)

		desc := "We build things"
		company, err := uc.UpdateCompany(ctx, "owner1", "c1", &domain.CompanyUpdate{Description: &desc})
		assert.NoError(t, err)
		assert.Equal(t, "We build things", company.Description)
		assert.Equal(t, "Acme", company.Name)
	})

	t.Run("Should forbid non-owners", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		companyRepo.On("GetByID", ctx, "c1").Return(&domain.Company{ID: "c1", OwnerID: "owner1"}, nil)

		_, err := uc.UpdateCompany(ctx, "owner2", "c1", &domain.CompanyUpdate{})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
		companyRepo.AssertNotCalled(t, "Update")
	})
}

func TestDeleteCompany(t *testing.T) {
	ctx := context.Background()

	t.Run("Should cascade through jobs and applications", func(t *testing.T) {
		companyRepo, jobRepo, appRepo, _, uc := newCompanyFixture()

		companyRepo.On("GetByID", ctx, "c1").Return(&domain.Company{ID: "c1", OwnerID: "owner1"}, nil)
		jobRepo.On("FetchByCompanyIDs", ctx, []string{"c1"}).Return([]domain.Job{{ID: "j1"}, {ID: "j2"}}, nil)
		appRepo.On("DeleteByJobID", ctx, "j1").Return(nil)
		appRepo.On("DeleteByJobID", ctx, "j2").Return(nil)
		jobRepo.On("Delete", ctx, "j1").Return(nil)
		jobRepo.On("Delete", ctx, "j2").Return(nil)
		companyRepo.On("Delete", ctx, "c1").Return(nil)

		err := uc.DeleteCompany(ctx, "owner1", "c1")
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
		jobRepo.AssertExpectations(t)
		companyRepo.AssertExpectations(t)
	})
}

func TestListCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default to name_asc and clamp pagination", func(t *testing.T) {
		companyRepo, _, _, _, uc := newCompanyFixture()

		companyRepo.On("Fetch", ctx, mock.MatchedBy(func(f domain.CompanyFilter) bool {
			return f.Sort == "name_asc" && f.Page == 1 && f.Limit == 10
		})).Return([]domain.Company{}, int64(0), nil)

		page, err := uc.ListCompanies(ctx, domain.CompanyFilter{Sort: "bogus"})
		assert.NoError(t, err)
		assert.NotNil(t, page.Companies)
		companyRepo.AssertExpectations(t)
	})
}
