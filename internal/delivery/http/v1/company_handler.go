package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	// PUBLIC routes - company directory is browsable without auth
	publicCompanies := public.Group("/companies")
	{
		publicCompanies.GET("", handler.List)
		publicCompanies.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes
	protectedCompanies := protected.Group("/companies")
	{
		protectedCompanies.POST("", handler.Create)
		protectedCompanies.GET("/user/me", handler.ListMine)
		protectedCompanies.PUT("/:id", handler.Update)
		protectedCompanies.DELETE("/:id", handler.Delete)
		protectedCompanies.POST("/:id/logo", handler.UploadLogo)
	}
}

type CreateCompanyRequest struct {
	Name         string              `json:"name" binding:"required"`
	Website      *string             `json:"website"`
	Description  string              `json:"description"`
	Industry     string              `json:"industry" binding:"required"`
	Location     string              `json:"location"`
	Size         string              `json:"size"`
	Founded      *int                `json:"founded"`
	ContactEmail string              `json:"contactEmail"`
	Social       *domain.SocialLinks `json:"social"`
}

type UpdateCompanyRequest struct {
	Name         *string             `json:"name"`
	Website      *string             `json:"website"`
	Description  *string             `json:"description"`
	Industry     *string             `json:"industry"`
	Location     *string             `json:"location"`
	Size         *string             `json:"size"`
	Founded      *int                `json:"founded"`
	ContactEmail *string             `json:"contactEmail"`
	Social       *domain.SocialLinks `json:"social"`
}

// Create godoc
// @Summary      Create a company
// @Description  Register a company owned by the caller (employer or admin only)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CreateCompanyRequest  true  "Company JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can create companies"))
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		Name:         req.Name,
		Website:      req.Website,
		Description:  req.Description,
		Industry:     req.Industry,
		Location:     req.Location,
		Size:         req.Size,
		Founded:      req.Founded,
		ContactEmail: req.ContactEmail,
	}
	if req.Social != nil {
		company.Social = *req.Social
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.companyUC.CreateCompany(c.Request.Context(), userID, company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company created", company)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        search    query     string  false  "Name substring"
// @Param        industry  query     string  false  "Industry"
// @Param        size      query     string  false  "Company size bracket"
// @Param        sort      query     string  false  "name_asc|name_desc|newest"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	filter := domain.CompanyFilter{
		Search:   c.Query("search"),
		Industry: c.Query("industry"),
		Size:     c.Query("size"),
		Sort:     c.Query("sort"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	page, err := h.companyUC.ListCompanies(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", page)
}

// GetDetails godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetDetails(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", company)
}

// ListMine godoc
// @Summary      List own companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /companies/user/me [get]
// @Security     BearerAuth
func (h *CompanyHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	companies, err := h.companyUC.ListMyCompanies(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", companies)
}

// Update godoc
// @Summary      Update a company
// @Description  Partial update by the company owner
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Company ID"
// @Param        company  body      UpdateCompanyRequest  true  "Company JSON"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := &domain.CompanyUpdate{
		Name:         req.Name,
		Website:      req.Website,
		Description:  req.Description,
		Industry:     req.Industry,
		Location:     req.Location,
		Size:         req.Size,
		Founded:      req.Founded,
		ContactEmail: req.ContactEmail,
		Social:       req.Social,
	}

	userID := c.GetString(string(domain.KeyUserID))
	company, err := h.companyUC.UpdateCompany(c.Request.Context(), userID, c.Param("id"), upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete a company
// @Description  Removes the company, its jobs and their applications
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.companyUC.DeleteCompany(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}

// UploadLogo godoc
// @Summary      Upload a company logo
// @Description  JPEG or PNG up to 10MB; downscaled before storage
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "Company ID"
// @Param        logo  formData  file    true  "Logo image"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /companies/{id}/logo [post]
// @Security     BearerAuth
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	filename, data, err := readUpload(c, "logo")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	url, err := h.companyUC.UploadLogo(c.Request.Context(), userID, c.Param("id"), filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"logo": url})
}
