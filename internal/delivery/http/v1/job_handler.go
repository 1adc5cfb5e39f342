package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
	appUC domain.ApplicationUsecase
	aiUC  domain.AIUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, appUC domain.ApplicationUsecase, aiUC domain.AIUsecase) {
	handler := &JobHandler{jobUC: jobUC, appUC: appUC, aiUC: aiUC}

	// PUBLIC routes - browsing requires no authentication
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.POST("/generate-description", handler.GenerateDescription)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
		protectedJobs.GET("/employer", handler.ListByEmployer)

		// Application workflow lives under /jobs, mirroring the frontend API
		protectedJobs.POST("/apply", handler.Apply)
		protectedJobs.GET("/applications/me", handler.MyApplications)
		protectedJobs.GET("/:id/applications", handler.JobApplications)
		protectedJobs.PUT("/applications/:applicationId", handler.UpdateApplicationStatus)
	}
}

type SalaryRequest struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
	Hidden   bool     `json:"hidden"`
}

type CreateJobRequest struct {
	Title            string         `json:"title" binding:"required"`
	Company          string         `json:"company" binding:"required"`
	Location         string         `json:"location" binding:"required"`
	Description      string         `json:"description" binding:"required"`
	Requirements     string         `json:"requirements"`
	Responsibilities string         `json:"responsibilities"`
	Type             string         `json:"type" binding:"required"`
	Salary           *SalaryRequest `json:"salary"`
	Experience       string         `json:"experience" binding:"required"`
	Skills           StringList     `json:"skills"`
	Status           string         `json:"status"`
	Deadline         *time.Time     `json:"deadline"`
}

type UpdateJobRequest struct {
	Title            *string        `json:"title"`
	Location         *string        `json:"location"`
	Description      *string        `json:"description"`
	Requirements     *string        `json:"requirements"`
	Responsibilities *string        `json:"responsibilities"`
	Type             *string        `json:"type"`
	Salary           *SalaryRequest `json:"salary"`
	Experience       *string        `json:"experience"`
	Skills           StringList     `json:"skills"`
	Status           *string        `json:"status"`
	Deadline         *time.Time     `json:"deadline"`
}

type ApplyRequest struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  Post a job for a company the caller owns (employer or admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	// 1. Role check
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can post jobs"))
		return
	}

	// 2. Bind JSON
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:            req.Title,
		CompanyID:        req.Company,
		Location:         req.Location,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Type:             req.Type,
		Experience:       req.Experience,
		Skills:           req.Skills,
		Status:           req.Status,
		Deadline:         req.Deadline,
	}
	if req.Salary != nil {
		job.Salary = domain.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
			Hidden:   req.Salary.Hidden,
		}
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List jobs
// @Description  Filter, sort and paginate active job postings
// @Tags         jobs
// @Produce      json
// @Param        search      query     string  false  "Full-text search"
// @Param        location    query     string  false  "Location substring"
// @Param        type        query     string  false  "Job type"
// @Param        experience  query     string  false  "Experience level"
// @Param        company     query     string  false  "Company ID"
// @Param        salary_min  query     number  false  "Minimum salary"
// @Param        salary_max  query     number  false  "Maximum salary"
// @Param        skills      query     string  false  "Comma-separated skills (any match)"
// @Param        sort        query     string  false  "newest|oldest|salary_high|salary_low|relevance"
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Search:     c.Query("search"),
		Location:   c.Query("location"),
		Type:       c.Query("type"),
		Experience: c.Query("experience"),
		CompanyID:  c.Query("company"),
		Status:     c.Query("status"),
		Sort:       c.Query("sort"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if v := c.Query("salary_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.SalaryMin = &f
		}
	}
	if v := c.Query("salary_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.SalaryMax = &f
		}
	}
	if v := c.Query("skills"); v != "" {
		filter.Skills = trimEach(splitCSV(v))
	}

	page, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", page)
}

// GetDetails godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Partial update by the user who posted the job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	upd := &domain.JobUpdate{
		Title:            req.Title,
		Location:         req.Location,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Type:             req.Type,
		Experience:       req.Experience,
		Skills:           req.Skills,
		Status:           req.Status,
		Deadline:         req.Deadline,
	}
	if req.Salary != nil {
		upd.Salary = &domain.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
			Hidden:   req.Salary.Hidden,
		}
	}

	userID := c.GetString(string(domain.KeyUserID))
	job, err := h.jobUC.UpdateJob(c.Request.Context(), userID, c.Param("id"), upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Removes the job and all of its applications
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ListByEmployer godoc
// @Summary      List own postings
// @Description  Every job across all companies the caller owns, any status
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/employer [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListEmployerJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", jobs)
}

// GenerateDescription godoc
// @Summary      Generate a job description
// @Description  Draft a posting from basic job facts using the AI service
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      domain.JobDescriptionInput  true  "Job facts"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /jobs/generate-description [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateDescription(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can generate job descriptions"))
		return
	}

	var req domain.JobDescriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	text, err := h.aiUC.GenerateJobDescription(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"description": text})
}

// Apply godoc
// @Summary      Apply to a job
// @Description  One application per job; requires a resume on file
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application JSON"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/apply [post]
// @Security     BearerAuth
func (h *JobHandler) Apply(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobseeker {
		c.Error(apperror.Forbidden("Only jobseekers can apply to jobs"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.Apply(c.Request.Context(), userID, req.JobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// MyApplications godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/applications/me [get]
// @Security     BearerAuth
func (h *JobHandler) MyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.appUC.MyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", apps)
}

// JobApplications godoc
// @Summary      List applications for a job
// @Description  Restricted to the owner of the job's company
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobHandler) JobApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.appUC.ListForJob(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", apps)
}

// UpdateApplicationStatus godoc
// @Summary      Update an application's status
// @Description  Restricted to the owner of the application's company
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        applicationId  path      string                          true  "Application ID"
// @Param        body           body      UpdateApplicationStatusRequest  true  "Status JSON"
// @Success      200            {object}  response.Response
// @Failure      400            {object}  response.Response
// @Failure      403            {object}  response.Response
// @Router       /jobs/applications/{applicationId} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.appUC.UpdateStatus(c.Request.Context(), userID, c.Param("applicationId"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", nil)
}
