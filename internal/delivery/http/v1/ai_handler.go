package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiUC domain.AIUsecase
}

func NewAIHandler(protected *gin.RouterGroup, aiUC domain.AIUsecase) {
	handler := &AIHandler{aiUC: aiUC}

	ai := protected.Group("/ai")
	{
		ai.GET("/jobs/:jobId/resume-analysis", handler.ResumeAnalysis)
		ai.GET("/jobs/:jobId/cover-letter", handler.CoverLetter)
		ai.GET("/jobs/:jobId/applications-analysis", handler.ApplicationsAnalysis)
		ai.POST("/job-search-recommendations", handler.SearchRecommendations)
	}
}

// ResumeAnalysis godoc
// @Summary      Analyze resume against a job
// @Description  Match assessment between the caller's resume and a job posting
// @Tags         ai
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      502    {object}  response.Response
// @Router       /ai/jobs/{jobId}/resume-analysis [get]
// @Security     BearerAuth
func (h *AIHandler) ResumeAnalysis(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	text, err := h.aiUC.AnalyzeResume(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"analysis": text})
}

// CoverLetter godoc
// @Summary      Generate a cover letter
// @Description  Draft a cover letter for the caller tailored to a job posting
// @Tags         ai
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      502    {object}  response.Response
// @Router       /ai/jobs/{jobId}/cover-letter [get]
// @Security     BearerAuth
func (h *AIHandler) CoverLetter(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	text, err := h.aiUC.GenerateCoverLetter(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"coverLetter": text})
}

// ApplicationsAnalysis godoc
// @Summary      Analyze a job's applicants
// @Description  Score and rank applications for a job the caller's company owns
// @Tags         ai
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /ai/jobs/{jobId}/applications-analysis [get]
// @Security     BearerAuth
func (h *AIHandler) ApplicationsAnalysis(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can analyze applications"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	insights, err := h.aiUC.AnalyzeApplications(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", insights)
}

// SearchRecommendations godoc
// @Summary      Job search recommendations
// @Description  Personalized search strategy based on profile and preferences
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SearchPreferences  true  "Preferences JSON"
// @Success      200   {object}  response.Response
// @Failure      502   {object}  response.Response
// @Router       /ai/job-search-recommendations [post]
// @Security     BearerAuth
func (h *AIHandler) SearchRecommendations(c *gin.Context) {
	var prefs domain.SearchPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	text, err := h.aiUC.SearchRecommendations(c.Request.Context(), userID, prefs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"recommendations": text})
}
