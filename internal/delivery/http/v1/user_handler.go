package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/:id", handler.GetByID)
		users.PUT("/profile", handler.UpdateProfile)
		users.PUT("/password", handler.ChangePassword)
		users.POST("/resume", handler.UploadResume)
		users.POST("/avatar", handler.UploadAvatar)
		users.PUT("/jobs/:jobId", handler.ToggleSavedJob)
		users.GET("/jobs/saved", handler.SavedJobs)
	}
}

type UpdateProfileRequest struct {
	Name       *string             `json:"name"`
	Location   *string             `json:"location"`
	Bio        *string             `json:"bio"`
	Skills     StringList          `json:"skills"`
	Social     *domain.SocialLinks `json:"social"`
	Experience []domain.Experience `json:"experience"`
	Education  []domain.Education  `json:"education"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// GetByID godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUC.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Partial update; omitted fields are left unchanged
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /users/profile [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	upd := &domain.ProfileUpdate{
		Name:       req.Name,
		Location:   req.Location,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Social:     req.Social,
		Experience: req.Experience,
		Education:  req.Education,
	}

	user, err := h.userUC.UpdateProfile(c.Request.Context(), userID, upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", user)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      ChangePasswordRequest  true  "Password JSON"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /users/password [put]
// @Security     BearerAuth
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.userUC.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password updated", nil)
}

// UploadResume godoc
// @Summary      Upload a resume
// @Description  PDF, DOC or DOCX up to 10MB; replaces the previous resume
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /users/resume [post]
// @Security     BearerAuth
func (h *UserHandler) UploadResume(c *gin.Context) {
	filename, data, err := readUpload(c, "resume")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	url, err := h.userUC.UploadResume(c.Request.Context(), userID, filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume uploaded", gin.H{"resume": url})
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Description  JPEG or PNG up to 10MB; downscaled before storage
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar  formData  file  true  "Avatar image"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /users/avatar [post]
// @Security     BearerAuth
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	filename, data, err := readUpload(c, "avatar")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	url, err := h.userUC.UploadAvatar(c.Request.Context(), userID, filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar uploaded", gin.H{"avatar": url})
}

// ToggleSavedJob godoc
// @Summary      Save or unsave a job
// @Tags         users
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /users/jobs/{jobId} [put]
// @Security     BearerAuth
func (h *UserHandler) ToggleSavedJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	saved, err := h.userUC.ToggleSavedJob(c.Request.Context(), userID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Job removed from saved jobs"
	if saved {
		msg = "Job saved"
	}
	response.Success(c, http.StatusOK, msg, gin.H{"saved": saved})
}

// SavedJobs godoc
// @Summary      List saved jobs
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/jobs/saved [get]
// @Security     BearerAuth
func (h *UserHandler) SavedJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.userUC.GetSavedJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", jobs)
}
