package v1

import (
	"net/http"

	"go-devconnect-backend/internal/delivery/http/response"
	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	githubUC  domain.GithubUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, githubUC domain.GithubUsecase) {
	handler := &ProfileHandler{profileUC: profileUC, githubUC: githubUC}

	publicProfile := public.Group("/profile")
	{
		publicProfile.GET("", handler.List)
		publicProfile.GET("/user/:user_id", handler.GetByOwner)
		publicProfile.GET("/github/:username", handler.GithubRepos)
	}

	protectedProfile := protected.Group("/profile")
	{
		protectedProfile.GET("/me", handler.Me)
		protectedProfile.POST("", handler.CreateOrUpdate)
		protectedProfile.DELETE("", handler.DeleteAccount)
		protectedProfile.PUT("/experience", handler.AddExperience)
		protectedProfile.DELETE("/experience/:exp_id", handler.RemoveExperience)
		protectedProfile.PUT("/education", handler.AddEducation)
		protectedProfile.DELETE("/education/:edu_id", handler.RemoveEducation)
	}
}

// Me godoc
// @Summary      Get own profile
// @Description  Get the profile of the currently logged-in user
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  map[string]string
// @Router       /profile/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) Me(c *gin.Context) {
	profile, err := h.profileUC.GetMyProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// CreateOrUpdate godoc
// @Summary      Create or update own profile
// @Description  Builds a partial field set from the body and upserts the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileInput  true  "Profile fields"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  map[string]interface{}
// @Router       /profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateOrUpdate(c *gin.Context) {
	var input domain.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.CreateOrUpdate(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profiles)
}

func (h *ProfileHandler) GetByOwner(c *gin.Context) {
	profile, err := h.profileUC.GetByOwner(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// DeleteAccount removes the caller's profile together with the user record.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	if err := h.profileUC.DeleteAccount(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	response.Msg(c, http.StatusOK, "User Removed")
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var input domain.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.AddExperience(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	profile, err := h.profileUC.RemoveExperience(c.Request.Context(), c.Param("exp_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var input domain.EducationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.AddEducation(c.Request.Context(), &input)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	profile, err := h.profileUC.RemoveEducation(c.Request.Context(), c.Param("edu_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// GithubRepos proxies the five newest public repos of a GitHub user.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.githubUC.ListRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, repos)
}
