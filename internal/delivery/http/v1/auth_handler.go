package v1

import (
	"net/http"

	"go-devconnect-backend/internal/delivery/http/response"
	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userUC domain.UserUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &AuthHandler{userUC: userUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.GET("", handler.Ping)
		publicAuth.POST("/login", handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

// Ping is the liveness probe.
func (h *AuthHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "Auth Route")
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	token, err := h.userUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated user, password hash omitted.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.userUC.GetCurrentUser(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}
