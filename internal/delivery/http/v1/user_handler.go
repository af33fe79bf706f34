package v1

import (
	"net/http"

	"go-devconnect-backend/internal/delivery/http/response"
	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(public *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := public.Group("/users")
	{
		users.POST("", handler.Register)
		users.GET("", handler.List)
		users.GET("/:user_id", handler.Get)
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with name, email and password, returns a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]interface{}
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	token, err := h.userUC.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUC.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}
