package v1

import (
	"go-devconnect-backend/config"
	gqldelivery "go-devconnect-backend/internal/delivery/graphql"
	"go-devconnect-backend/internal/delivery/http/middleware"
	"go-devconnect-backend/internal/domain"
	"go-devconnect-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

type RouterDeps struct {
	UserUC    domain.UserUsecase
	ProfileUC domain.ProfileUsecase
	GithubUC  domain.GithubUsecase
	Schema    graphql.Schema
	Tokens    *token.Manager
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// GraphQL (public, mirrors the REST entities)
	gqlHandler := gqldelivery.NewHandler(deps.Schema)
	v1.GET("/graphql", gqlHandler)
	v1.POST("/graphql", gqlHandler)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.UserUC)
		NewUserHandler(v1, deps.UserUC)
		NewProfileHandler(v1, protected, deps.ProfileUC, deps.GithubUC)
	}

	return r
}
