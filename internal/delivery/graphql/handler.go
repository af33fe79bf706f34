package graphql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewHandler executes GraphQL requests against a schema. Queries may arrive
// as a ?query= parameter (GET) or a JSON body (POST).
func NewHandler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request

		if c.Request.Method == http.MethodGet {
			req.Query = c.Query("query")
			req.OperationName = c.Query("operationName")
		} else if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid GraphQL request body"})
			return
		}

		if req.Query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Must provide query string"})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Request.Context(),
		})

		c.JSON(http.StatusOK, result)
	}
}
