package response

import (
	"github.com/gin-gonic/gin"
)

// The wire shapes match the clients already in the field: entities are
// returned bare, simple failures as {"msg": ...}, field-level validation
// failures as {"errors": [{"msg": ...}, ...]}.

// JSON sends a bare payload.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Msg sends a single-message body.
func Msg(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"msg": msg})
}

// Errors sends field-level validation messages.
func Errors(c *gin.Context, code int, errs interface{}) {
	c.JSON(code, gin.H{"errors": errs})
}
