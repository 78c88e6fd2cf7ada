package middleware

import (
	"net/http"

	"ieso-dashboard/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics into the standard error envelope so a bug in a
// handler never leaks a stack trace to the UI.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		} else if err, ok := recovered.(error); ok {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
