package middleware

import (
	"net/http"

	"yogurt-planner/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware handles panics and errors
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		}
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			http.StatusInternalServerError, "Internal Server Error", message))
		c.Abort()
	})
}
