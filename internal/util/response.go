package util

import "github.com/gin-gonic/gin"

// Business error codes for request-level failures (validation, bad ids).
// Domain responses use their own envelope shape; these only cover requests
// rejected before the service layer is reached.
const (
	CodeInvalidParam = 40001
	CodeServerErr    = 50001
)

// Error writes a uniform error body.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
