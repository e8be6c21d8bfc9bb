package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"profileparser/utils"
)

// MaxRequestSize limits the request body size
func MaxRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// ValidateContentType ensures the request has expected content type
func ValidateContentType(expectedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")

		// Skip validation for GET and DELETE requests
		if c.Request.Method == "GET" || c.Request.Method == "DELETE" {
			c.Next()
			return
		}

		valid := false
		for _, expectedType := range expectedTypes {
			if strings.Contains(contentType, expectedType) {
				valid = true
				break
			}
		}

		if !valid {
			utils.BadRequestError(c, "Invalid content type", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
