package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorJSON returns an error JSON response in the shape clients expect:
// {"error": "<reason>"}
func ErrorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FailFromError maps a service error to the right HTTP response.
// Validation errors carry their message to the client as 400; anything
// else is a storage/internal failure and must not leak detail.
func FailFromError(c *gin.Context, err error) {
	if IsValidationError(err) {
		ErrorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	ErrorJSON(c, http.StatusInternalServerError, "internal server error")
}
