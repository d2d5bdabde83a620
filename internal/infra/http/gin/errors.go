package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/validate"
	"villastay/internal/store"
)

// writeStoreError maps the store error taxonomy onto status codes:
// malformed id 400, missing document 404, everything else 500.
func writeStoreError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + resource + " id"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	}
}

func writeValidationError(c *gin.Context, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func writeFieldErrors(c *gin.Context, fields []validate.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}
