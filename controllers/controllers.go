package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Rohit220707/FitTrack-pro/services"

	"github.com/gin-gonic/gin"
)

// userIDFromCtx reads the identity set by the auth middleware.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// respondError maps service errors onto the HTTP taxonomy. Unknown errors are
// logged server-side and surface as a bare 500; no internal detail leaks.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		log.Printf("handler error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}

// parseDate resolves an optional request date. Empty means "now"; otherwise
// accepts YYYY-MM-DD or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
