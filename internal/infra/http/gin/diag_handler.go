package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/store"
)

// DiagHandler serves the liveness message and the /test connectivity
// report.
type DiagHandler struct {
	Store           store.Gateway
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func (h DiagHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Villa & Farmhouse Rental API is running"})
}

func (h DiagHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// Status reports store connectivity best-effort; it always answers 200
// so the report itself stays reachable when the store is down.
func (h DiagHandler) Status(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      setOrMissing(h.DatabaseURLSet),
		"database_name":     setOrMissing(h.DatabaseNameSet),
		"connection_status": "not connected",
		"collections":       []string{},
	}
	ctx := c.Request.Context()
	switch err := h.Store.Ping(ctx); {
	case err == nil:
		resp["database"] = "connected"
		resp["connection_status"] = "connected"
		if names, err := h.Store.Collections(ctx); err == nil {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
		}
	case errors.Is(err, store.ErrUnavailable):
		resp["database"] = "not configured"
	default:
		resp["database"] = "error: " + err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func setOrMissing(set bool) string {
	if set {
		return "set"
	}
	return "missing"
}

var _ DiagHTTP = DiagHandler{}
