package ginserver

import (
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/seed"
	"villastay/internal/store"
)

// SeedHandler inserts the bundled demo properties. Seeding is gated on
// the current property count so repeated calls cannot duplicate the
// sample set.
type SeedHandler struct {
	Store  store.Gateway
	Logger *slog.Logger
}

func (h SeedHandler) Seed(c *gin.Context) {
	ctx := c.Request.Context()
	count, err := h.Store.Count(ctx, store.PropertyCollection)
	if err != nil {
		writeStoreError(c, err, "property")
		return
	}
	if count >= seed.Threshold {
		c.JSON(http.StatusOK, gin.H{"inserted": 0})
		return
	}
	inserted := 0
	for _, sample := range seed.Properties() {
		sample.CreatedAt = time.Now().UTC()
		if _, err := h.Store.Insert(ctx, store.PropertyCollection, sample); err != nil {
			writeStoreError(c, err, "property")
			return
		}
		inserted++
	}
	if h.Logger != nil {
		h.Logger.Info("seeded demo properties", "inserted", inserted)
	}
	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}

var _ SeedHTTP = SeedHandler{}
