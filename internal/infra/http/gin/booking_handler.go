package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/validate"
	domainbooking "villastay/internal/domain/booking"
	"villastay/internal/store"
)

// BookingHandler wires booking creation to HTTP. The referenced
// property is not looked up: bookings against unknown property ids
// are accepted.
type BookingHandler struct {
	Store    store.Gateway
	Validate *validate.Validator
}

func (h BookingHandler) Create(c *gin.Context) {
	var b domainbooking.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.Validate.Struct(b); err != nil {
		writeValidationError(c, err)
		return
	}
	b.CreatedAt = time.Now().UTC()
	id, err := h.Store.Insert(c.Request.Context(), store.BookingCollection, b)
	if err != nil {
		writeStoreError(c, err, "booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

var _ BookingHTTP = BookingHandler{}
