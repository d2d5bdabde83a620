package ginserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/validate"
	"villastay/internal/domain/catalog"
	"villastay/internal/store"
)

const (
	defaultListLimit     = 12
	maxListLimit         = 50
	defaultFeaturedLimit = 8
	maxFeaturedLimit     = 24
)

// PropertyHandler wires the property catalog to HTTP.
type PropertyHandler struct {
	Store    store.Gateway
	Validate *validate.Validator
}

// List responds with properties matching the supplied search
// parameters. Zero matches is a success with an empty array.
func (h PropertyHandler) List(c *gin.Context) {
	filter, limit, fields := parseSearchQuery(c)
	if len(fields) > 0 {
		writeFieldErrors(c, fields)
		return
	}
	docs, err := h.Store.Find(c.Request.Context(), store.PropertyCollection, filter, limit)
	if err != nil {
		writeStoreError(c, err, "property")
		return
	}
	c.JSON(http.StatusOK, store.SerializeAll(docs))
}

// Featured ignores all filters and returns the first documents of the
// collection under the tighter featured limit.
func (h PropertyHandler) Featured(c *gin.Context) {
	limit, ferr := parseLimit(c.Query("limit"), defaultFeaturedLimit, maxFeaturedLimit)
	if ferr != nil {
		writeFieldErrors(c, []validate.FieldError{*ferr})
		return
	}
	docs, err := h.Store.Find(c.Request.Context(), store.PropertyCollection, catalog.SearchFilter{}, limit)
	if err != nil {
		writeStoreError(c, err, "property")
		return
	}
	c.JSON(http.StatusOK, store.SerializeAll(docs))
}

func (h PropertyHandler) Create(c *gin.Context) {
	var prop catalog.Property
	if err := c.ShouldBindJSON(&prop); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.Validate.Struct(prop); err != nil {
		writeValidationError(c, err)
		return
	}
	if prop.Amenities == nil {
		prop.Amenities = []string{}
	}
	if prop.Images == nil {
		prop.Images = []string{}
	}
	prop.CreatedAt = time.Now().UTC()
	id, err := h.Store.Insert(c.Request.Context(), store.PropertyCollection, prop)
	if err != nil {
		writeStoreError(c, err, "property")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h PropertyHandler) Get(c *gin.Context) {
	doc, err := h.Store.Get(c.Request.Context(), store.PropertyCollection, c.Param("id"))
	if err != nil {
		writeStoreError(c, err, "property")
		return
	}
	c.JSON(http.StatusOK, store.Serialize(doc))
}

var _ PropertyHTTP = PropertyHandler{}

// parseSearchQuery builds the typed filter from query parameters,
// collecting one field error per malformed value.
func parseSearchQuery(c *gin.Context) (catalog.SearchFilter, int, []validate.FieldError) {
	var fields []validate.FieldError
	filter := catalog.SearchFilter{
		Query:        c.Query("q"),
		PropertyType: c.Query("type"),
		Amenity:      c.Query("amenity"),
	}
	filter.MinPrice = parseFloatParam(c.Query("min_price"), "min_price", &fields)
	filter.MaxPrice = parseFloatParam(c.Query("max_price"), "max_price", &fields)
	filter.MinBedrooms = parseIntParam(c.Query("bedrooms"), "bedrooms", &fields)
	filter.MinGuests = parseIntParam(c.Query("guests"), "guests", &fields)
	limit, ferr := parseLimit(c.Query("limit"), defaultListLimit, maxListLimit)
	if ferr != nil {
		fields = append(fields, *ferr)
	}
	return filter, limit, fields
}

// parseLimit rejects out-of-range limits instead of clamping them.
func parseLimit(raw string, def, max int) (int, *validate.FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &validate.FieldError{Field: "limit", Message: "must be an integer"}
	}
	if limit < 1 || limit > max {
		return 0, &validate.FieldError{
			Field:   "limit",
			Message: "must be between 1 and " + strconv.Itoa(max),
		}
	}
	return limit, nil
}

func parseFloatParam(raw, name string, fields *[]validate.FieldError) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*fields = append(*fields, validate.FieldError{Field: name, Message: "must be a number"})
		return nil
	}
	return &value
}

func parseIntParam(raw, name string, fields *[]validate.FieldError) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*fields = append(*fields, validate.FieldError{Field: name, Message: "must be an integer"})
		return nil
	}
	return &value
}
