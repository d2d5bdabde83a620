package ginserver

import (
	"net/http"
	"testing"

	"villastay/internal/infra/storage/memory"
)

func newBooking() map[string]any {
	return map[string]any{
		"property_id": "64b5fc2e8a1f4c3d2e1b0a99",
		"guest_name":  "Kabir Rao",
		"guest_email": "kabir@example.com",
		"check_in":    "2026-09-01",
		"check_out":   "2026-09-05",
		"guests":      2,
		"total_price": 840,
	}
}

func TestCreateBookingReturnsID(t *testing.T) {
	h := newTestHandler(memory.NewStore())

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", newBooking())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &resp)
	if resp.ID == "" {
		t.Error("booking created without an id")
	}
}

// Referential integrity between bookings and properties is a
// documented non-goal: a booking against a property id that exists
// nowhere is still accepted.
func TestCreateBookingDoesNotCheckPropertyExists(t *testing.T) {
	h := newTestHandler(memory.NewStore())

	body := newBooking()
	body["property_id"] = "ffffffffffffffffffffffff"
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", body)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 despite unknown property", rec.Code)
	}
}

func TestCreateBookingRequiresTotalPrice(t *testing.T) {
	h := newTestHandler(memory.NewStore())

	body := newBooking()
	delete(body, "total_price")
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	decodeBody(t, rec, &resp)
	found := false
	for _, f := range resp.Fields {
		if f.Field == "total_price" && f.Message == "is required" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing total_price not reported: %s", rec.Body.String())
	}

	body["total_price"] = 0
	if rec := doJSON(t, h, http.MethodPost, "/api/bookings", body); rec.Code != http.StatusOK {
		t.Errorf("explicit zero total_price status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateBookingValidation(t *testing.T) {
	h := newTestHandler(memory.NewStore())

	rec := doJSON(t, h, http.MethodPost, "/api/bookings", map[string]any{
		"guest_email": "nope",
		"guests":      0,
		"total_price": -1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	decodeBody(t, rec, &resp)
	got := make(map[string]bool, len(resp.Fields))
	for _, f := range resp.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{"property_id", "guest_name", "guest_email", "check_in", "check_out", "guests", "total_price"} {
		if !got[want] {
			t.Errorf("missing field error %q: %s", want, rec.Body.String())
		}
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	h := newTestHandler(memory.NewStore())
	rec := doJSON(t, h, http.MethodPost, "/api/bookings", map[string]any{"guests": "two"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
