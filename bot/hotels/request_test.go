package hotels

import (
	"errors"
	"testing"
	"time"

	"github.com/m3rciful/staybot/bot/session"
)

func TestLocationRequestRequiresCity(t *testing.T) {
	_, err := LocationRequest(session.Criteria{}, "en_US")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}

	spec, err := LocationRequest(session.Criteria{City: "london"}, "en_US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Method != "GET" || spec.Path != "/locations/v3/search" {
		t.Fatalf("unexpected spec: %+v", spec)
	}
	if got := spec.Query.Get("q"); got != "london" {
		t.Fatalf("q = %q, want london", got)
	}
	if got := spec.Query.Get("locale"); got != "en_US" {
		t.Fatalf("locale = %q, want en_US", got)
	}
}

func TestListingsRequestValidation(t *testing.T) {
	base := session.Criteria{
		DestinationID: "1001",
		CheckIn:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Adults:        2,
	}

	cases := []struct {
		name   string
		mutate func(*session.Criteria)
	}{
		{"missing destination", func(cr *session.Criteria) { cr.DestinationID = "" }},
		{"missing check-in", func(cr *session.Criteria) { cr.CheckIn = time.Time{} }},
		{"missing check-out", func(cr *session.Criteria) { cr.CheckOut = time.Time{} }},
		{"no adults", func(cr *session.Criteria) { cr.Adults = 0 }},
	}
	for _, tc := range cases {
		cr := base
		tc.mutate(&cr)
		if _, err := ListingsRequest(cr, "en_US", "USD", 200); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("%s: err = %v, want ErrInvalidState", tc.name, err)
		}
	}
}

func TestListingsRequestPayload(t *testing.T) {
	cr := session.Criteria{
		DestinationID: "1001",
		CheckIn:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Adults:        3,
	}
	spec, err := ListingsRequest(cr, "en_US", "USD", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Method != "POST" || spec.Path != "/properties/v2/list" {
		t.Fatalf("unexpected spec: %+v", spec)
	}
	body, ok := spec.Body.(listingsPayload)
	if !ok {
		t.Fatalf("unexpected body type %T", spec.Body)
	}
	if body.Destination.RegionID != "1001" {
		t.Fatalf("regionId = %q", body.Destination.RegionID)
	}
	if body.CheckInDate != (datePartsPayload{Day: 12, Month: 9, Year: 2026}) {
		t.Fatalf("checkInDate = %+v", body.CheckInDate)
	}
	if body.CheckOutDate != (datePartsPayload{Day: 15, Month: 9, Year: 2026}) {
		t.Fatalf("checkOutDate = %+v", body.CheckOutDate)
	}
	if len(body.Rooms) != 1 || body.Rooms[0].Adults != 3 {
		t.Fatalf("rooms = %+v", body.Rooms)
	}
	if body.ResultsSize != 200 || body.Sort != sortPriceLowToHigh {
		t.Fatalf("size/sort = %d/%s", body.ResultsSize, body.Sort)
	}
}

func TestDetailRequestRequiresID(t *testing.T) {
	if _, err := DetailRequest("", "en_US", "USD"); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
	spec, err := DetailRequest("42", "en_US", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := spec.Body.(detailPayload)
	if body.PropertyID != "42" {
		t.Fatalf("propertyId = %q, want 42", body.PropertyID)
	}
}
