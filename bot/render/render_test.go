package render

import (
	"strings"
	"testing"
	"time"

	"github.com/m3rciful/staybot/bot/session"
)

func listings(n int) []session.Listing {
	out := make([]session.Listing, n)
	for i := range out {
		out[i] = session.Listing{ID: string(rune('a' + i%26)) + itoa(i)}
	}
	return out
}

func itoa(i int) string {
	digits := "0123456789"
	if i == 0 {
		return "0"
	}
	var b []byte
	for i > 0 {
		b = append([]byte{digits[i%10]}, b...)
		i /= 10
	}
	return string(b)
}

func TestNextPageFullBufferOffersMore(t *testing.T) {
	buf := session.NewBuffer(listings(150))
	page := NextPage(buf, 20)
	if len(page.Listings) != 20 {
		t.Fatalf("page size = %d, want 20", len(page.Listings))
	}
	if !page.HasMore {
		t.Fatal("full page must offer a continuation")
	}
	if page.Short {
		t.Fatal("full page must not be marked short")
	}
}

func TestNextPageShortBuffer(t *testing.T) {
	buf := session.NewBuffer(listings(15))
	page := NextPage(buf, 20)
	if len(page.Listings) != 15 {
		t.Fatalf("page size = %d, want all 15", len(page.Listings))
	}
	if page.HasMore {
		t.Fatal("short page must not offer more")
	}
	if !page.Short {
		t.Fatal("short page must be marked short")
	}
}

func TestNextPageExactBuffer(t *testing.T) {
	buf := session.NewBuffer(listings(20))
	page := NextPage(buf, 20)
	if len(page.Listings) != 20 || page.Short || !page.HasMore {
		t.Fatalf("unexpected page: len=%d short=%v more=%v",
			len(page.Listings), page.Short, page.HasMore)
	}
}

func TestNights(t *testing.T) {
	in := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		out  time.Time
		want int
	}{
		{in.AddDate(0, 0, 3), 3},
		{in.AddDate(0, 0, 1), 1},
		{in, 1},
		{in.Add(-time.Hour), 1},
	}
	for _, tc := range cases {
		if got := Nights(in, tc.out); got != tc.want {
			t.Fatalf("Nights(%v) = %d, want %d", tc.out, got, tc.want)
		}
	}
}

func TestPricePerNight(t *testing.T) {
	if got := PricePerNight(300, 1); got != 300.00 {
		t.Fatalf("300/1 = %v, want 300.00", got)
	}
	if got := PricePerNight(300, 3); got != 100.00 {
		t.Fatalf("300/3 = %v, want 100.00", got)
	}
	if got := PricePerNight(100, 3); got != 33.33 {
		t.Fatalf("100/3 = %v, want 33.33", got)
	}
	// A zero night count still bills one night.
	if got := PricePerNight(300, 0); got != 300.00 {
		t.Fatalf("300/0 = %v, want 300.00", got)
	}
}

func TestPhotoBatchTruncates(t *testing.T) {
	l := &session.Listing{Images: []string{"1", "2", "3"}}
	photos, truncated := PhotoBatch(l, 5)
	if len(photos) != 3 {
		t.Fatalf("photos = %d, want 3", len(photos))
	}
	if !truncated {
		t.Fatal("expected truncation flag when fewer photos than requested")
	}

	photos, truncated = PhotoBatch(l, 2)
	if len(photos) != 2 || truncated {
		t.Fatalf("photos = %d truncated = %v, want 2/false", len(photos), truncated)
	}
}

func TestPhotoBatchCapsAtMediaGroupLimit(t *testing.T) {
	imgs := make([]string, 20)
	for i := range imgs {
		imgs[i] = itoa(i)
	}
	photos, truncated := PhotoBatch(&session.Listing{Images: imgs}, 15)
	if len(photos) != MaxPhotosPerBatch || truncated {
		t.Fatalf("photos = %d truncated = %v", len(photos), truncated)
	}
}

func TestWebsiteURL(t *testing.T) {
	got := WebsiteURL("12345")
	want := "https://www.hotels.com/h12345.Hotel-Information"
	if got != want {
		t.Fatalf("url = %s, want %s", got, want)
	}
}

func TestListingText(t *testing.T) {
	cr := session.Criteria{
		CheckIn:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
	l := &session.Listing{
		ID:          "1",
		Name:        "Grand Hotel",
		Address:     "1 Main St",
		Price:       300,
		HasPrice:    true,
		Distance:    1.25,
		HasDistance: true,
		Rating:      4.5,
		HasRating:   true,
	}
	text := ListingText(l, cr)
	for _, want := range []string{
		"*Grand Hotel*",
		"1 Main St",
		"Rating: 4.5",
		"1.25 mi",
		"Price for 3 nights: $300.00",
		"Price per night: $100.00",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("text missing %q:\n%s", want, text)
		}
	}
}

func TestListingTextWithoutPrice(t *testing.T) {
	text := ListingText(&session.Listing{ID: "1", Name: "X"}, session.Criteria{})
	if !strings.Contains(text, "Price: not available") {
		t.Fatalf("text missing absent-price marker:\n%s", text)
	}
}
