// Package render turns a ranked listing buffer into Telegram-ready pages:
// message text, photo batches and the decision whether a load-more offer
// makes sense.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/telegram/format"
)

// MaxPhotosPerBatch is the Telegram media group ceiling.
const MaxPhotosPerBatch = 10

// Page is one round of results cut from the front of the buffer.
type Page struct {
	Listings []*session.Listing
	// Short reports that fewer listings than requested were available.
	Short bool
	// HasMore reports that a load-more offer is appropriate after this
	// page: the buffer held at least the requested count.
	HasMore bool
}

// NextPage takes up to size listings from the front of the buffer without
// consuming them. The caller removes them once they have been shown.
func NextPage(buf *session.Buffer, size int) Page {
	if size <= 0 {
		return Page{}
	}
	remaining := buf.Len()
	page := Page{
		Listings: buf.Head(size),
		Short:    remaining < size,
		HasMore:  remaining >= size,
	}
	return page
}

// Nights returns the billable night count for a stay. Same-day or inverted
// ranges still bill one night.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// PricePerNight divides the total price by the night count, rounded to two
// decimals.
func PricePerNight(total float64, nights int) float64 {
	if nights < 1 {
		nights = 1
	}
	return math.Round(total/float64(nights)*100) / 100
}

// WebsiteURL returns the public page for a hotel listing.
func WebsiteURL(hotelID string) string {
	return fmt.Sprintf("https://www.hotels.com/h%s.Hotel-Information", hotelID)
}

// ListingText renders the Markdown message body for one hotel.
func ListingText(l *session.Listing, cr session.Criteria) string {
	var b strings.Builder
	name := l.Name
	if name == "" {
		name = "Unnamed hotel"
	}
	fmt.Fprintf(&b, "*%s*\n", mdEscape(name))
	if l.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", mdEscape(l.Address))
	}
	if l.HasRating {
		fmt.Fprintf(&b, "Rating: %.1f\n", l.Rating)
	}
	if l.HasDistance {
		fmt.Fprintf(&b, "Distance from centre: %.2f mi\n", l.Distance)
	}
	if l.HasPrice {
		nights := Nights(cr.CheckIn, cr.CheckOut)
		fmt.Fprintf(&b, "Price for %s: $%.2f\n", pluralNights(nights), l.Price)
		fmt.Fprintf(&b, "Price per night: $%.2f\n", PricePerNight(l.Price, nights))
	} else {
		b.WriteString("Price: not available\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// PhotoBatch selects up to requested photo URLs for a listing, capped by the
// media group limit. The second return reports whether the listing had fewer
// photos than requested.
func PhotoBatch(l *session.Listing, requested int) ([]string, bool) {
	if requested <= 0 {
		return nil, false
	}
	if requested > MaxPhotosPerBatch {
		requested = MaxPhotosPerBatch
	}
	truncated := len(l.Images) < requested
	n := requested
	if n > len(l.Images) {
		n = len(l.Images)
	}
	if n == 0 {
		return nil, truncated
	}
	out := make([]string, n)
	copy(out, l.Images[:n])
	return out, truncated
}

func mdEscape(s string) string {
	escaped, err := format.EscapeMarkdown(s, format.MarkdownV1, "")
	if err != nil {
		return s
	}
	return escaped
}

func pluralNights(n int) string {
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}
