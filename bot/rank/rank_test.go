package rank

import (
	"testing"

	"github.com/m3rciful/staybot/bot/session"
)

func ids(listings []session.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestByPriceDescIsIdempotent(t *testing.T) {
	listings := []session.Listing{
		{ID: "a", Price: 50, HasPrice: true},
		{ID: "b", Price: 200, HasPrice: true},
		{ID: "c", Price: 120, HasPrice: true},
	}
	ByPriceDesc(listings)
	want := []string{"b", "c", "a"}
	if got := ids(listings); !equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	ByPriceDesc(listings)
	if got := ids(listings); !equal(got, want) {
		t.Fatalf("re-ranking changed order: %v", got)
	}
}

func TestByPriceDescSinksMissingPrices(t *testing.T) {
	listings := []session.Listing{
		{ID: "a"},
		{ID: "b", Price: 10, HasPrice: true},
		{ID: "c"},
	}
	ByPriceDesc(listings)
	want := []string{"b", "a", "c"}
	if got := ids(listings); !equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestByBestDealPromotesInRange(t *testing.T) {
	listings := []session.Listing{
		{ID: "far", Price: 50, HasPrice: true, Distance: 8, HasDistance: true},
		{ID: "fit", Price: 100, HasPrice: true, Distance: 2, HasDistance: true},
	}
	r := Ranges{MinPrice: 40, MaxPrice: 120, MinDistance: 0, MaxDistance: 5}

	ByBestDeal(listings, r)
	want := []string{"fit", "far"}
	if got := ids(listings); !equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	// Out-of-range listings are demoted, not dropped.
	if len(listings) != 2 {
		t.Fatalf("listings = %d, want 2", len(listings))
	}
}

func TestByBestDealKeepsTieOrder(t *testing.T) {
	listings := []session.Listing{
		{ID: "1", Price: 60, HasPrice: true, Distance: 1, HasDistance: true},
		{ID: "2", Price: 70, HasPrice: true, Distance: 2, HasDistance: true},
		{ID: "3", Price: 999, HasPrice: true, Distance: 9, HasDistance: true},
		{ID: "4", Price: 80, HasPrice: true, Distance: 3, HasDistance: true},
	}
	r := Ranges{MinPrice: 0, MaxPrice: 100, MinDistance: 0, MaxDistance: 5}
	ByBestDeal(listings, r)
	want := []string{"1", "2", "4", "3"}
	if got := ids(listings); !equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestByBestDealRequiresBothFields(t *testing.T) {
	listings := []session.Listing{
		{ID: "noprice", Distance: 1, HasDistance: true},
		{ID: "full", Price: 50, HasPrice: true, Distance: 1, HasDistance: true},
	}
	ByBestDeal(listings, Ranges{MinPrice: 0, MaxPrice: 100, MaxDistance: 5})
	if got := ids(listings); !equal(got, []string{"full", "noprice"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestApplyLowPriceKeepsProviderOrder(t *testing.T) {
	listings := []session.Listing{
		{ID: "cheap", Price: 10, HasPrice: true},
		{ID: "mid", Price: 20, HasPrice: true},
	}
	Apply(session.CommandLowPrice, listings, session.Criteria{})
	if got := ids(listings); !equal(got, []string{"cheap", "mid"}) {
		t.Fatalf("lowprice must keep provider order, got %v", got)
	}
}
