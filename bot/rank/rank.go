// Package rank orders hotel listings according to the search command that
// started the session. All sorts are stable, so ranking an already ranked
// slice changes nothing.
package rank

import (
	"sort"

	"github.com/m3rciful/staybot/bot/session"
)

// Ranges holds the user-entered bestdeal bounds. Both bounds of each pair
// are inclusive.
type Ranges struct {
	MinPrice    float64
	MaxPrice    float64
	MinDistance float64
	MaxDistance float64
}

// Apply reorders listings in place for the given command. Lowprice keeps the
// provider's cheapest-first order untouched.
func Apply(cmd session.Command, listings []session.Listing, cr session.Criteria) {
	switch cmd {
	case session.CommandHighPrice:
		ByPriceDesc(listings)
	case session.CommandBestDeal:
		ByBestDeal(listings, Ranges{
			MinPrice:    cr.MinPrice,
			MaxPrice:    cr.MaxPrice,
			MinDistance: cr.MinDistance,
			MaxDistance: cr.MaxDistance,
		})
	}
}

// ByPriceDesc sorts listings by price, highest first. Listings without a
// price sink to the end, keeping their relative order.
func ByPriceDesc(listings []session.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if a.HasPrice != b.HasPrice {
			return a.HasPrice
		}
		if !a.HasPrice {
			return false
		}
		return a.Price > b.Price
	})
}

// ByBestDeal promotes listings that fall inside both the price and the
// distance range. This is a soft preference: out-of-range listings stay in
// the result, after the in-range ones, and ties keep the incoming order.
func ByBestDeal(listings []session.Listing, r Ranges) {
	sort.SliceStable(listings, func(i, j int) bool {
		return matches(listings[i], r) && !matches(listings[j], r)
	})
}

func matches(l session.Listing, r Ranges) bool {
	if !l.HasPrice || !l.HasDistance {
		return false
	}
	if l.Price < r.MinPrice || l.Price > r.MaxPrice {
		return false
	}
	if l.Distance < r.MinDistance || l.Distance > r.MaxDistance {
		return false
	}
	return true
}
