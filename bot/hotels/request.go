package hotels

import (
	"net/url"

	"github.com/m3rciful/staybot/bot/session"
)

const (
	pathLocations = "/locations/v3/search"
	pathListings  = "/properties/v2/list"
	pathDetail    = "/properties/v2/get-summary"

	sortPriceLowToHigh = "PRICE_LOW_TO_HIGH"
)

// RequestSpec is a fully prepared provider request: method, path, query and
// JSON body. Building a spec performs no I/O, so it can be validated and
// tested without a network.
type RequestSpec struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type datePartsPayload struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

type destinationPayload struct {
	RegionID string `json:"regionId"`
}

type roomPayload struct {
	Adults int `json:"adults"`
}

type listingsPayload struct {
	Currency     string             `json:"currency"`
	Locale       string             `json:"locale"`
	Destination  destinationPayload `json:"destination"`
	CheckInDate  datePartsPayload   `json:"checkInDate"`
	CheckOutDate datePartsPayload   `json:"checkOutDate"`
	Rooms        []roomPayload      `json:"rooms"`
	StartIndex   int                `json:"resultsStartingIndex"`
	ResultsSize  int                `json:"resultsSize"`
	Sort         string             `json:"sort"`
}

type detailPayload struct {
	Currency   string `json:"currency"`
	Locale     string `json:"locale"`
	PropertyID string `json:"propertyId"`
}

// LocationRequest builds the destination lookup request for the city the
// user typed. Fails with ErrInvalidState when the city is empty.
func LocationRequest(cr session.Criteria, locale string) (RequestSpec, error) {
	if cr.City == "" {
		return RequestSpec{}, ErrInvalidState
	}
	q := url.Values{}
	q.Set("q", cr.City)
	q.Set("locale", locale)
	return RequestSpec{
		Method: "GET",
		Path:   pathLocations,
		Query:  q,
	}, nil
}

// ListingsRequest builds the hotel listing search request. The criteria must
// already carry a chosen destination, a valid date range and a guest count.
func ListingsRequest(cr session.Criteria, locale, currency string, fetchSize int) (RequestSpec, error) {
	if cr.DestinationID == "" || cr.CheckIn.IsZero() || cr.CheckOut.IsZero() || cr.Adults <= 0 {
		return RequestSpec{}, ErrInvalidState
	}
	body := listingsPayload{
		Currency:    currency,
		Locale:      locale,
		Destination: destinationPayload{RegionID: cr.DestinationID},
		CheckInDate: datePartsPayload{
			Day:   cr.CheckIn.Day(),
			Month: int(cr.CheckIn.Month()),
			Year:  cr.CheckIn.Year(),
		},
		CheckOutDate: datePartsPayload{
			Day:   cr.CheckOut.Day(),
			Month: int(cr.CheckOut.Month()),
			Year:  cr.CheckOut.Year(),
		},
		Rooms:       []roomPayload{{Adults: cr.Adults}},
		ResultsSize: fetchSize,
		Sort:        sortPriceLowToHigh,
	}
	return RequestSpec{
		Method: "POST",
		Path:   pathListings,
		Body:   body,
	}, nil
}

// DetailRequest builds the per-hotel summary request used to fetch address,
// rating and the photo gallery.
func DetailRequest(hotelID, locale, currency string) (RequestSpec, error) {
	if hotelID == "" {
		return RequestSpec{}, ErrInvalidState
	}
	return RequestSpec{
		Method: "POST",
		Path:   pathDetail,
		Body: detailPayload{
			Currency:   currency,
			Locale:     locale,
			PropertyID: hotelID,
		},
	}, nil
}
