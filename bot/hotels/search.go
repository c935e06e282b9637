package hotels

import (
	"context"
	"log/slog"

	"github.com/m3rciful/staybot/bot/session"
	"github.com/m3rciful/staybot/core/logger"
)

// SearchLocations looks up destination candidates for the city named in the
// criteria. An empty slice means the provider knows no such place.
func (c *Client) SearchLocations(ctx context.Context, cr session.Criteria, notify Notifier) ([]session.Location, error) {
	spec, err := LocationRequest(cr, c.cfg.Locale)
	if err != nil {
		return nil, err
	}
	data, err := c.Do(ctx, spec, notify)
	if err != nil {
		return nil, err
	}
	locations, err := ExtractLocations(data)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "hotels.api", "locations.found",
		slog.String("city", cr.City),
		slog.Int("candidates", len(locations)),
	)
	return locations, nil
}

// SearchListings fetches hotel summaries for the chosen destination. The
// provider is always asked for its cheapest-first ordering; ranking for the
// other commands happens on top of this result.
func (c *Client) SearchListings(ctx context.Context, cr session.Criteria, notify Notifier) ([]session.Listing, error) {
	spec, err := ListingsRequest(cr, c.cfg.Locale, c.cfg.Currency, c.cfg.FetchSize)
	if err != nil {
		return nil, err
	}
	data, err := c.Do(ctx, spec, notify)
	if err != nil {
		return nil, err
	}
	listings, err := ExtractSummaries(data)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "hotels.api", "listings.found",
		slog.String("destination_id", cr.DestinationID),
		slog.Int("listings", len(listings)),
	)
	return listings, nil
}

// FetchDetail retrieves address, rating and gallery for one hotel.
func (c *Client) FetchDetail(ctx context.Context, hotelID string, notify Notifier) (Detail, error) {
	spec, err := DetailRequest(hotelID, c.cfg.Locale, c.cfg.Currency)
	if err != nil {
		return Detail{}, err
	}
	data, err := c.Do(ctx, spec, notify)
	if err != nil {
		return Detail{}, err
	}
	return ExtractDetail(data)
}
