package hotels

import (
	"encoding/json"
	"fmt"

	"github.com/m3rciful/staybot/bot/session"
)

// Provider payloads are deeply nested and any branch may be absent, so the
// decode targets use pointers throughout. Extraction degrades per field: a
// missing price or distance marks the listing instead of failing the batch.

type locationsEnvelope struct {
	SR []struct {
		RegionNames *struct {
			FullName *string `json:"fullName"`
		} `json:"regionNames"`
		EssID *struct {
			SourceID *string `json:"sourceId"`
		} `json:"essId"`
	} `json:"sr"`
}

type listingsEnvelope struct {
	Data *struct {
		PropertySearch *struct {
			Properties []struct {
				ID    *string `json:"id"`
				Name  *string `json:"name"`
				Price *struct {
					Lead *struct {
						Amount *float64 `json:"amount"`
					} `json:"lead"`
				} `json:"price"`
				DestinationInfo *struct {
					DistanceFromDestination *struct {
						Value *float64 `json:"value"`
					} `json:"distanceFromDestination"`
				} `json:"destinationInfo"`
			} `json:"properties"`
		} `json:"propertySearch"`
	} `json:"data"`
}

type detailEnvelope struct {
	Data *struct {
		PropertyInfo *struct {
			Summary *struct {
				Location *struct {
					Address *struct {
						AddressLine *string `json:"addressLine"`
					} `json:"address"`
				} `json:"location"`
				Overview *struct {
					PropertyRating *struct {
						Rating *float64 `json:"rating"`
					} `json:"propertyRating"`
				} `json:"overview"`
			} `json:"summary"`
			PropertyGallery *struct {
				Images []struct {
					Image *struct {
						URL *string `json:"url"`
					} `json:"image"`
				} `json:"images"`
			} `json:"propertyGallery"`
		} `json:"propertyInfo"`
	} `json:"data"`
}

// ExtractLocations decodes a destination lookup response into candidates.
// Entries missing either a display name or a destination id are dropped.
// An empty candidate list is a valid outcome, not an error.
func ExtractLocations(data []byte) ([]session.Location, error) {
	var env locationsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	out := make([]session.Location, 0, len(env.SR))
	for _, entry := range env.SR {
		if entry.RegionNames == nil || entry.RegionNames.FullName == nil || *entry.RegionNames.FullName == "" {
			continue
		}
		if entry.EssID == nil || entry.EssID.SourceID == nil || *entry.EssID.SourceID == "" {
			continue
		}
		out = append(out, session.Location{
			Name:          *entry.RegionNames.FullName,
			DestinationID: *entry.EssID.SourceID,
		})
	}
	return out, nil
}

// ExtractSummaries decodes a listing search response. Listings without an id
// are dropped; missing price or distance only clears the matching Has flag.
func ExtractSummaries(data []byte) ([]session.Listing, error) {
	var env listingsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if env.Data == nil || env.Data.PropertySearch == nil {
		return nil, nil
	}
	props := env.Data.PropertySearch.Properties
	out := make([]session.Listing, 0, len(props))
	for _, p := range props {
		if p.ID == nil || *p.ID == "" {
			continue
		}
		l := session.Listing{ID: *p.ID}
		if p.Name != nil {
			l.Name = *p.Name
		}
		if p.Price != nil && p.Price.Lead != nil && p.Price.Lead.Amount != nil {
			l.Price = *p.Price.Lead.Amount
			l.HasPrice = true
		}
		if p.DestinationInfo != nil && p.DestinationInfo.DistanceFromDestination != nil &&
			p.DestinationInfo.DistanceFromDestination.Value != nil {
			l.Distance = *p.DestinationInfo.DistanceFromDestination.Value
			l.HasDistance = true
		}
		out = append(out, l)
	}
	return out, nil
}

// Detail carries the fields merged into a listing by the per-hotel summary
// fetch.
type Detail struct {
	Address   string
	Rating    float64
	HasRating bool
	Images    []string
}

// ExtractDetail decodes a per-hotel summary response. A failed gallery
// branch leaves Images empty without affecting address and rating.
func ExtractDetail(data []byte) (Detail, error) {
	var env detailEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Detail{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	var d Detail
	if env.Data == nil || env.Data.PropertyInfo == nil {
		return d, nil
	}
	info := env.Data.PropertyInfo
	if info.Summary != nil {
		if loc := info.Summary.Location; loc != nil && loc.Address != nil && loc.Address.AddressLine != nil {
			d.Address = *loc.Address.AddressLine
		}
		if ov := info.Summary.Overview; ov != nil && ov.PropertyRating != nil && ov.PropertyRating.Rating != nil {
			d.Rating = *ov.PropertyRating.Rating
			d.HasRating = true
		}
	}
	if info.PropertyGallery != nil {
		for _, img := range info.PropertyGallery.Images {
			if img.Image == nil || img.Image.URL == nil || *img.Image.URL == "" {
				continue
			}
			d.Images = append(d.Images, *img.Image.URL)
		}
	}
	return d, nil
}

// Merge applies the detail fields onto a listing and marks it detailed.
func (d Detail) Merge(l *session.Listing) {
	if l == nil {
		return
	}
	l.Address = d.Address
	l.Rating = d.Rating
	l.HasRating = d.HasRating
	l.Images = d.Images
	l.Detailed = true
}
