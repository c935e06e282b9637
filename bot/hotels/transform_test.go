package hotels

import (
	"errors"
	"testing"
)

func TestExtractLocationsDropsIncompleteEntries(t *testing.T) {
	payload := []byte(`{"sr":[
		{"regionNames":{"fullName":"London, England"},"essId":{"sourceId":"2114"}},
		{"regionNames":{"fullName":"London, Ontario"}},
		{"essId":{"sourceId":"9999"}},
		{"regionNames":{"fullName":""},"essId":{"sourceId":"1"}}
	]}`)

	locations, err := ExtractLocations(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("candidates = %d, want 1", len(locations))
	}
	if locations[0].Name != "London, England" || locations[0].DestinationID != "2114" {
		t.Fatalf("unexpected candidate: %+v", locations[0])
	}
}

func TestExtractLocationsEmptyIsNotError(t *testing.T) {
	locations, err := ExtractLocations([]byte(`{"sr":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 0 {
		t.Fatalf("candidates = %d, want 0", len(locations))
	}
}

func TestExtractLocationsMalformed(t *testing.T) {
	_, err := ExtractLocations([]byte(`{"sr":`))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("err = %v, want ErrMalformedPayload", err)
	}
}

func TestExtractSummariesDegradesPerField(t *testing.T) {
	payload := []byte(`{"data":{"propertySearch":{"properties":[
		{"id":"1","name":"Grand","price":{"lead":{"amount":120.5}},
		 "destinationInfo":{"distanceFromDestination":{"value":1.4}}},
		{"id":"2","name":"No Price",
		 "destinationInfo":{"distanceFromDestination":{"value":3.0}}},
		{"name":"No ID","price":{"lead":{"amount":10}}},
		{"id":"3"}
	]}}}`)

	listings, err := ExtractSummaries(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("listings = %d, want 3", len(listings))
	}

	first := listings[0]
	if !first.HasPrice || first.Price != 120.5 || !first.HasDistance || first.Distance != 1.4 {
		t.Fatalf("unexpected first listing: %+v", first)
	}
	second := listings[1]
	if second.HasPrice || !second.HasDistance {
		t.Fatalf("missing price must clear flag only: %+v", second)
	}
	third := listings[2]
	if third.HasPrice || third.HasDistance || third.Name != "" {
		t.Fatalf("bare listing must keep absent markers: %+v", third)
	}
}

func TestExtractSummariesMissingBranch(t *testing.T) {
	listings, err := ExtractSummaries([]byte(`{"data":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("listings = %d, want 0", len(listings))
	}
}

func TestExtractDetail(t *testing.T) {
	payload := []byte(`{"data":{"propertyInfo":{
		"summary":{
			"location":{"address":{"addressLine":"1 Main St"}},
			"overview":{"propertyRating":{"rating":4.5}}
		},
		"propertyGallery":{"images":[
			{"image":{"url":"https://img/1.jpg"}},
			{"image":{}},
			{"image":{"url":"https://img/2.jpg"}}
		]}
	}}}`)

	d, err := ExtractDetail(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Address != "1 Main St" {
		t.Fatalf("address = %q", d.Address)
	}
	if !d.HasRating || d.Rating != 4.5 {
		t.Fatalf("rating = %v (%v)", d.Rating, d.HasRating)
	}
	if len(d.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(d.Images))
	}
}

func TestExtractDetailGalleryAbsent(t *testing.T) {
	payload := []byte(`{"data":{"propertyInfo":{
		"summary":{"location":{"address":{"addressLine":"2 Side St"}}}
	}}}`)

	d, err := ExtractDetail(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Address != "2 Side St" || d.HasRating || len(d.Images) != 0 {
		t.Fatalf("unexpected detail: %+v", d)
	}
}
