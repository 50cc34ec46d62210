// Package geo resolves street addresses to coordinates through the OpenCage
// forward geocoding API.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ErrAddressNotFound is returned when the geocoder has no match for an address.
var ErrAddressNotFound = errors.New("address not found")

const defaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCageGeocoder implements ports.Geocoder against the OpenCage API.
type OpenCageGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenCageGeocoder creates a geocoder using the given API key.
func NewOpenCageGeocoder(apiKey string) *OpenCageGeocoder {
	return &OpenCageGeocoder{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewOpenCageGeocoderWithBaseURL creates a geocoder pointed at a custom
// endpoint. Used by tests to target a stub server.
func NewOpenCageGeocoderWithBaseURL(apiKey, baseURL string) *OpenCageGeocoder {
	g := NewOpenCageGeocoder(apiKey)
	g.baseURL = baseURL
	return g
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Confidence int `json:"confidence"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// Geocode resolves an address line to a geographic point. The first result
// is taken; OpenCage orders results by relevance.
func (g *OpenCageGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("key", g.apiKey)
	query.Set("limit", "1")
	query.Set("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %s", ErrAddressNotFound, address)
	}

	geometry := decoded.Results[0].Geometry
	return kernel.NewGeoPoint(geometry.Lat, geometry.Lng)
}
