// Package geocode resolves administrative boundary details via a
// Nominatim-compatible reverse geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/negrosgeo/riskmap/internal/domain"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
)

const defaultProvince = "Negros Oriental"

// Client queries a Nominatim reverse-geocoding endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

// Reverse resolves the barangay/municipality/province for a point. It
// never fails the caller: on any error it returns a placeholder result
// with Success=false.
func (c *Client) Reverse(ctx context.Context, point geo.Point) *domain.LocationInfo {
	info, err := c.reverse(ctx, point)
	if err != nil {
		return &domain.LocationInfo{
			Barangay:     "Unknown",
			Municipality: "Unknown",
			Province:     defaultProvince,
			FullAddress:  fmt.Sprintf("Lat: %.6f, Lng: %.6f", point.Lat, point.Lng),
			Success:      false,
		}
	}
	return info
}

func (c *Client) reverse(ctx context.Context, point geo.Point) (*domain.LocationInfo, error) {
	params := url.Values{
		"lat":            {fmt.Sprintf("%f", point.Lat)},
		"lon":            {fmt.Sprintf("%f", point.Lng)},
		"format":         {"json"},
		"addressdetails": {"1"},
		// Zoom 18 is detailed enough to resolve the barangay.
		"zoom": {"18"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "riskmap/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var decoded nominatimResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 2<<20)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	addr := decoded.Address

	// Nominatim tags Philippine barangays inconsistently.
	barangay := firstNonEmpty(addr["suburb"], addr["neighbourhood"], addr["village"], addr["hamlet"])
	if barangay == "" {
		barangay = "Unknown Barangay"
	}

	municipality := firstNonEmpty(addr["city"], addr["town"], addr["municipality"])
	if municipality == "" {
		municipality = "Unknown Municipality"
	}

	province := addr["state"]
	if province == "" {
		province = defaultProvince
	}

	return &domain.LocationInfo{
		Barangay:     barangay,
		Municipality: municipality,
		Province:     province,
		FullAddress:  decoded.DisplayName,
		Success:      true,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
