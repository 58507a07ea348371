// Package overpass discovers facilities around a point via an Overpass
// API endpoint.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
)

// Element is one raw facility record from the discovery service. Tag
// interpretation happens in the classifier, not here.
type Element struct {
	ID   int64
	Type string
	Tags map[string]string
	Lat  float64
	Lng  float64
}

// Client queries an Overpass API endpoint.
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

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FindFacilities queries for facilities within radius meters of the
// point. Elements are deduplicated by id; records without usable
// coordinates are dropped.
func (c *Client) FindFacilities(ctx context.Context, point geo.Point, radius int) ([]*Element, error) {
	query := buildQuery(point, radius)

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
			strings.NewReader(url.Values{"data": {query}}.Encode()))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("overpass request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("overpass status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("overpass status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, 16<<20))
		if err != nil {
			return fmt.Errorf("read overpass response: %w", err)
		}
		return nil
	}

	err := backoff.Retry(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx),
	)
	if err != nil {
		return nil, err
	}

	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	seen := make(map[int64]struct{}, len(resp.Elements))
	elements := make([]*Element, 0, len(resp.Elements))
	for _, raw := range resp.Elements {
		if _, ok := seen[raw.ID]; ok {
			continue
		}
		seen[raw.ID] = struct{}{}

		lat, lng := raw.Lat, raw.Lon
		if raw.Type == "way" || raw.Type == "relation" {
			if raw.Center == nil {
				continue
			}
			lat, lng = raw.Center.Lat, raw.Center.Lon
		}
		if lat == 0 && lng == 0 {
			continue
		}

		elements = append(elements, &Element{
			ID:   raw.ID,
			Type: raw.Type,
			Tags: raw.Tags,
			Lat:  lat,
			Lng:  lng,
		})
	}

	return elements, nil
}

// buildQuery groups similar tags with regexes to keep the query cheap
// enough to avoid provider-side timeouts.
func buildQuery(point geo.Point, radius int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radius, point.Lat, point.Lng)
	return fmt.Sprintf(`
[out:json][timeout:25];
(
nwr["amenity"~"^(hospital|clinic|doctors|pharmacy|fire_station|police)$"]%[1]s;
nwr["amenity"~"^(school|kindergarten|university|college|restaurant|fast_food|cafe)$"]%[1]s;
nwr["amenity"~"^(bank|atm|fuel|marketplace|townhall|community_centre|bus_station|ferry_terminal|post_office)$"]%[1]s;
nwr["shop"~"^(supermarket|convenience|mall|department_store)$"]%[1]s;
nwr["office"="government"]%[1]s;
nwr["healthcare"="hospital"]%[1]s;
);
out center;
`, around)
}
