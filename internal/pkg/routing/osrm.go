// Package routing queries an OSRM-compatible road-routing service.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/negrosgeo/riskmap/internal/pkg/geo"
)

// TableLimit is the provider cap on points per table call.
const TableLimit = 100

// Result is one routed distance/duration estimate.
type Result struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Client talks to an OSRM server over its HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type tableResponse struct {
	Code      string       `json:"code"`
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Table returns routed distance/duration from origin to every destination
// in one call. Entries the router could not reach come back nil; the
// caller decides the fallback. Destinations must not exceed TableLimit.
func (c *Client) Table(ctx context.Context, origin geo.Point, destinations []geo.Point) ([]*Result, error) {
	if len(destinations) == 0 {
		return nil, nil
	}
	if len(destinations) > TableLimit {
		return nil, fmt.Errorf("table request exceeds %d destinations: %d", TableLimit, len(destinations))
	}

	var coords strings.Builder
	writeCoord(&coords, origin)
	dstIdx := make([]string, 0, len(destinations))
	for i, d := range destinations {
		coords.WriteByte(';')
		writeCoord(&coords, d)
		dstIdx = append(dstIdx, strconv.Itoa(i+1))
	}

	u := fmt.Sprintf("%s/table/v1/driving/%s?sources=0&destinations=%s&annotations=distance,duration",
		c.baseURL, coords.String(), strings.Join(dstIdx, ";"))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp tableResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode table response: %w", err)
	}
	if resp.Code != "Ok" || len(resp.Distances) == 0 || len(resp.Durations) == 0 {
		return nil, fmt.Errorf("table response code %q", resp.Code)
	}
	if len(resp.Distances[0]) != len(destinations) || len(resp.Durations[0]) != len(destinations) {
		return nil, fmt.Errorf("table response size mismatch: got %d entries for %d destinations",
			len(resp.Distances[0]), len(destinations))
	}

	results := make([]*Result, len(destinations))
	for i := range destinations {
		dist := resp.Distances[0][i]
		dur := resp.Durations[0][i]
		if dist == nil || dur == nil {
			continue
		}
		results[i] = &Result{DistanceMeters: *dist, DurationSeconds: *dur}
	}

	return results, nil
}

// Route returns the routed distance/duration for a single origin and
// destination.
func (c *Client) Route(ctx context.Context, origin, destination geo.Point) (*Result, error) {
	var coords strings.Builder
	writeCoord(&coords, origin)
	coords.WriteByte(';')
	writeCoord(&coords, destination)

	u := fmt.Sprintf("%s/route/v1/driving/%s?overview=false", c.baseURL, coords.String())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp routeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return nil, fmt.Errorf("route response code %q", resp.Code)
	}

	return &Result{
		DistanceMeters:  resp.Routes[0].Distance,
		DurationSeconds: resp.Routes[0].Duration,
	}, nil
}

// get performs the request with exponential backoff on rate limits and
// transient failures. Other client errors fail immediately.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("routing request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("routing status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("routing status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, 8<<20))
		if err != nil {
			return fmt.Errorf("read routing response: %w", err)
		}
		return nil
	}

	err := backoff.Retry(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx),
	)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// writeCoord appends "lng,lat" — OSRM wants longitude first.
func writeCoord(b *strings.Builder, p geo.Point) {
	b.WriteString(strconv.FormatFloat(p.Lng, 'f', 6, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Lat, 'f', 6, 64))
}
