package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/negrosgeo/riskmap/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPoint = geo.Point{Lat: 9.3103, Lng: 123.3083}

func TestReverse_ResolvesAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "18", r.URL.Query().Get("zoom"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`{
			"display_name": "Poblacion, Valencia, Negros Oriental, Philippines",
			"address": {
				"suburb": "Poblacion",
				"town": "Valencia",
				"state": "Negros Oriental"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	info := client.Reverse(context.Background(), testPoint)

	require.True(t, info.Success)
	assert.Equal(t, "Poblacion", info.Barangay)
	assert.Equal(t, "Valencia", info.Municipality)
	assert.Equal(t, "Negros Oriental", info.Province)
	assert.Equal(t, "Poblacion, Valencia, Negros Oriental, Philippines", info.FullAddress)
}

func TestReverse_BarangayKeyPreference(t *testing.T) {
	cases := []struct {
		name    string
		address string
		want    string
	}{
		{"suburb wins", `{"suburb": "A", "neighbourhood": "B", "village": "C", "hamlet": "D"}`, "A"},
		{"neighbourhood next", `{"neighbourhood": "B", "village": "C", "hamlet": "D"}`, "B"},
		{"village next", `{"village": "C", "hamlet": "D"}`, "C"},
		{"hamlet last", `{"hamlet": "D"}`, "D"},
		{"none", `{}`, "Unknown Barangay"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"display_name": "x", "address": ` + tc.address + `}`))
			}))
			defer server.Close()

			info := NewClient(server.URL, time.Second).Reverse(context.Background(), testPoint)
			assert.Equal(t, tc.want, info.Barangay)
		})
	}
}

func TestReverse_MunicipalityKeyPreference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "x", "address": {"city": "Dumaguete", "town": "Ignored"}}`))
	}))
	defer server.Close()

	info := NewClient(server.URL, time.Second).Reverse(context.Background(), testPoint)
	assert.Equal(t, "Dumaguete", info.Municipality)
}

func TestReverse_DefaultProvince(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "x", "address": {"town": "Valencia"}}`))
	}))
	defer server.Close()

	info := NewClient(server.URL, time.Second).Reverse(context.Background(), testPoint)
	assert.Equal(t, "Negros Oriental", info.Province)
}

func TestReverse_FailureReturnsPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	info := NewClient(server.URL, time.Second).Reverse(context.Background(), testPoint)

	require.NotNil(t, info)
	assert.False(t, info.Success)
	assert.Equal(t, "Unknown", info.Barangay)
	assert.Equal(t, "Unknown", info.Municipality)
	assert.Equal(t, "Negros Oriental", info.Province)
	assert.Contains(t, info.FullAddress, "Lat: 9.310300")
}
