package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropguru/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.geoBaseURL = srv.URL
	c.forecastBaseURL = srv.URL
	return c
}

func TestGeocodeFirstMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pune", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(`[{"name":"Pune","lat":18.52,"lon":73.85,"country":"IN","state":"Maharashtra"}]`))
	})

	place, err := c.Geocode(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, "Pune", place.Name)
	assert.Equal(t, 18.52, place.Lat)
	assert.Equal(t, 73.85, place.Lon)
	assert.Equal(t, "Maharashtra", place.State)
}

func TestGeocodeNoMatch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.Geocode(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGeocodeServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Geocode(context.Background(), "Pune")
	assert.Error(t, err)
}

func TestForecastPicksMiddaySlots(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"list":[
			{"dt_txt":"2026-09-01 09:00:00","main":{"temp":27.1},"weather":[{"main":"Clouds","icon":"03d"}]},
			{"dt_txt":"2026-09-01 12:00:00","main":{"temp":31.6},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-01 15:00:00","main":{"temp":33.0},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-02 12:00:00","main":{"temp":29.4},"weather":[{"main":"Rain","icon":"10d"}]},
			{"dt_txt":"2026-09-03 06:00:00","main":{"temp":24.9},"weather":[{"main":"Thunderstorm","icon":"11d"}]}
		]}`))
	})

	days, err := c.Forecast(context.Background(), 18.52, 73.85)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, "Today", days[0].Day)
	assert.Equal(t, "32°C", days[0].Temp)
	assert.Equal(t, "☀️", days[0].Icon)
	assert.Equal(t, "Clear", days[0].Condition)

	assert.Equal(t, "Tomorrow", days[1].Day)
	assert.Equal(t, "🌧️", days[1].Icon)

	// No midday slot on the third day: the first slot stands in.
	assert.Equal(t, "+2 Days", days[2].Day)
	assert.Equal(t, "25°C", days[2].Temp)
	assert.Equal(t, "⛈️", days[2].Icon)
}

func TestForecastCapsAtFiveDays(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list":[
			{"dt_txt":"2026-09-01 12:00:00","main":{"temp":30},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-02 12:00:00","main":{"temp":30},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-03 12:00:00","main":{"temp":30},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-04 12:00:00","main":{"temp":30},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-05 12:00:00","main":{"temp":30},"weather":[{"main":"Clear","icon":"01d"}]},
			{"dt_txt":"2026-09-06 12:00:00","main":{"temp":30},"weather":[{"main":"Clear","icon":"01d"}]}
		]}`))
	})

	days, err := c.Forecast(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, days, 5)
	assert.Equal(t, "+4 Days", days[4].Day)
}

func TestForecastEmptyList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list":[]}`))
	})

	_, err := c.Forecast(context.Background(), 0, 0)
	assert.ErrorIs(t, err, domain.ErrWeatherUnavailable)
}

func TestIconEmojiUnknownCode(t *testing.T) {
	assert.Equal(t, "-", iconEmoji("99x"))
}
