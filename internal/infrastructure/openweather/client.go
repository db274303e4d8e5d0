// Package openweather implements the Geocoder and WeatherProvider ports on
// the OpenWeatherMap REST API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cropguru/internal/domain"
	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

const (
	defaultGeoBaseURL      = "https://api.openweathermap.org/geo/1.0"
	defaultForecastBaseURL = "https://api.openweathermap.org/data/2.5"

	forecastDays = 5
)

var (
	_ output.Geocoder        = (*Client)(nil)
	_ output.WeatherProvider = (*Client)(nil)
)

// Client talks to the OpenWeatherMap geocoding and forecast endpoints.
type Client struct {
	apiKey          string
	httpClient      *http.Client
	geoBaseURL      string
	forecastBaseURL string
}

// NewClient creates a Client with sane HTTP timeouts.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:          apiKey,
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		geoBaseURL:      defaultGeoBaseURL,
		forecastBaseURL: defaultForecastBaseURL,
	}
}

type geoResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// Geocode resolves a free-form place name to its first match.
func (c *Client) Geocode(ctx context.Context, location string) (*entities.Coordinates, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var results []geoResult
	if err := c.getJSON(ctx, c.geoBaseURL+"/direct?"+q.Encode(), &results); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", location, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrLocationNotFound, location)
	}

	first := results[0]
	return &entities.Coordinates{
		Lat:     first.Lat,
		Lon:     first.Lon,
		Name:    first.Name,
		Country: first.Country,
		State:   first.State,
	}, nil
}

type forecastResponse struct {
	List []forecastSlot `json:"list"`
}

type forecastSlot struct {
	DtTxt string `json:"dt_txt"` // "2006-01-02 15:04:05"
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Forecast returns up to five days of processed forecast, picking the
// midday slot of each day when one exists.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]entities.WeatherDay, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastBaseURL+"/forecast?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
	}
	if len(resp.List) == 0 {
		return nil, domain.ErrWeatherUnavailable
	}

	// One representative slot per calendar day, preferring 11:00-13:00.
	picked := make(map[string]forecastSlot)
	var order []string
	for _, slot := range resp.List {
		if len(slot.DtTxt) < 13 {
			continue
		}
		date, hour := slot.DtTxt[:10], slot.DtTxt[11:13]
		prev, seen := picked[date]
		if !seen {
			picked[date] = slot
			order = append(order, date)
			continue
		}
		if midday(hour) && !midday(prev.DtTxt[11:13]) {
			picked[date] = slot
		}
	}

	days := make([]entities.WeatherDay, 0, forecastDays)
	for i, date := range order {
		if i == forecastDays {
			break
		}
		slot := picked[date]
		condition, icon := "", "-"
		if len(slot.Weather) > 0 {
			condition = slot.Weather[0].Main
			icon = iconEmoji(slot.Weather[0].Icon)
		}
		days = append(days, entities.WeatherDay{
			Day:       dayLabel(i),
			Temp:      fmt.Sprintf("%d°C", int(slot.Main.Temp+0.5)),
			Icon:      icon,
			Condition: condition,
		})
	}
	return days, nil
}

func midday(hour string) bool {
	return hour >= "11" && hour <= "13"
}

func dayLabel(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("+%d Days", i)
	}
}

// iconEmoji maps OpenWeatherMap icon codes to the emoji shown in the UI.
func iconEmoji(code string) string {
	switch code {
	case "01d":
		return "☀️"
	case "01n":
		return "🌙"
	case "02d", "02n":
		return "⛅️"
	case "03d", "03n", "04d", "04n":
		return "☁️"
	case "09d", "09n":
		return "🌦️"
	case "10d", "10n":
		return "🌧️"
	case "11d", "11n":
		return "⛈️"
	case "13d", "13n":
		return "❄️"
	case "50d", "50n":
		return "🌫️"
	default:
		return "-"
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
