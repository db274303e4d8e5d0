package output

import (
	"context"

	"cropguru/internal/domain/entities"
)

// Geocoder resolves a free-form place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*entities.Coordinates, error)
}

// WeatherProvider returns the processed multi-day forecast for a point.
type WeatherProvider interface {
	Forecast(ctx context.Context, lat, lon float64) ([]entities.WeatherDay, error)
}
