package application

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"cropguru/internal/domain"
	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

// growthRamp is the share of the predicted yield reached at each growth
// stage between sowing and harvest.
var growthRamp = []float64{0.1, 0.4, 0.8, 1.0}

// AdvisoryService composes the farm-advisory features: the local yield
// estimate plus the AI, weather and scheme collaborators.
type AdvisoryService struct {
	advisor  output.CropAdvisor
	geocoder output.Geocoder
	weather  output.WeatherProvider
	schemes  output.SchemeRepository

	// randFloat returns a value in [0, 1); replaceable in tests.
	randFloat func() float64
}

func NewAdvisoryService(
	advisor output.CropAdvisor,
	geocoder output.Geocoder,
	weather output.WeatherProvider,
	schemes output.SchemeRepository,
) *AdvisoryService {
	return &AdvisoryService{
		advisor:   advisor,
		geocoder:  geocoder,
		weather:   weather,
		schemes:   schemes,
		randFloat: rand.Float64,
	}
}

// SetRandFloat replaces the variance source with a deterministic one.
func (s *AdvisoryService) SetRandFloat(fn func() float64) {
	s.randFloat = fn
}

// PredictYield runs the optimistic local simulation shown on the dashboard:
// a per-crop base yield scaled by land size and a seasonal variance factor
// in [0.8, 1.2).
func (s *AdvisoryService) PredictYield(req entities.YieldRequest) (*entities.YieldPrediction, error) {
	if req.LandSize <= 0 {
		return nil, domain.ErrInvalidLandSize
	}

	baseYield := 2.5
	pricePerTonne := 18000.0
	switch req.CropType {
	case "Rice":
		baseYield = 4.5
		pricePerTonne = 20000.0
	case "Wheat":
		baseYield = 3.5
	}

	variance := s.randFloat()*0.4 + 0.8
	predicted := round2(baseYield * req.LandSize * variance)

	return &entities.YieldPrediction{
		PredictedYield:  predicted,
		YieldPerHectare: round2(predicted / req.LandSize),
		EstimatedIncome: math.Round(predicted * pricePerTonne),
		Fertilizer: map[string]string{
			"N": "120kg/ha",
			"P": "60kg/ha",
			"K": "40kg/ha",
		},
		Irrigation:    "5-6 irrigations at critical stages",
		QuarterlyRamp: growthRamp,
	}, nil
}

func (s *AdvisoryService) DetectDisease(ctx context.Context, image []byte, mimeType string) (*entities.DiseaseResult, error) {
	if len(image) == 0 {
		return nil, domain.ErrEmptyImage
	}
	result, err := s.advisor.DetectDisease(ctx, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("detect disease: %w", err)
	}
	return result, nil
}

func (s *AdvisoryService) RecommendCrop(ctx context.Context, query entities.CropQuery) (*entities.CropRecommendation, error) {
	result, err := s.advisor.RecommendCrop(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("recommend crop: %w", err)
	}
	return result, nil
}

// AnalyzeField geocodes the location first so the advisor always receives
// concrete coordinates.
func (s *AdvisoryService) AnalyzeField(ctx context.Context, location string) (*entities.SatelliteAnalysis, error) {
	place, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", location, err)
	}
	result, err := s.advisor.AnalyzeField(ctx, *place)
	if err != nil {
		return nil, fmt.Errorf("analyze field: %w", err)
	}
	return result, nil
}

func (s *AdvisoryService) CompareFertilizers(ctx context.Context, productA, productB string) (*entities.FertilizerComparison, error) {
	result, err := s.advisor.CompareFertilizers(ctx, productA, productB)
	if err != nil {
		return nil, fmt.Errorf("compare fertilizers: %w", err)
	}
	return result, nil
}

func (s *AdvisoryService) NutrientGuide(ctx context.Context, nutrient string) (*entities.FertilizerNutrientGuide, error) {
	result, err := s.advisor.NutrientGuide(ctx, nutrient)
	if err != nil {
		return nil, fmt.Errorf("nutrient guide: %w", err)
	}
	return result, nil
}

func (s *AdvisoryService) Chat(ctx context.Context, history []entities.ChatMessage, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrEmptyMessage
	}
	reply, err := s.advisor.Chat(ctx, history, message)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return reply, nil
}

func (s *AdvisoryService) Forecast(ctx context.Context, location string) ([]entities.WeatherDay, error) {
	place, err := s.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", location, err)
	}
	days, err := s.weather.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	return days, nil
}

func (s *AdvisoryService) ListSchemes(ctx context.Context, category string) ([]entities.Scheme, error) {
	if category == "" || strings.EqualFold(category, "All") {
		return s.schemes.FindAll(ctx)
	}
	return s.schemes.FindByCategory(ctx, category)
}

func (s *AdvisoryService) SchemeCategories(ctx context.Context) ([]string, error) {
	return s.schemes.Categories(ctx)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
