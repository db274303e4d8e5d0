package input

import (
	"context"

	"cropguru/internal/domain/entities"
)

// AdvisoryUseCase groups the farm-advisory features: the dashboard yield
// prediction, the AI-backed analyses and the scheme browser.
type AdvisoryUseCase interface {
	PredictYield(req entities.YieldRequest) (*entities.YieldPrediction, error)
	DetectDisease(ctx context.Context, image []byte, mimeType string) (*entities.DiseaseResult, error)
	RecommendCrop(ctx context.Context, query entities.CropQuery) (*entities.CropRecommendation, error)
	AnalyzeField(ctx context.Context, location string) (*entities.SatelliteAnalysis, error)
	CompareFertilizers(ctx context.Context, productA, productB string) (*entities.FertilizerComparison, error)
	NutrientGuide(ctx context.Context, nutrient string) (*entities.FertilizerNutrientGuide, error)
	Chat(ctx context.Context, history []entities.ChatMessage, message string) (string, error)
	Forecast(ctx context.Context, location string) ([]entities.WeatherDay, error)
	ListSchemes(ctx context.Context, category string) ([]entities.Scheme, error)
	SchemeCategories(ctx context.Context) ([]string, error)
}
