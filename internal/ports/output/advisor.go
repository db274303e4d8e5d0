package output

import (
	"context"

	"cropguru/internal/domain/entities"
)

// CropAdvisor is the generative-AI collaborator behind the chatbot, disease
// detection, crop recommendation, satellite analysis and fertilizer
// comparison features.
type CropAdvisor interface {
	Chat(ctx context.Context, history []entities.ChatMessage, message string) (string, error)
	DetectDisease(ctx context.Context, image []byte, mimeType string) (*entities.DiseaseResult, error)
	RecommendCrop(ctx context.Context, query entities.CropQuery) (*entities.CropRecommendation, error)
	AnalyzeField(ctx context.Context, place entities.Coordinates) (*entities.SatelliteAnalysis, error)
	CompareFertilizers(ctx context.Context, productA, productB string) (*entities.FertilizerComparison, error)
	NutrientGuide(ctx context.Context, nutrient string) (*entities.FertilizerNutrientGuide, error)
}
