// Package gemini implements the CropAdvisor port on Google's Gemini API.
// Every structured call constrains the response with a JSON schema and
// decodes it strictly; the model's prose quality is the model's business.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"cropguru/internal/domain"
	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

const model = "gemini-2.5-flash"

const chatSystemInstruction = "You are CropGuru, an AI assistant for Indian farmers. " +
	"Answer questions about crops, government schemes, fertilizers, and modern farming techniques. " +
	"Be helpful, concise, and support English and Hindi. " +
	"If asked something unrelated to farming, politely decline to answer."

var _ output.CropAdvisor = (*Advisor)(nil)

// Advisor is the Gemini-backed CropAdvisor.
type Advisor struct {
	client *genai.Client
}

// NewAdvisor creates an Advisor using the given API key.
func NewAdvisor(ctx context.Context, apiKey string) (*Advisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Advisor{client: client}, nil
}

// Chat replays the conversation history and sends the new message.
func (a *Advisor) Chat(ctx context.Context, history []entities.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Sender == domain.SenderAI {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	chat, err := a.client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
	}, contents)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}

	result, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	return result.Text(), nil
}

func (a *Advisor) DetectDisease(ctx context.Context, image []byte, mimeType string) (*entities.DiseaseResult, error) {
	prompt := "You are a plant disease expert. Identify the disease from this image of a plant leaf. " +
		"If a disease is found, provide the disease name, a confidence percentage (e.g., 95), and a " +
		"recommended treatment plan for farmers in India. If no disease is detected, state that the " +
		"plant appears healthy. Respond only in the requested JSON format."

	contents := []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(prompt),
	}, genai.RoleUser)}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"diseaseName": {Type: genai.TypeString, Description: "Name of the detected disease. 'N/A' if healthy."},
			"confidence":  {Type: genai.TypeNumber, Description: "Confidence score from 0 to 100."},
			"treatment":   {Type: genai.TypeString, Description: "Recommended treatment plan. 'N/A' if healthy."},
			"isHealthy":   {Type: genai.TypeBoolean, Description: "True if the plant appears healthy, otherwise false."},
		},
	}

	var out struct {
		DiseaseName string  `json:"diseaseName"`
		Confidence  float64 `json:"confidence"`
		Treatment   string  `json:"treatment"`
		IsHealthy   bool    `json:"isHealthy"`
	}
	if err := a.generateJSON(ctx, contents, schema, &out); err != nil {
		return nil, err
	}
	return &entities.DiseaseResult{
		DiseaseName: out.DiseaseName,
		Confidence:  out.Confidence,
		Treatment:   out.Treatment,
		IsHealthy:   out.IsHealthy,
	}, nil
}

func (a *Advisor) RecommendCrop(ctx context.Context, query entities.CropQuery) (*entities.CropRecommendation, error) {
	prompt := fmt.Sprintf("You are an expert agronomist for Indian agriculture. Recommend the best crop to plant "+
		"for a farm in %s district, %s, with %s colored soil of a %s texture and %s annual rainfall. "+
		"Provide the single best crop with reasoning, two alternative crops with reasons, practical soil "+
		"management tips, and a comparative analysis of all suggested crops rating market value, water "+
		"requirement and pest resistance as High, Moderate or Low. Respond only in the requested JSON format.",
		query.District, query.State, query.SoilColor, query.SoilTexture, query.Rainfall)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	ratingSchema := &genai.Schema{Type: genai.TypeString, Enum: []string{"High", "Moderate", "Low"}}
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendedCrop": {Type: genai.TypeString},
			"reasoning":       {Type: genai.TypeString},
			"alternativeCrops": {Type: genai.TypeArray, Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":   {Type: genai.TypeString},
					"reason": {Type: genai.TypeString},
				},
				Required: []string{"name", "reason"},
			}},
			"soilManagementTips": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"comparativeAnalysis": {Type: genai.TypeArray, Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"cropName":         {Type: genai.TypeString},
					"marketValue":      ratingSchema,
					"waterRequirement": ratingSchema,
					"pestResistance":   ratingSchema,
					"notes":            {Type: genai.TypeString},
				},
				Required: []string{"cropName", "marketValue", "waterRequirement", "pestResistance", "notes"},
			}},
		},
		Required: []string{"recommendedCrop", "reasoning", "alternativeCrops", "soilManagementTips", "comparativeAnalysis"},
	}

	var out struct {
		RecommendedCrop  string `json:"recommendedCrop"`
		Reasoning        string `json:"reasoning"`
		AlternativeCrops []struct {
			Name   string `json:"name"`
			Reason string `json:"reason"`
		} `json:"alternativeCrops"`
		SoilManagementTips  []string `json:"soilManagementTips"`
		ComparativeAnalysis []struct {
			CropName         string `json:"cropName"`
			MarketValue      string `json:"marketValue"`
			WaterRequirement string `json:"waterRequirement"`
			PestResistance   string `json:"pestResistance"`
			Notes            string `json:"notes"`
		} `json:"comparativeAnalysis"`
	}
	if err := a.generateJSON(ctx, contents, schema, &out); err != nil {
		return nil, err
	}

	rec := &entities.CropRecommendation{
		RecommendedCrop:    out.RecommendedCrop,
		Reasoning:          out.Reasoning,
		SoilManagementTips: out.SoilManagementTips,
	}
	for _, alt := range out.AlternativeCrops {
		rec.AlternativeCrops = append(rec.AlternativeCrops, entities.AlternativeCrop{Name: alt.Name, Reason: alt.Reason})
	}
	for _, row := range out.ComparativeAnalysis {
		rec.ComparativeAnalysis = append(rec.ComparativeAnalysis, entities.CropComparison{
			CropName:         row.CropName,
			MarketValue:      row.MarketValue,
			WaterRequirement: row.WaterRequirement,
			PestResistance:   row.PestResistance,
			Notes:            row.Notes,
		})
	}
	return rec, nil
}

func (a *Advisor) AnalyzeField(ctx context.Context, place entities.Coordinates) (*entities.SatelliteAnalysis, error) {
	prompt := fmt.Sprintf("You are a remote-sensing analyst. Estimate the current crop health for farmland around "+
		"%s (%f, %f) in India. Provide an overall health score from 0 to 100, an NDVI vegetation index from 0 to 1, "+
		"a soil moisture index from 0 to 1, a list of potential stress areas in plain language, and the analyzed "+
		"area in hectares. Respond only in the requested JSON format.",
		place.Name, place.Lat, place.Lon)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"healthScore": {Type: genai.TypeNumber},
			"ndvi":        {Type: genai.TypeNumber},
			"moisture":    {Type: genai.TypeNumber},
			"stressAreas": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"area":        {Type: genai.TypeNumber},
		},
		Required: []string{"healthScore", "ndvi", "moisture", "stressAreas", "area"},
	}

	var out struct {
		HealthScore float64  `json:"healthScore"`
		NDVI        float64  `json:"ndvi"`
		Moisture    float64  `json:"moisture"`
		StressAreas []string `json:"stressAreas"`
		Area        float64  `json:"area"`
	}
	if err := a.generateJSON(ctx, contents, schema, &out); err != nil {
		return nil, err
	}
	return &entities.SatelliteAnalysis{
		HealthScore: out.HealthScore,
		NDVI:        out.NDVI,
		Moisture:    out.Moisture,
		StressAreas: out.StressAreas,
		Area:        out.Area,
	}, nil
}

func (a *Advisor) CompareFertilizers(ctx context.Context, productA, productB string) (*entities.FertilizerComparison, error) {
	prompt := fmt.Sprintf("You are a soil scientist advising Indian farmers. Compare the fertilizers %q and %q. "+
		"For each, give nutrient content, a typical price range in INR, release speed (Fast, Moderate or Slow), "+
		"application method, soil impact and what it is best for. Then pick a winner for general use with "+
		"reasoning. Respond only in the requested JSON format.", productA, productB)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"comparison": {Type: genai.TypeArray, Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"productName":       {Type: genai.TypeString},
					"nutrientContent":   {Type: genai.TypeString},
					"price":             {Type: genai.TypeString},
					"releaseSpeed":      {Type: genai.TypeString, Enum: []string{"Fast", "Moderate", "Slow"}},
					"applicationMethod": {Type: genai.TypeString},
					"soilImpact":        {Type: genai.TypeString},
					"bestFor":           {Type: genai.TypeString},
				},
				Required: []string{"productName", "nutrientContent", "price", "releaseSpeed", "applicationMethod", "soilImpact", "bestFor"},
			}},
			"recommendation": {Type: genai.TypeObject, Properties: map[string]*genai.Schema{
				"winner":    {Type: genai.TypeString},
				"reasoning": {Type: genai.TypeString},
			}, Required: []string{"winner", "reasoning"}},
		},
		Required: []string{"comparison", "recommendation"},
	}

	var out struct {
		Comparison []struct {
			ProductName       string `json:"productName"`
			NutrientContent   string `json:"nutrientContent"`
			Price             string `json:"price"`
			ReleaseSpeed      string `json:"releaseSpeed"`
			ApplicationMethod string `json:"applicationMethod"`
			SoilImpact        string `json:"soilImpact"`
			BestFor           string `json:"bestFor"`
		} `json:"comparison"`
		Recommendation struct {
			Winner    string `json:"winner"`
			Reasoning string `json:"reasoning"`
		} `json:"recommendation"`
	}
	if err := a.generateJSON(ctx, contents, schema, &out); err != nil {
		return nil, err
	}

	result := &entities.FertilizerComparison{
		Winner:    out.Recommendation.Winner,
		Reasoning: out.Recommendation.Reasoning,
	}
	for _, row := range out.Comparison {
		result.Comparison = append(result.Comparison, entities.FertilizerAnalysis{
			ProductName:       row.ProductName,
			NutrientContent:   row.NutrientContent,
			Price:             row.Price,
			ReleaseSpeed:      row.ReleaseSpeed,
			ApplicationMethod: row.ApplicationMethod,
			SoilImpact:        row.SoilImpact,
			BestFor:           row.BestFor,
		})
	}
	return result, nil
}

// NutrientGuide explains one plant nutrient for the fertilizer hub's guide
// panel.
func (a *Advisor) NutrientGuide(ctx context.Context, nutrient string) (*entities.FertilizerNutrientGuide, error) {
	prompt := fmt.Sprintf("You are a soil scientist advising Indian farmers. Explain the plant nutrient %q: "+
		"its role in plant growth, the common fertilizers that supply it (with typical Indian market products), "+
		"practical application tips, and the visible symptoms of its deficiency. Respond only in the requested "+
		"JSON format.", nutrient)

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"nutrientName":       {Type: genai.TypeString},
			"roleInPlants":       {Type: genai.TypeString},
			"commonFertilizers":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"applicationTips":    {Type: genai.TypeString},
			"deficiencySymptoms": {Type: genai.TypeString},
		},
		Required: []string{"nutrientName", "roleInPlants", "commonFertilizers", "applicationTips", "deficiencySymptoms"},
	}

	var out struct {
		NutrientName       string   `json:"nutrientName"`
		RoleInPlants       string   `json:"roleInPlants"`
		CommonFertilizers  []string `json:"commonFertilizers"`
		ApplicationTips    string   `json:"applicationTips"`
		DeficiencySymptoms string   `json:"deficiencySymptoms"`
	}
	if err := a.generateJSON(ctx, contents, schema, &out); err != nil {
		return nil, err
	}
	return &entities.FertilizerNutrientGuide{
		NutrientName:       out.NutrientName,
		RoleInPlants:       out.RoleInPlants,
		CommonFertilizers:  out.CommonFertilizers,
		ApplicationTips:    out.ApplicationTips,
		DeficiencySymptoms: out.DeficiencySymptoms,
	}, nil
}

// generateJSON issues a schema-constrained generation call and decodes the
// response into out.
func (a *Advisor) generateJSON(ctx context.Context, contents []*genai.Content, schema *genai.Schema, out any) error {
	result, err := a.client.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}

	text := strings.TrimSpace(result.Text())
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode advisor response: %w", err)
	}
	return nil
}
