package entities

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Sender string // "user" or "ai"
	Text   string
}

// DiseaseResult is the outcome of a leaf-image analysis.
type DiseaseResult struct {
	DiseaseName string
	Confidence  float64 // 0-100
	Treatment   string
	IsHealthy   bool
}

// YieldRequest carries the dashboard form inputs for a yield prediction.
type YieldRequest struct {
	CropType string
	SoilType string
	LandSize float64 // hectares
	Location string
}

// YieldPrediction is the locally computed dashboard result.
type YieldPrediction struct {
	PredictedYield  float64 // tonnes
	YieldPerHectare float64
	EstimatedIncome float64 // INR
	Fertilizer      map[string]string
	Irrigation      string
	QuarterlyRamp   []float64 // fraction of the predicted yield per growth stage
}

// CropQuery describes the farm conditions for a crop recommendation.
type CropQuery struct {
	State       string
	District    string
	SoilColor   string
	SoilTexture string
	Rainfall    string
}

// AlternativeCrop is a secondary suggestion in a crop recommendation.
type AlternativeCrop struct {
	Name   string
	Reason string
}

// CropComparison scores one crop in the comparative-analysis table.
type CropComparison struct {
	CropName         string
	MarketValue      string // High / Moderate / Low
	WaterRequirement string
	PestResistance   string
	Notes            string
}

// CropRecommendation is the advisor's answer to a CropQuery.
type CropRecommendation struct {
	RecommendedCrop     string
	Reasoning           string
	AlternativeCrops    []AlternativeCrop
	SoilManagementTips  []string
	ComparativeAnalysis []CropComparison
}

// Coordinates is a geocoded place.
type Coordinates struct {
	Lat     float64
	Lon     float64
	Name    string
	Country string
	State   string
}

// SatelliteAnalysis is the field-health summary derived from imagery.
type SatelliteAnalysis struct {
	HealthScore float64 // 0-100
	NDVI        float64 // 0-1
	Moisture    float64 // 0-1
	StressAreas []string
	Area        float64 // hectares
}

// FertilizerAnalysis describes one product in a head-to-head comparison.
type FertilizerAnalysis struct {
	ProductName       string
	NutrientContent   string
	Price             string
	ReleaseSpeed      string // Fast / Moderate / Slow
	ApplicationMethod string
	SoilImpact        string
	BestFor           string
}

// FertilizerComparison is the advisor's verdict on two products.
type FertilizerComparison struct {
	Comparison []FertilizerAnalysis
	Winner     string
	Reasoning  string
}

// FertilizerNutrientGuide explains one plant nutrient for the fertilizer hub.
type FertilizerNutrientGuide struct {
	NutrientName       string
	RoleInPlants       string
	CommonFertilizers  []string
	ApplicationTips    string
	DeficiencySymptoms string
}

// WeatherDay is one day of the processed forecast.
type WeatherDay struct {
	Day       string // "Today", "Tomorrow", "+2 Days", ...
	Temp      string // e.g. "32°C"
	Icon      string
	Condition string
}
