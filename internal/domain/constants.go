package domain

// Crop, soil and nutrient vocabularies used by the dashboard, recommendation
// and fertilizer-hub forms.
var (
	CropTypes     = []string{"Rice", "Wheat", "Maize", "Sugarcane", "Cotton", "Soybean", "Potato", "Pulses", "Oilseeds"}
	SoilTypes     = []string{"Alluvial", "Black", "Red", "Laterite", "Desert", "Mountain"}
	NutrientTypes = []string{"Nitrogen", "Phosphorus", "Potassium", "Calcium", "Magnesium", "Sulphur", "Zinc", "Iron"}
)

// Chat message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)
