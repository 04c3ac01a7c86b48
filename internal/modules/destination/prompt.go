package destination

import (
	"fmt"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
)

const guideSystemMessage = "You are an expert travel guide with deep knowledge of destinations worldwide. Provide accurate, helpful information in valid JSON format only."

func buildGuideRequest(city, country string) ai.GenerationRequest {
	prompt := fmt.Sprintf(`
Generate comprehensive information about %s, %s for travel planning.
Return ONLY a valid JSON object with this exact structure:

{
    "description": "Brief 2-3 sentence description of the city",
    "popular_places": [
        {
            "name": "Place name",
            "description": "Brief description",
            "category": "Museum/Temple/Beach/etc"
        }
    ],
    "culture": "Description of local culture and traditions",
    "local_language": "Primary language(s) spoken",
    "famous_foods": [
        {
            "name": "Food name",
            "description": "Brief description"
        }
    ],
    "best_time_to_visit": "Best season/months to visit",
    "local_tips": "2-3 useful tips for travelers"
}

Include at least 5 popular places and 5 famous foods. Be specific and accurate.
`, city, country)

	return ai.GenerationRequest{
		Prompt:        prompt,
		SystemMessage: guideSystemMessage,
		Temperature:   0.5,
		MaxTokens:     16000,
	}
}
