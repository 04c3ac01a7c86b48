package restaurant

import (
	"fmt"
	"strings"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
)

const restaurantSystemMessage = "You are a food and restaurant expert. Return ONLY valid JSON with no additional text."

const defaultNumResults = 10

func priceRangeDescription(priceRange string) string {
	switch priceRange {
	case "Budget":
		return "$5-$15 per person"
	case "Expensive":
		return "$40+ per person"
	default:
		return "$15-$40 per person"
	}
}

func buildSearchRequest(q SearchQuery) ai.GenerationRequest {
	cuisine := q.CuisineType
	if cuisine == "" {
		cuisine = "various cuisines"
	}
	foodType := q.FoodType
	if foodType == "" {
		foodType = "Mixed"
	}
	n := q.NumResults
	if n <= 0 {
		n = defaultNumResults
	}
	imageQuery := strings.ReplaceAll(cuisine, " ", "-")

	prompt := fmt.Sprintf(`
Find %d real restaurants in %s, %s.

REQUIREMENTS:
- Food Type: %s (Vegetarian/Non-Vegetarian/Vegan/etc)
- Cuisine: %s
- Price Range: %s (%s)
- Use REAL restaurant names that exist in %s
- Include local/traditional restaurants of %s

Return ONLY valid JSON with this EXACT structure:

{
    "restaurants": [
        {
            "name": "Restaurant Name",
            "description": "2-3 sentence description of the restaurant and its specialty",
            "location": "Specific area/neighborhood in the city",
            "cuisine_type": "Italian/Chinese/Local/etc",
            "food_type": "Vegetarian/Non-Vegetarian/Vegan/Mixed",
            "price_range": "Budget/Medium/Expensive",
            "rating": 4.5,
            "popular_dishes": ["Dish 1", "Dish 2", "Dish 3"],
            "opening_hours": "08:00 AM",
            "closing_hours": "10:00 PM",
            "image_url": "https://source.unsplash.com/800x600/?restaurant,food,%s"
        }
    ]
}

IMPORTANT:
1. Include exactly %d restaurants
2. Mix of different cuisine types
3. Ratings between 3.5 and 5.0
4. Each restaurant should have 3-5 popular dishes
5. Make descriptions appetizing and unique
6. Include traditional/local restaurants of %s
7. Include realistic opening_hours and closing_hours (e.g., "09:00 AM" to "11:00 PM")
8. Opening/closing hours should reflect typical restaurant hours in %s, %s
9. Return ONLY the JSON, no other text
`,
		n, q.City, q.Country,
		foodType,
		cuisine,
		q.PriceRange, priceRangeDescription(q.PriceRange),
		q.City,
		q.Country,
		imageQuery,
		n,
		q.Country,
		q.City, q.Country,
	)

	return ai.GenerationRequest{
		Prompt:        prompt,
		SystemMessage: restaurantSystemMessage,
		Temperature:   0.5,
		MaxTokens:     16000,
	}
}
