package hotel

import (
	"fmt"
	"strings"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
)

const hotelSystemMessage = "You are a hotel recommendation expert. Return ONLY valid JSON with no additional text."

const defaultNumResults = 10

func priceRangeDescription(priceRange string) string {
	switch priceRange {
	case "Budget":
		return "$50-$100 per night"
	case "Luxury":
		return "$250+ per night"
	default:
		return "$100-$250 per night"
	}
}

func buildSearchRequest(q SearchQuery) ai.GenerationRequest {
	amenities := "standard amenities"
	if len(q.Amenities) > 0 {
		amenities = strings.Join(q.Amenities, ", ")
	}
	roomType := q.RoomType
	if roomType == "" {
		roomType = "any room type"
	}
	n := q.NumResults
	if n <= 0 {
		n = defaultNumResults
	}
	imageQuery := strings.ReplaceAll(q.City, " ", "-")

	prompt := fmt.Sprintf(`
Find %d real hotels in %s, %s.

REQUIREMENTS:
- Price Range: %s (%s)
- Room Type: %s
- Amenities: %s
- Use REAL hotel names that exist in %s

Return ONLY valid JSON with this EXACT structure:

{
    "hotels": [
        {
            "name": "Hotel Name",
            "description": "2-3 sentence description of the hotel",
            "location": "Specific area/neighborhood in the city",
            "price_per_night": 150.00,
            "rating": 4.5,
            "room_type": "Deluxe Room",
            "amenities": ["WiFi", "Pool", "Restaurant", "Gym", "Spa"],
            "image_url": "https://source.unsplash.com/800x600/?hotel,luxury,%s"
        }
    ]
}

IMPORTANT:
1. Include exactly %d hotels
2. Use realistic prices for %s
3. Ratings between 3.5 and 5.0
4. Each hotel should have 4-6 amenities
5. Make descriptions unique and appealing
6. Return ONLY the JSON, no other text
`,
		n, q.City, q.Country,
		q.PriceRange, priceRangeDescription(q.PriceRange),
		roomType,
		amenities,
		q.City,
		imageQuery,
		n,
		q.City,
	)

	return ai.GenerationRequest{
		Prompt:        prompt,
		SystemMessage: hotelSystemMessage,
		Temperature:   0.5,
		MaxTokens:     16000,
	}
}
