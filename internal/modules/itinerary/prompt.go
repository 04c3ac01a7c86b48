package itinerary

import (
	"fmt"
	"strings"

	"github.com/Adiraj90/Ai-trip-planner/internal/ai"
)

const itinerarySystemMessage = "You are an expert travel planner. Generate ONLY valid JSON with no additional text or formatting. Do not include markdown code blocks or explanations."

const (
	// Each day of itinerary content costs roughly 500-800 output tokens.
	tokensPerDay   = 600
	minTokenBudget = 8000
	// Provider's practical ceiling. Very long trips may still be truncated
	// before completion; truncated JSON surfaces as a ParseError downstream.
	maxTokenBudget = 16000
)

// itineraryMaxTokens sizes the response budget from the trip length:
// min(16000, max(8000, days*600)).
func itineraryMaxTokens(numDays int) int32 {
	estimated := numDays * tokensPerDay
	if estimated < minTokenBudget {
		estimated = minTokenBudget
	}
	if estimated > maxTokenBudget {
		estimated = maxTokenBudget
	}
	return int32(estimated)
}

// buildItineraryRequest composes the generation request for a day-by-day
// itinerary: hard requirements up front, one literal example of the exact
// target JSON shape, and the count/format constraints repeated at the end,
// where models follow them most reliably.
func buildItineraryRequest(cmd GenerateCommand, numDays int) ai.GenerationRequest {
	location := cmd.City + ", " + cmd.Country
	if cmd.State != "" {
		location = cmd.City + ", " + cmd.State + ", " + cmd.Country
	}
	tripType := strings.Join(cmd.TripTypes, ", ")
	startDate := cmd.StartDate.Format("2006-01-02")
	endDate := cmd.EndDate.Format("2006-01-02")

	prompt := fmt.Sprintf(`
Create a detailed %d-day travel itinerary for %s.

TRIP DETAILS:
- Dates: %s to %s
- Budget: %.2f %s (total for all %d people)
- Trip Type: %s
- Food Preference: %s
- Travelers: %d people

IMPORTANT: Return ONLY valid JSON with NO additional text, explanations, or markdown formatting.

Use this EXACT structure:

{
    "trip_overview": "A brief 2-3 sentence overview of the trip",
    "total_estimated_cost": 1500.00,
    "daily_itinerary": [
        {
            "day": 1,
            "date": "%s",
            "title": "Arrival and City Exploration",
            "summary": "A 2-3 sentence description of what this day is about, the overall theme, and what travelers can expect to experience.",
            "activities": [
                {
                    "time": "09:00 AM",
                    "activity": "Activity name",
                    "description": "Brief description of what you'll do",
                    "location": "Specific location name",
                    "estimated_cost": 50.00,
                    "duration": "2 hours"
                }
            ],
            "meals": [
                {
                    "type": "Breakfast",
                    "restaurant": "Restaurant name",
                    "cuisine": "Cuisine type",
                    "estimated_cost": 25.00
                },
                {
                    "type": "Lunch",
                    "restaurant": "Restaurant name",
                    "cuisine": "Cuisine type",
                    "estimated_cost": 35.00
                },
                {
                    "type": "Dinner",
                    "restaurant": "Restaurant name",
                    "cuisine": "Cuisine type",
                    "estimated_cost": 45.00
                }
            ],
            "accommodation": {
                "hotel": "Hotel name",
                "area": "Neighborhood/Area name",
                "estimated_cost": 150.00
            }
        }
    ]
}

REQUIREMENTS:
1. Include %d days in daily_itinerary array
2. Each day must have a "summary" with 2-3 sentences describing the day's theme and activities
3. Each day must have 3-5 activities with different times
4. Each day must have breakfast, lunch, and dinner
5. Each day must have accommodation info
6. Keep total costs within budget of %.2f %s
7. Consider the %s trip type and %s food preference
8. Use realistic restaurant and hotel names from %s
9. Return ONLY the JSON object, no other text
`,
		numDays, location,
		startDate, endDate,
		cmd.Budget, cmd.Currency, cmd.NumPeople,
		tripType,
		cmd.FoodPreference,
		cmd.NumPeople,
		startDate,
		numDays,
		cmd.Budget, cmd.Currency,
		tripType, cmd.FoodPreference,
		cmd.City,
	)

	return ai.GenerationRequest{
		Prompt:        prompt,
		SystemMessage: itinerarySystemMessage,
		Temperature:   0.7,
		MaxTokens:     itineraryMaxTokens(numDays),
	}
}
