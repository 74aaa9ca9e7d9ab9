package enrichment

import "time"

// Placeholder dataset served when the relationship-intelligence API is
// unreachable. Enrichment is an overlay; the UI keeps working without it.

func fallbackProfiles() []Profile {
	lastWeek := time.Now().AddDate(0, 0, -7)
	lastMonth := time.Now().AddDate(0, -1, 0)

	return []Profile{
		{
			ID:                  "fallback-1",
			Email:               "m.alvarez@example.org",
			Name:                "Maria Alvarez",
			RelationshipScore:   82,
			RelationshipTrend:   "rising",
			Sentiment:           "positive",
			PreferredChannel:    "email",
			TotalInteractions:   24,
			LastInteractionDate: &lastWeek,
		},
		{
			ID:                  "fallback-2",
			Email:               "jchen@example.org",
			Name:                "James Chen",
			RelationshipScore:   55,
			RelationshipTrend:   "stable",
			Sentiment:           "neutral",
			PreferredChannel:    "call",
			TotalInteractions:   9,
			LastInteractionDate: &lastMonth,
		},
		{
			ID:                "fallback-3",
			Email:             "p.okafor@example.org",
			Name:              "Patricia Okafor",
			RelationshipScore: 31,
			RelationshipTrend: "dormant",
			PreferredChannel:  "mail",
			TotalInteractions: 2,
		},
	}
}

func fallbackActions() []RecommendedAction {
	return []RecommendedAction{
		{
			ID:          "fallback-action-1",
			ProfileID:   "fallback-1",
			ContactName: "Maria Alvarez",
			Action:      "Send a thank-you note for the recent gift",
			Reason:      "Relationship score rising after last campaign",
			Priority:    "high",
		},
		{
			ID:          "fallback-action-2",
			ProfileID:   "fallback-3",
			ContactName: "Patricia Okafor",
			Action:      "Schedule a re-engagement call",
			Reason:      "No interactions logged in over six months",
			Priority:    "medium",
		},
	}
}
