package enrichment

import "time"

// Profile is one contact's record in the relationship-intelligence service.
type Profile struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	RelationshipScore   int        `json:"relationship_score"` // 0-100
	RelationshipTrend   string     `json:"relationship_trend"` // rising|stable|falling|new|dormant
	Sentiment           string     `json:"sentiment,omitempty"`
	PreferredChannel    string     `json:"preferred_channel,omitempty"`
	TotalInteractions   int        `json:"total_interactions"`
	LastInteractionDate *time.Time `json:"last_interaction_date,omitempty"`
}

// AIInsights is the generated guidance for one profile. Absent insights are a
// nil result, not an error.
type AIInsights struct {
	ProfileID          string   `json:"profile_id"`
	Summary            string   `json:"summary"`
	TalkingPoints      []string `json:"talking_points"`
	RecommendedActions []string `json:"recommended_actions"`
	GeneratedAt        string   `json:"generated_at"`
}

// Interaction is one logged touchpoint with a contact.
type Interaction struct {
	ID         string    `json:"id"`
	ProfileID  string    `json:"profile_id"`
	Channel    string    `json:"channel"` // email|call|meeting|text
	Subject    string    `json:"subject,omitempty"`
	Snippet    string    `json:"snippet,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecommendedAction is a cross-contact suggestion surfaced on the dashboard.
type RecommendedAction struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profile_id"`
	ContactName string `json:"contact_name"`
	Action      string `json:"action"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"` // high|medium|low
}

// FetchOptions tunes a bulk profile fetch.
type FetchOptions struct {
	Limit          int
	Offset         int
	IncludeScore   bool
	IncludeTrend   bool
	IncludeInsight bool
}
