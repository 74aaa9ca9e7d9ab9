package contact

import "time"

// OriginType identifies which backend table a unified contact came from.
type OriginType string

const (
	OriginContact      OriginType = "contact"
	OriginClient       OriginType = "client"
	OriginOrganization OriginType = "organization"
	OriginVolunteer    OriginType = "volunteer"
	OriginTeam         OriginType = "team"

	// OriginAll selects every origin at once.
	OriginAll = "all"
)

// AllOrigins lists every concrete origin, in fetch order.
var AllOrigins = []OriginType{OriginContact, OriginClient, OriginOrganization, OriginVolunteer, OriginTeam}

// ValidOrigin reports whether s names a concrete origin.
func ValidOrigin(s string) bool {
	for _, o := range AllOrigins {
		if string(o) == s {
			return true
		}
	}
	return false
}

// Contact type classification.
const (
	TypeIndividual          = "individual"
	TypeOrganizationContact = "organization_contact"
)

// Engagement score buckets.
const (
	EngagementLow    = "low"
	EngagementMedium = "medium"
	EngagementHigh   = "high"
)

// Enrichment carries the optional relationship-intelligence overlay. It is only
// populated when an external profile link exists.
type Enrichment struct {
	RelationshipScore   int        `json:"relationship_score"`
	RelationshipTrend   string     `json:"relationship_trend"` // rising|stable|falling|new|dormant
	PreferredChannel    string     `json:"preferred_channel,omitempty"`
	TotalInteractions   int        `json:"total_interactions"`
	LastInteractionDate *time.Time `json:"last_interaction_date,omitempty"`
}

// UnifiedContact is the canonical shape every origin record is mapped into.
// IDs are unique within their origin table only; records are never merged
// across origins even when emails match.
type UnifiedContact struct {
	ID         string     `json:"id"`
	OriginType OriginType `json:"origin_type"`

	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Name      string  `json:"name"` // display name, always derived, never empty

	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`

	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`

	Type            string `json:"type"` // individual | organization_contact
	EngagementScore string `json:"engagement_score"`
	DonorStage      string `json:"donor_stage"`

	TotalLifetimeGiving float64    `json:"total_lifetime_giving"`
	LastGiftDate        *time.Time `json:"last_gift_date,omitempty"`

	DoNotEmail      bool `json:"do_not_email"`
	DoNotCall       bool `json:"do_not_call"`
	DoNotMail       bool `json:"do_not_mail"`
	DoNotText       bool `json:"do_not_text"`
	EmailOptIn      bool `json:"email_opt_in"`
	NewsletterOptIn bool `json:"newsletter_opt_in"`

	Avatar *string `json:"avatar,omitempty"`

	Enrichment *Enrichment `json:"enrichment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldMap flattens the contact for rule evaluation and label scripts.
func (u *UnifiedContact) FieldMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":                    u.ID,
		"origin_type":           string(u.OriginType),
		"first_name":            u.FirstName,
		"name":                  u.Name,
		"type":                  u.Type,
		"engagement_score":      u.EngagementScore,
		"donor_stage":           u.DonorStage,
		"total_lifetime_giving": u.TotalLifetimeGiving,
		"do_not_email":          u.DoNotEmail,
		"do_not_call":           u.DoNotCall,
		"do_not_mail":           u.DoNotMail,
		"do_not_text":           u.DoNotText,
		"email_opt_in":          u.EmailOptIn,
		"newsletter_opt_in":     u.NewsletterOptIn,
	}
	if u.LastName != nil {
		m["last_name"] = *u.LastName
	}
	if u.Email != nil {
		m["email"] = *u.Email
	}
	if u.Phone != nil {
		m["phone"] = *u.Phone
	}
	if u.City != nil {
		m["city"] = *u.City
	}
	if u.State != nil {
		m["state"] = *u.State
	}
	return m
}

// Raw origin rows as read from the relational backend. Optional columns are
// pointers so NULLs survive the scan; transformers apply the defaulting policy.

type ContactRow struct {
	ID                  string
	FirstName           *string
	LastName            *string
	Name                *string
	Email               *string
	Phone               *string
	Address             *string
	City                *string
	State               *string
	ZipCode             *string
	EngagementScore     *string
	DonorStage          *string
	TotalLifetimeGiving *float64
	LastGiftDate        *time.Time
	DoNotEmail          *bool
	DoNotCall           *bool
	DoNotMail           *bool
	DoNotText           *bool
	EmailOptIn          *bool
	NewsletterOptIn     *bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ClientRow struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrganizationRow struct {
	ID               string
	Name             string
	Email            *string
	Phone            *string
	Address          *string
	City             *string
	State            *string
	ZipCode          *string
	TotalDonations   *float64
	LastDonationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TeamMemberRow struct {
	ID             string
	FirstName      string
	LastName       *string
	Email          *string
	Phone          *string
	ProfilePicture *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VolunteerRow struct {
	ID        string
	FirstName *string
	LastName  *string
	Name      *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
