package contact

import "strings"

// Transformers map each origin row into the unified shape. They are pure: no
// I/O, never an error. Missing optional fields fall back to the per-origin
// defaults; callers guarantee id and a usable name are present.

// FromContact maps a direct CRM contact row.
func FromContact(row ContactRow) UnifiedContact {
	first, last := nameParts(row.FirstName, row.LastName, row.Name)

	u := UnifiedContact{
		ID:                  row.ID,
		OriginType:          OriginContact,
		FirstName:           first,
		LastName:            last,
		Name:                displayName(first, last, row.Name),
		Email:               row.Email,
		Phone:               row.Phone,
		Address:             row.Address,
		City:                row.City,
		State:               row.State,
		ZipCode:             row.ZipCode,
		Type:                TypeIndividual,
		EngagementScore:     stringOr(row.EngagementScore, EngagementLow),
		DonorStage:          stringOr(row.DonorStage, "Prospect"),
		TotalLifetimeGiving: nonNegative(floatOr(row.TotalLifetimeGiving, 0)),
		LastGiftDate:        row.LastGiftDate,
		DoNotEmail:          boolOr(row.DoNotEmail, false),
		DoNotCall:           boolOr(row.DoNotCall, false),
		DoNotMail:           boolOr(row.DoNotMail, false),
		DoNotText:           boolOr(row.DoNotText, false),
		EmailOptIn:          boolOr(row.EmailOptIn, true),
		NewsletterOptIn:     boolOr(row.NewsletterOptIn, false),
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
	return u
}

// FromClient maps a case-management client. Giving history lives in a table
// this mapping does not join, so lifetime giving stays zero here.
func FromClient(row ClientRow) UnifiedContact {
	first, last := splitName(row.Name)

	return UnifiedContact{
		ID:              row.ID,
		OriginType:      OriginClient,
		FirstName:       first,
		LastName:        last,
		Name:            row.Name,
		Email:           row.Email,
		Phone:           row.Phone,
		Address:         row.Address,
		City:            row.City,
		State:           row.State,
		ZipCode:         row.ZipCode,
		Type:            TypeIndividual,
		EngagementScore: EngagementMedium,
		DonorStage:      "Active Client",
		EmailOptIn:      true,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// FromOrganization maps an organization; engagement derives from donation
// volume.
func FromOrganization(row OrganizationRow) UnifiedContact {
	first, last := splitName(row.Name)
	donations := nonNegative(floatOr(row.TotalDonations, 0))

	stage := "Prospect"
	if donations > 0 {
		stage = "Donor"
	}

	return UnifiedContact{
		ID:                  row.ID,
		OriginType:          OriginOrganization,
		FirstName:           first,
		LastName:            last,
		Name:                row.Name,
		Email:               row.Email,
		Phone:               row.Phone,
		Address:             row.Address,
		City:                row.City,
		State:               row.State,
		ZipCode:             row.ZipCode,
		Type:                TypeOrganizationContact,
		EngagementScore:     engagementFromDonations(donations),
		DonorStage:          stage,
		TotalLifetimeGiving: donations,
		LastGiftDate:        row.LastDonationDate,
		EmailOptIn:          true,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

// FromTeamMember maps an internal team member.
func FromTeamMember(row TeamMemberRow) UnifiedContact {
	var last *string
	if row.LastName != nil && *row.LastName != "" {
		last = row.LastName
	}

	return UnifiedContact{
		ID:              row.ID,
		OriginType:      OriginTeam,
		FirstName:       row.FirstName,
		LastName:        last,
		Name:            joinName(row.FirstName, last),
		Email:           row.Email,
		Phone:           row.Phone,
		Type:            TypeIndividual,
		EngagementScore: EngagementHigh,
		DonorStage:      "Team",
		EmailOptIn:      true,
		Avatar:          row.ProfilePicture,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// FromVolunteer maps a volunteer; the display name falls back to first+last
// when no combined name field is supplied.
func FromVolunteer(row VolunteerRow) UnifiedContact {
	first, last := nameParts(row.FirstName, row.LastName, row.Name)

	return UnifiedContact{
		ID:              row.ID,
		OriginType:      OriginVolunteer,
		FirstName:       first,
		LastName:        last,
		Name:            displayName(first, last, row.Name),
		Email:           row.Email,
		Phone:           row.Phone,
		Type:            TypeIndividual,
		EngagementScore: EngagementHigh,
		DonorStage:      "Volunteer",
		EmailOptIn:      true,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func engagementFromDonations(total float64) string {
	switch {
	case total > 10000:
		return EngagementHigh
	case total > 1000:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// splitName takes a combined name: first token becomes the first name, the
// remainder (if any) the last name.
func splitName(name string) (string, *string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil
	}

	parts := strings.Fields(trimmed)
	first := parts[0]
	if len(parts) == 1 {
		return first, nil
	}
	rest := strings.Join(parts[1:], " ")
	return first, &rest
}

// nameParts prefers explicit first/last columns, falling back to splitting a
// combined name field.
func nameParts(first, last, combined *string) (string, *string) {
	if first != nil && *first != "" {
		if last != nil && *last != "" {
			return *first, last
		}
		return *first, nil
	}
	if combined != nil {
		return splitName(*combined)
	}
	return "", nil
}

// displayName guarantees a non-empty name: the combined field when present,
// otherwise first+last concatenation.
func displayName(first string, last *string, combined *string) string {
	if combined != nil && strings.TrimSpace(*combined) != "" {
		return strings.TrimSpace(*combined)
	}
	return joinName(first, last)
}

func joinName(first string, last *string) string {
	if last != nil && *last != "" {
		return strings.TrimSpace(first + " " + *last)
	}
	return strings.TrimSpace(first)
}

func stringOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
