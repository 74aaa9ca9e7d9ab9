package contact

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func TestFromContactDefaults(t *testing.T) {
	now := time.Now()
	row := ContactRow{
		ID:        "c-1",
		FirstName: strPtr("Maria"),
		LastName:  strPtr("Lopez"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := FromContact(row)

	if got.OriginType != OriginContact {
		t.Errorf("OriginType = %s, want %s", got.OriginType, OriginContact)
	}
	if got.Name != "Maria Lopez" {
		t.Errorf("Name = %q, want %q", got.Name, "Maria Lopez")
	}
	if got.EngagementScore != EngagementLow {
		t.Errorf("EngagementScore = %q, want %q", got.EngagementScore, EngagementLow)
	}
	if got.DonorStage != "Prospect" {
		t.Errorf("DonorStage = %q, want %q", got.DonorStage, "Prospect")
	}
	if !got.EmailOptIn {
		t.Error("EmailOptIn should default to true")
	}
	if got.DoNotEmail || got.DoNotCall || got.DoNotMail || got.DoNotText {
		t.Error("do-not flags should default to false")
	}
	if got.NewsletterOptIn {
		t.Error("NewsletterOptIn should default to false")
	}
	if got.TotalLifetimeGiving != 0 {
		t.Errorf("TotalLifetimeGiving = %v, want 0", got.TotalLifetimeGiving)
	}
}

func TestFromContactExplicitFields(t *testing.T) {
	row := ContactRow{
		ID:                  "c-2",
		Name:                strPtr("James Carter"),
		EngagementScore:     strPtr(EngagementHigh),
		DonorStage:          strPtr("Major Donor"),
		TotalLifetimeGiving: floatPtr(25000),
		EmailOptIn:          boolPtr(false),
		DoNotCall:           boolPtr(true),
	}

	got := FromContact(row)

	if got.FirstName != "James" {
		t.Errorf("FirstName = %q, want James", got.FirstName)
	}
	if got.LastName == nil || *got.LastName != "Carter" {
		t.Errorf("LastName = %v, want Carter", got.LastName)
	}
	if got.EngagementScore != EngagementHigh {
		t.Errorf("EngagementScore = %q, want %q", got.EngagementScore, EngagementHigh)
	}
	if got.EmailOptIn {
		t.Error("explicit EmailOptIn=false must not be overridden by the default")
	}
	if !got.DoNotCall {
		t.Error("DoNotCall = false, want true")
	}
}

func TestFromClient(t *testing.T) {
	row := ClientRow{
		ID:    "cl-1",
		Name:  "Harbor Light Services",
		Email: strPtr("office@harborlight.example"),
	}

	got := FromClient(row)

	if got.OriginType != OriginClient {
		t.Errorf("OriginType = %s, want %s", got.OriginType, OriginClient)
	}
	if got.FirstName != "Harbor" {
		t.Errorf("FirstName = %q, want Harbor", got.FirstName)
	}
	if got.LastName == nil || *got.LastName != "Light Services" {
		t.Errorf("LastName = %v, want Light Services", got.LastName)
	}
	if got.EngagementScore != EngagementMedium {
		t.Errorf("EngagementScore = %q, want %q", got.EngagementScore, EngagementMedium)
	}
	if got.DonorStage != "Active Client" {
		t.Errorf("DonorStage = %q, want Active Client", got.DonorStage)
	}
	if got.TotalLifetimeGiving != 0 {
		t.Errorf("TotalLifetimeGiving = %v, want 0", got.TotalLifetimeGiving)
	}
}

func TestFromOrganizationEngagement(t *testing.T) {
	tests := []struct {
		name         string
		donations    *float64
		wantScore    string
		wantStage    string
		wantLifetime float64
	}{
		{"large donor", floatPtr(15000), EngagementHigh, "Donor", 15000},
		{"mid donor", floatPtr(2400), EngagementMedium, "Donor", 2400},
		{"small donor", floatPtr(500), EngagementLow, "Donor", 500},
		{"no donations", floatPtr(0), EngagementLow, "Prospect", 0},
		{"null donations", nil, EngagementLow, "Prospect", 0},
		{"negative clamped", floatPtr(-50), EngagementLow, "Prospect", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromOrganization(OrganizationRow{
				ID:             "o-1",
				Name:           "Riverbend Foundation",
				TotalDonations: tt.donations,
			})

			if got.Type != TypeOrganizationContact {
				t.Errorf("Type = %q, want %q", got.Type, TypeOrganizationContact)
			}
			if got.EngagementScore != tt.wantScore {
				t.Errorf("EngagementScore = %q, want %q", got.EngagementScore, tt.wantScore)
			}
			if got.DonorStage != tt.wantStage {
				t.Errorf("DonorStage = %q, want %q", got.DonorStage, tt.wantStage)
			}
			if got.TotalLifetimeGiving != tt.wantLifetime {
				t.Errorf("TotalLifetimeGiving = %v, want %v", got.TotalLifetimeGiving, tt.wantLifetime)
			}
		})
	}
}

func TestFromTeamMember(t *testing.T) {
	row := TeamMemberRow{
		ID:             "t-1",
		FirstName:      "Dana",
		LastName:       strPtr("Wright"),
		ProfilePicture: strPtr("https://cdn.example/avatars/dana.png"),
	}

	got := FromTeamMember(row)

	if got.Name != "Dana Wright" {
		t.Errorf("Name = %q, want Dana Wright", got.Name)
	}
	if got.EngagementScore != EngagementHigh {
		t.Errorf("EngagementScore = %q, want %q", got.EngagementScore, EngagementHigh)
	}
	if got.DonorStage != "Team" {
		t.Errorf("DonorStage = %q, want Team", got.DonorStage)
	}
	if got.Avatar == nil || *got.Avatar != "https://cdn.example/avatars/dana.png" {
		t.Errorf("Avatar = %v, want profile picture carried through", got.Avatar)
	}
}

func TestFromVolunteerNameFallback(t *testing.T) {
	tests := []struct {
		name     string
		row      VolunteerRow
		wantName string
	}{
		{
			name:     "first and last only",
			row:      VolunteerRow{ID: "v-1", FirstName: strPtr("Ana"), LastName: strPtr("Diaz")},
			wantName: "Ana Diaz",
		},
		{
			name:     "combined name only",
			row:      VolunteerRow{ID: "v-2", Name: strPtr("Chris Okafor")},
			wantName: "Chris Okafor",
		},
		{
			name:     "combined name wins for display",
			row:      VolunteerRow{ID: "v-3", FirstName: strPtr("C."), LastName: strPtr("O."), Name: strPtr("Chris Okafor")},
			wantName: "Chris Okafor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromVolunteer(tt.row)
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.DonorStage != "Volunteer" {
				t.Errorf("DonorStage = %q, want Volunteer", got.DonorStage)
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in        string
		wantFirst string
		wantLast  string // "" means nil
	}{
		{"Maria Lopez", "Maria", "Lopez"},
		{"Harbor Light Services", "Harbor", "Light Services"},
		{"Cher", "Cher", ""},
		{"  padded  name ", "padded", "name"},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := splitName(tt.in)
		if first != tt.wantFirst {
			t.Errorf("splitName(%q) first = %q, want %q", tt.in, first, tt.wantFirst)
		}
		gotLast := ""
		if last != nil {
			gotLast = *last
		}
		if gotLast != tt.wantLast {
			t.Errorf("splitName(%q) last = %q, want %q", tt.in, gotLast, tt.wantLast)
		}
	}
}
