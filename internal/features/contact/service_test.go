package contact

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

// fakeOriginRepo returns canned rows per origin, or an error when set.
type fakeOriginRepo struct {
	contacts      []ContactRow
	clients       []ClientRow
	organizations []OrganizationRow
	teamMembers   []TeamMemberRow
	volunteers    []VolunteerRow

	errs map[OriginType]error
}

func (f *fakeOriginRepo) errFor(origin OriginType) error {
	if f.errs == nil {
		return nil
	}
	return f.errs[origin]
}

func (f *fakeOriginRepo) ListContacts(ctx context.Context) ([]ContactRow, error) {
	if err := f.errFor(OriginContact); err != nil {
		return nil, err
	}
	return f.contacts, nil
}

func (f *fakeOriginRepo) ListClients(ctx context.Context) ([]ClientRow, error) {
	if err := f.errFor(OriginClient); err != nil {
		return nil, err
	}
	return f.clients, nil
}

func (f *fakeOriginRepo) ListOrganizations(ctx context.Context) ([]OrganizationRow, error) {
	if err := f.errFor(OriginOrganization); err != nil {
		return nil, err
	}
	return f.organizations, nil
}

func (f *fakeOriginRepo) ListTeamMembers(ctx context.Context) ([]TeamMemberRow, error) {
	if err := f.errFor(OriginTeam); err != nil {
		return nil, err
	}
	return f.teamMembers, nil
}

func (f *fakeOriginRepo) ListVolunteers(ctx context.Context) ([]VolunteerRow, error) {
	if err := f.errFor(OriginVolunteer); err != nil {
		return nil, err
	}
	return f.volunteers, nil
}

func (f *fakeOriginRepo) CountOrigin(ctx context.Context, origin OriginType) (int64, error) {
	if err := f.errFor(origin); err != nil {
		return 0, err
	}
	switch origin {
	case OriginContact:
		return int64(len(f.contacts)), nil
	case OriginClient:
		return int64(len(f.clients)), nil
	case OriginOrganization:
		return int64(len(f.organizations)), nil
	case OriginTeam:
		return int64(len(f.teamMembers)), nil
	case OriginVolunteer:
		return int64(len(f.volunteers)), nil
	}
	return 0, errors.New("unknown origin")
}

func newTestService(repo OriginRepository) ContactService {
	return NewContactService(repo, zap.NewNop())
}

func TestGetByTypeAllMergesAndSorts(t *testing.T) {
	repo := &fakeOriginRepo{
		contacts: []ContactRow{
			{ID: "c-1", Name: strPtr("Zoe Adams")},
		},
		clients: []ClientRow{
			{ID: "cl-1", Name: "Marcus Bell"},
		},
		organizations: []OrganizationRow{
			{ID: "o-1", Name: "acorn trust"},
		},
		volunteers: []VolunteerRow{
			{ID: "v-1", FirstName: strPtr("Ana"), LastName: strPtr("Diaz")},
		},
		teamMembers: []TeamMemberRow{
			{ID: "t-1", FirstName: "Ben", LastName: strPtr("Okafor")},
		},
	}

	got, err := newTestService(repo).GetByType(context.Background(), OriginAll)
	if err != nil {
		t.Fatalf("GetByType(all) error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d contacts, want 5", len(got))
	}

	// Case-insensitive name order: lowercase "acorn trust" sorts before the
	// capitalized names.
	wantOrder := []string{"acorn trust", "Ana Diaz", "Ben Okafor", "Marcus Bell", "Zoe Adams"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("position %d = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestGetByTypeAllToleratesOriginFailure(t *testing.T) {
	repo := &fakeOriginRepo{
		contacts: []ContactRow{
			{ID: "c-1", Name: strPtr("Zoe Adams")},
		},
		clients: []ClientRow{
			{ID: "cl-1", Name: "Marcus Bell"},
		},
		errs: map[OriginType]error{
			OriginOrganization: errors.New("connection refused"),
			OriginVolunteer:    ErrOriginTableMissing,
		},
	}

	got, err := newTestService(repo).GetByType(context.Background(), OriginAll)
	if err != nil {
		t.Fatalf("GetByType(all) error = %v, want partial result", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d contacts, want 2 (failed origins contribute empty)", len(got))
	}
}

func TestGetByTypeSingleOrigin(t *testing.T) {
	repo := &fakeOriginRepo{
		clients: []ClientRow{
			{ID: "cl-1", Name: "Marcus Bell"},
			{ID: "cl-2", Name: "Harbor Light Services"},
		},
	}

	got, err := newTestService(repo).GetByType(context.Background(), string(OriginClient))
	if err != nil {
		t.Fatalf("GetByType(client) error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d contacts, want 2", len(got))
	}
	for _, c := range got {
		if c.OriginType != OriginClient {
			t.Errorf("OriginType = %s, want client", c.OriginType)
		}
	}
}

func TestGetByTypeSingleOriginErrors(t *testing.T) {
	t.Run("missing table degrades to empty", func(t *testing.T) {
		repo := &fakeOriginRepo{
			errs: map[OriginType]error{OriginVolunteer: ErrOriginTableMissing},
		}

		got, err := newTestService(repo).GetByType(context.Background(), string(OriginVolunteer))
		if err != nil {
			t.Fatalf("error = %v, want nil for missing table", err)
		}
		if len(got) != 0 {
			t.Fatalf("got %d contacts, want 0", len(got))
		}
	})

	t.Run("other errors surface", func(t *testing.T) {
		repo := &fakeOriginRepo{
			errs: map[OriginType]error{OriginContact: errors.New("connection refused")},
		}

		if _, err := newTestService(repo).GetByType(context.Background(), string(OriginContact)); err == nil {
			t.Fatal("expected error for single-origin backend failure")
		}
	})

	t.Run("unknown origin rejected", func(t *testing.T) {
		if _, err := newTestService(&fakeOriginRepo{}).GetByType(context.Background(), "lead"); err == nil {
			t.Fatal("expected error for unknown origin")
		}
	})
}

func TestGetCountByType(t *testing.T) {
	repo := &fakeOriginRepo{
		contacts: []ContactRow{{ID: "c-1"}, {ID: "c-2"}},
		clients:  []ClientRow{{ID: "cl-1"}},
		errs: map[OriginType]error{
			OriginVolunteer: ErrOriginTableMissing,
		},
	}
	svc := newTestService(repo)

	total, err := svc.GetCountByType(context.Background(), OriginAll)
	if err != nil {
		t.Fatalf("GetCountByType(all) error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}

	single, err := svc.GetCountByType(context.Background(), string(OriginContact))
	if err != nil {
		t.Fatalf("GetCountByType(contact) error = %v", err)
	}
	if single != 2 {
		t.Errorf("contact count = %d, want 2", single)
	}

	missing, err := svc.GetCountByType(context.Background(), string(OriginVolunteer))
	if err != nil {
		t.Fatalf("GetCountByType(volunteer) error = %v", err)
	}
	if missing != 0 {
		t.Errorf("volunteer count = %d, want 0 for missing table", missing)
	}
}

func TestCountsByOrigin(t *testing.T) {
	repo := &fakeOriginRepo{
		contacts:      []ContactRow{{ID: "c-1"}},
		organizations: []OrganizationRow{{ID: "o-1"}, {ID: "o-2"}},
		errs: map[OriginType]error{
			OriginClient: errors.New("connection refused"),
		},
	}

	counts, err := newTestService(repo).CountsByOrigin(context.Background())
	if err != nil {
		t.Fatalf("CountsByOrigin error = %v", err)
	}
	if len(counts) != len(AllOrigins) {
		t.Fatalf("got %d origins, want %d", len(counts), len(AllOrigins))
	}
	if counts[OriginContact] != 1 {
		t.Errorf("contact count = %d, want 1", counts[OriginContact])
	}
	if counts[OriginOrganization] != 2 {
		t.Errorf("organization count = %d, want 2", counts[OriginOrganization])
	}
	if counts[OriginClient] != 0 {
		t.Errorf("client count = %d, want 0 for failed origin", counts[OriginClient])
	}
}
