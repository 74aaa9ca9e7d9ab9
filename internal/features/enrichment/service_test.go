package enrichment

import (
	"context"
	"errors"
	"testing"

	"go-contacthub/internal/features/contact"

	"go.uber.org/zap"
)

type fakeClient struct {
	profiles []Profile
	actions  []RecommendedAction
	err      error
}

func (f *fakeClient) FetchProfiles(ctx context.Context, opts FetchOptions) ([]Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles, nil
}

func (f *fakeClient) GetAIInsights(ctx context.Context, profileID string) (*AIInsights, error) {
	return nil, f.err
}

func (f *fakeClient) GetRecentInteractions(ctx context.Context, profileID string, limit, days int) ([]Interaction, error) {
	return nil, f.err
}

func (f *fakeClient) GetRecommendedActions(ctx context.Context) ([]RecommendedAction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.actions, nil
}

func TestListProfilesFallsBack(t *testing.T) {
	svc := NewEnrichmentService(&fakeClient{err: &ClientError{Message: "down"}}, zap.NewNop())

	profiles, fallback, err := svc.ListProfiles(context.Background(), FetchOptions{})
	if err != nil {
		t.Fatalf("ListProfiles error = %v, want fallback instead", err)
	}
	if !fallback {
		t.Error("fallback flag should be set when upstream fails")
	}
	if len(profiles) == 0 {
		t.Error("fallback dataset should not be empty")
	}
}

func TestListProfilesLiveData(t *testing.T) {
	svc := NewEnrichmentService(&fakeClient{
		profiles: []Profile{{ID: "p-1", Email: "maria@example.org"}},
	}, zap.NewNop())

	profiles, fallback, err := svc.ListProfiles(context.Background(), FetchOptions{})
	if err != nil {
		t.Fatalf("ListProfiles error = %v", err)
	}
	if fallback {
		t.Error("fallback flag should be clear for live data")
	}
	if len(profiles) != 1 || profiles[0].ID != "p-1" {
		t.Errorf("profiles = %+v, want the live profile", profiles)
	}
}

func TestGetRecommendedActionsFallsBack(t *testing.T) {
	svc := NewEnrichmentService(&fakeClient{err: errors.New("timeout")}, zap.NewNop())

	actions, fallback, err := svc.GetRecommendedActions(context.Background())
	if err != nil {
		t.Fatalf("GetRecommendedActions error = %v", err)
	}
	if !fallback || len(actions) == 0 {
		t.Errorf("want non-empty fallback actions, got %d (fallback=%v)", len(actions), fallback)
	}
}

func TestOverlayMatchesByEmail(t *testing.T) {
	matched := "maria@example.org"
	unmatched := "nobody@example.org"
	svc := NewEnrichmentService(&fakeClient{
		profiles: []Profile{
			{ID: "p-1", Email: matched, RelationshipScore: 82, RelationshipTrend: "rising", TotalInteractions: 24},
		},
	}, zap.NewNop())

	contacts := []contact.UnifiedContact{
		{ID: "c-1", Name: "Maria Lopez", Email: &matched},
		{ID: "c-2", Name: "No Profile", Email: &unmatched},
		{ID: "c-3", Name: "No Email"},
	}

	got := svc.Overlay(context.Background(), contacts)

	if got[0].Enrichment == nil {
		t.Fatal("matched contact should carry enrichment")
	}
	if got[0].Enrichment.RelationshipScore != 82 || got[0].Enrichment.RelationshipTrend != "rising" {
		t.Errorf("enrichment = %+v, want score 82 trend rising", got[0].Enrichment)
	}
	if got[1].Enrichment != nil {
		t.Error("unmatched contact should pass through untouched")
	}
	if got[2].Enrichment != nil {
		t.Error("contact without email should pass through untouched")
	}
}

func TestOverlaySkipsOnClientError(t *testing.T) {
	email := "maria@example.org"
	svc := NewEnrichmentService(&fakeClient{err: &ClientError{Message: "down"}}, zap.NewNop())

	contacts := []contact.UnifiedContact{
		{ID: "c-1", Name: "Maria Lopez", Email: &email},
	}

	got := svc.Overlay(context.Background(), contacts)
	if len(got) != 1 {
		t.Fatalf("got %d contacts, want 1", len(got))
	}
	if got[0].Enrichment != nil {
		t.Error("overlay must be skipped silently when upstream fails")
	}
}
