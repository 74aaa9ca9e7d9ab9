package enrichment

import (
	"context"

	"go-contacthub/internal/features/contact"

	"go.uber.org/zap"
)

// EnrichmentService overlays relationship intelligence onto unified contacts.
// Every upstream failure degrades to the placeholder dataset; nothing here is
// allowed to block core contact display.
type EnrichmentService interface {
	ListProfiles(ctx context.Context, opts FetchOptions) ([]Profile, bool, error)
	GetInsights(ctx context.Context, profileID string) (*AIInsights, error)
	GetInteractions(ctx context.Context, profileID string, limit, days int) ([]Interaction, error)
	GetRecommendedActions(ctx context.Context) ([]RecommendedAction, bool, error)
	// Overlay decorates contacts that have a matching profile (by email) with
	// the enrichment block. Contacts without a profile pass through untouched.
	Overlay(ctx context.Context, contacts []contact.UnifiedContact) []contact.UnifiedContact
}

type EnrichmentServiceImpl struct {
	client Client
	logger *zap.Logger
}

func NewEnrichmentService(client Client, logger *zap.Logger) EnrichmentService {
	return &EnrichmentServiceImpl{client: client, logger: logger}
}

// ListProfiles returns profiles plus a flag marking fallback data.
func (s *EnrichmentServiceImpl) ListProfiles(ctx context.Context, opts FetchOptions) ([]Profile, bool, error) {
	profiles, err := s.client.FetchProfiles(ctx, opts)
	if err != nil {
		s.logger.Warn("relationship api unavailable, serving fallback profiles", zap.Error(err))
		return fallbackProfiles(), true, nil
	}
	return profiles, false, nil
}

func (s *EnrichmentServiceImpl) GetInsights(ctx context.Context, profileID string) (*AIInsights, error) {
	insights, err := s.client.GetAIInsights(ctx, profileID)
	if err != nil {
		s.logger.Warn("failed to fetch ai insights", zap.String("profile_id", profileID), zap.Error(err))
		return nil, err
	}
	return insights, nil
}

func (s *EnrichmentServiceImpl) GetInteractions(ctx context.Context, profileID string, limit, days int) ([]Interaction, error) {
	return s.client.GetRecentInteractions(ctx, profileID, limit, days)
}

func (s *EnrichmentServiceImpl) GetRecommendedActions(ctx context.Context) ([]RecommendedAction, bool, error) {
	actions, err := s.client.GetRecommendedActions(ctx)
	if err != nil {
		s.logger.Warn("relationship api unavailable, serving fallback actions", zap.Error(err))
		return fallbackActions(), true, nil
	}
	return actions, false, nil
}

func (s *EnrichmentServiceImpl) Overlay(ctx context.Context, contacts []contact.UnifiedContact) []contact.UnifiedContact {
	profiles, err := s.client.FetchProfiles(ctx, FetchOptions{IncludeScore: true, IncludeTrend: true})
	if err != nil {
		s.logger.Debug("skipping enrichment overlay", zap.Error(err))
		return contacts
	}

	byEmail := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		if p.Email != "" {
			byEmail[p.Email] = p
		}
	}

	for i := range contacts {
		if contacts[i].Email == nil {
			continue
		}
		p, ok := byEmail[*contacts[i].Email]
		if !ok {
			continue
		}
		contacts[i].Enrichment = &contact.Enrichment{
			RelationshipScore:   p.RelationshipScore,
			RelationshipTrend:   p.RelationshipTrend,
			PreferredChannel:    p.PreferredChannel,
			TotalInteractions:   p.TotalInteractions,
			LastInteractionDate: p.LastInteractionDate,
		}
	}
	return contacts
}
