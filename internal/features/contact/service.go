package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ContactService unifies the five origin tables into one contact collection.
type ContactService interface {
	// GetByType returns unified contacts for one origin, or for OriginAll the
	// merged list of every origin sorted by display name.
	GetByType(ctx context.Context, originType string) ([]UnifiedContact, error)
	// GetCountByType returns the contact count for one origin or the sum over all.
	GetCountByType(ctx context.Context, originType string) (int64, error)
	// CountsByOrigin returns the per-origin breakdown.
	CountsByOrigin(ctx context.Context) (map[OriginType]int64, error)
}

type ContactServiceImpl struct {
	repo   OriginRepository
	logger *zap.Logger
}

func NewContactService(repo OriginRepository, logger *zap.Logger) ContactService {
	return &ContactServiceImpl{repo: repo, logger: logger}
}

// originResult tags one origin's fetch outcome so the aggregate path can keep
// successes while individual origins fail.
type originResult struct {
	origin   OriginType
	contacts []UnifiedContact
	err      error
}

func (s *ContactServiceImpl) GetByType(ctx context.Context, originType string) ([]UnifiedContact, error) {
	if originType == OriginAll {
		return s.getAll(ctx)
	}
	if !ValidOrigin(originType) {
		return nil, fmt.Errorf("unknown contact origin: %s", originType)
	}

	contacts, err := s.fetchOrigin(ctx, OriginType(originType))
	if errors.Is(err, ErrOriginTableMissing) {
		return []UnifiedContact{}, nil
	}
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// getAll fans out one fetch per origin, captures each tagged result, and joins
// the successes. A failed origin contributes an empty slice and never aborts
// its siblings.
func (s *ContactServiceImpl) getAll(ctx context.Context) ([]UnifiedContact, error) {
	results := make(chan originResult, len(AllOrigins))

	var wg sync.WaitGroup
	for _, origin := range AllOrigins {
		wg.Add(1)
		go func(origin OriginType) {
			defer wg.Done()
			contacts, err := s.fetchOrigin(ctx, origin)
			results <- originResult{origin: origin, contacts: contacts, err: err}
		}(origin)
	}
	wg.Wait()
	close(results)

	var merged []UnifiedContact
	for res := range results {
		if res.err != nil {
			s.logOriginError(res.origin, res.err)
			continue
		}
		merged = append(merged, res.contacts...)
	}

	sortByName(merged)
	return merged, nil
}

func (s *ContactServiceImpl) fetchOrigin(ctx context.Context, origin OriginType) ([]UnifiedContact, error) {
	switch origin {
	case OriginContact:
		rows, err := s.repo.ListContacts(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]UnifiedContact, 0, len(rows))
		for _, row := range rows {
			out = append(out, FromContact(row))
		}
		return out, nil
	case OriginClient:
		rows, err := s.repo.ListClients(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]UnifiedContact, 0, len(rows))
		for _, row := range rows {
			out = append(out, FromClient(row))
		}
		return out, nil
	case OriginOrganization:
		rows, err := s.repo.ListOrganizations(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]UnifiedContact, 0, len(rows))
		for _, row := range rows {
			out = append(out, FromOrganization(row))
		}
		return out, nil
	case OriginTeam:
		rows, err := s.repo.ListTeamMembers(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]UnifiedContact, 0, len(rows))
		for _, row := range rows {
			out = append(out, FromTeamMember(row))
		}
		return out, nil
	case OriginVolunteer:
		rows, err := s.repo.ListVolunteers(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]UnifiedContact, 0, len(rows))
		for _, row := range rows {
			out = append(out, FromVolunteer(row))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown contact origin: %s", origin)
}

func (s *ContactServiceImpl) GetCountByType(ctx context.Context, originType string) (int64, error) {
	if originType == OriginAll {
		counts, err := s.CountsByOrigin(ctx)
		if err != nil {
			return 0, err
		}
		var total int64
		for _, c := range counts {
			total += c
		}
		return total, nil
	}
	if !ValidOrigin(originType) {
		return 0, fmt.Errorf("unknown contact origin: %s", originType)
	}

	count, err := s.repo.CountOrigin(ctx, OriginType(originType))
	if errors.Is(err, ErrOriginTableMissing) {
		return 0, nil
	}
	return count, err
}

// CountsByOrigin issues the five count queries concurrently with the same
// per-origin failure tolerance as getAll.
func (s *ContactServiceImpl) CountsByOrigin(ctx context.Context) (map[OriginType]int64, error) {
	type countResult struct {
		origin OriginType
		count  int64
		err    error
	}

	results := make(chan countResult, len(AllOrigins))

	var wg sync.WaitGroup
	for _, origin := range AllOrigins {
		wg.Add(1)
		go func(origin OriginType) {
			defer wg.Done()
			count, err := s.repo.CountOrigin(ctx, origin)
			results <- countResult{origin: origin, count: count, err: err}
		}(origin)
	}
	wg.Wait()
	close(results)

	counts := make(map[OriginType]int64, len(AllOrigins))
	for res := range results {
		if res.err != nil {
			s.logOriginError(res.origin, res.err)
			counts[res.origin] = 0
			continue
		}
		counts[res.origin] = res.count
	}
	return counts, nil
}

func (s *ContactServiceImpl) logOriginError(origin OriginType, err error) {
	if errors.Is(err, ErrOriginTableMissing) {
		s.logger.Debug("origin table not provisioned, treating as empty",
			zap.String("origin", string(origin)))
		return
	}
	s.logger.Warn("origin fetch failed, contributing empty result",
		zap.String("origin", string(origin)), zap.Error(err))
}

// sortByName orders the merged list with a locale-aware comparison so results
// are stable regardless of which origin fetch finished first.
func sortByName(contacts []UnifiedContact) {
	collator := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(contacts, func(i, j int) bool {
		return collator.CompareString(contacts[i].Name, contacts[j].Name) < 0
	})
}
