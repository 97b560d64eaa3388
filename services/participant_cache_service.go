//go:generate go run go.uber.org/mock/mockgen -source=participant_cache_service.go -destination=../mocks/mock_participant_cache_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"participant-cache/codec"
	"participant-cache/domain"
	"participant-cache/errors"
	"participant-cache/repositories"

	"github.com/samber/lo"
)

// ParticipantFetcher loads participants from their authoritative source,
// usually the chat server. Ids it does not know are simply left out.
type ParticipantFetcher interface {
	FetchParticipants(ctx context.Context, ids []string) ([]domain.Participant, error)
}

type IParticipantCacheService interface {
	Save(p domain.Participant) error
	Load(id string) (domain.Participant, error)
	Forget(id string) error
	Resolve(ctx context.Context, ids []string) (map[string]domain.Participant, error)
}

type ParticipantCacheService struct {
	repository repositories.IParticipantCacheRepository
	codec      codec.Codec
	fetcher    ParticipantFetcher
	log        *slog.Logger
}

// NewParticipantCacheService wires the cache. A nil codec selects the default
// one and a nil fetcher makes Resolve cache-only.
func NewParticipantCacheService(
	repository repositories.IParticipantCacheRepository,
	c codec.Codec,
	fetcher ParticipantFetcher,
	log *slog.Logger,
) *ParticipantCacheService {
	if c == nil {
		c = codec.Default()
	}
	return &ParticipantCacheService{repository: repository, codec: c, fetcher: fetcher, log: log}
}

// Save validates p and replaces whatever was cached for its id.
func (s *ParticipantCacheService) Save(p domain.Participant) error {
	_, err := s.store(p)
	return err
}

// store caches p and returns the participant as a later Load would see it.
// When encoding fails p is returned unchanged.
func (s *ParticipantCacheService) store(p domain.Participant) (domain.Participant, error) {
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%w: %v", errors.ErrInvalidParticipant, err)
	}
	entry, err := repositories.FromParticipantWith(s.codec, p)
	if err != nil {
		return p, err
	}
	snapshot, err := entry.ToParticipant()
	if err != nil {
		return p, err
	}
	return snapshot, s.repository.Put(entry)
}

// Load returns the cached participant. An entry that no longer decodes is
// removed and reported as a miss, matching both errors.ErrNotFound and
// errors.ErrDecoding.
func (s *ParticipantCacheService) Load(id string) (domain.Participant, error) {
	entry, err := s.repository.Get(id)
	if err != nil {
		return domain.Participant{}, err
	}
	p, err := entry.ToParticipant()
	if err != nil {
		s.log.Warn("Dropping unreadable cache entry", "participant_id", id, "error", err)
		if delErr := s.repository.Delete(id); delErr != nil {
			s.log.Error("Failed to drop cache entry", "participant_id", id, "error", delErr)
		}
		return domain.Participant{}, fmt.Errorf("%w: %w", errors.ErrNotFound, err)
	}
	return p, nil
}

func (s *ParticipantCacheService) Forget(id string) error {
	return s.repository.Delete(id)
}

// Resolve returns the participants for ids, serving cached ones locally and
// fetching the others. Fetched participants are cached on a best-effort basis
// and returned in their cached form, so a hit and a miss look the same.
// Ids unknown to the fetcher are absent from the result.
func (s *ParticipantCacheService) Resolve(ctx context.Context, ids []string) (map[string]domain.Participant, error) {
	ids = lo.Uniq(lo.Compact(ids))
	result := make(map[string]domain.Participant, len(ids))

	var missing []string
	for _, id := range ids {
		p, err := s.Load(id)
		switch {
		case err == nil:
			result[id] = p
		case errors.IsCacheMiss(err):
			missing = append(missing, id)
		default:
			return nil, err
		}
	}

	if len(missing) == 0 || s.fetcher == nil {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log.Debug("Fetching participants", "count", len(missing))
	fetched, err := s.fetcher.FetchParticipants(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("fetch participants: %w", err)
	}

	for _, p := range fetched {
		if !lo.Contains(missing, p.ID) {
			s.log.Warn("Ignoring participant that was not requested", "participant_id", p.ID)
			continue
		}
		snapshot, err := s.store(p)
		if err != nil {
			s.log.Warn("Failed to cache participant", "participant_id", p.ID, "error", err)
		}
		result[p.ID] = snapshot
	}
	return result, nil
}
