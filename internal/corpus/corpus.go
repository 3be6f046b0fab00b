package corpus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"handball-tracker/internal/api"
	"handball-tracker/internal/constants"
	"handball-tracker/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownLeague is returned when a league identifier is absent from
	// the crawler's meta index.
	ErrUnknownLeague = errors.New("unknown league")

	// ErrIndexUnavailable is returned when the meta index itself cannot be
	// fetched or parsed. Unlike a single failing round, this aborts the
	// whole league load.
	ErrIndexUnavailable = errors.New("meta index unavailable")
)

// RoundStore is the persistence hook for raw round payloads. Get must return
// repository.ErrRoundNotFound (or any error) on a miss; the loader then falls
// back to the network.
type RoundStore interface {
	Get(ctx context.Context, leagueID, spieltag string) (payload []byte, lastUpdated string, err error)
	Put(ctx context.Context, leagueID, spieltag, lastUpdated string, payload []byte) error
	DeleteLeague(ctx context.Context, leagueID string) error
}

// Service loads and caches one corpus per league. A repeat Load for the same
// league returns the cached corpus without touching the network; Invalidate
// drops a single league. A failing round is skipped with a warning, a failing
// meta index aborts the whole league load.
type Service struct {
	client *api.CrawlerClient
	store  RoundStore
	logger zerolog.Logger

	mu    sync.RWMutex
	cache map[string]*domain.Corpus
}

func New(client *api.CrawlerClient, store RoundStore, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logger,
		cache:  make(map[string]*domain.Corpus),
	}
}

func (s *Service) Load(ctx context.Context, leagueID string) (*domain.Corpus, error) {
	s.mu.RLock()
	if c, ok := s.cache[leagueID]; ok {
		s.mu.RUnlock()
		s.logger.Debug().Str("league_id", leagueID).Msg("returning cached corpus")
		return c, nil
	}
	s.mu.RUnlock()

	meta, err := s.client.GetMetaIndex(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("league_id", leagueID).Msg("failed to load meta index")
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	league, ok := meta.Leagues[leagueID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLeague, leagueID)
	}

	games := s.loadRounds(ctx, leagueID, league)

	c := &domain.Corpus{LeagueID: leagueID, Games: games}

	s.mu.Lock()
	// another Load may have raced us here; keep the first result
	if cached, ok := s.cache[leagueID]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.cache[leagueID] = c
	s.mu.Unlock()

	s.logger.Info().
		Str("league_id", leagueID).
		Int("rounds", len(league.Spieltage)).
		Int("games", len(games)).
		Msg("corpus loaded")

	return c, nil
}

// Invalidate drops one league from the session cache and its persisted round
// snapshots. The next Load re-fetches from the crawler.
func (s *Service) Invalidate(ctx context.Context, leagueID string) {
	s.mu.Lock()
	delete(s.cache, leagueID)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.DeleteLeague(ctx, leagueID); err != nil {
			s.logger.Warn().Err(err).Str("league_id", leagueID).Msg("failed to drop round snapshots")
		}
	}

	s.logger.Info().Str("league_id", leagueID).Msg("corpus invalidated")
}

// loadRounds fetches every round of a league with bounded parallelism and
// merges the surviving games. A round that fails to fetch or parse is logged
// and skipped; merge order is irrelevant because consumers re-sort by each
// game's order field.
func (s *Service) loadRounds(ctx context.Context, leagueID string, league api.MetaLeague) []domain.Game {
	perRound := make([][]domain.Game, len(league.Spieltage))

	g := new(errgroup.Group)
	g.SetLimit(constants.RoundFetchConcurrency)

	for i, spieltag := range league.Spieltage {
		i, spieltag := i, spieltag
		g.Go(func() error {
			games, err := s.loadRound(ctx, leagueID, spieltag, league.LastUpdated)
			if err != nil {
				s.logger.Warn().
					Err(err).
					Str("league_id", leagueID).
					Str("spieltag", spieltag).
					Msg("skipping round")
				return nil
			}
			perRound[i] = games
			return nil
		})
	}
	_ = g.Wait()

	var games []domain.Game
	for _, rg := range perRound {
		games = append(games, rg...)
	}
	return games
}

func (s *Service) loadRound(ctx context.Context, leagueID, spieltag, lastUpdated string) ([]domain.Game, error) {
	if s.store != nil {
		payload, stamp, err := s.store.Get(ctx, leagueID, spieltag)
		if err == nil && stamp == lastUpdated {
			if games, perr := parseGames(payload); perr == nil {
				s.logger.Debug().Str("league_id", leagueID).Str("spieltag", spieltag).Msg("round served from snapshot store")
				return games, nil
			}
		}
	}

	payload, err := s.client.FetchRoundRaw(ctx, leagueID, spieltag)
	if err != nil {
		return nil, fmt.Errorf("fetch round %s: %w", spieltag, err)
	}

	games, err := parseGames(payload)
	if err != nil {
		return nil, fmt.Errorf("parse round %s: %w", spieltag, err)
	}

	if s.store != nil {
		if err := s.store.Put(ctx, leagueID, spieltag, lastUpdated, payload); err != nil {
			s.logger.Warn().Err(err).Str("league_id", leagueID).Str("spieltag", spieltag).Msg("failed to snapshot round")
		}
	}

	return games, nil
}

func parseGames(payload []byte) ([]domain.Game, error) {
	round, err := api.ParseRound(payload)
	if err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(round.Games))
	for _, g := range round.Games {
		games = append(games, g.ToDomain())
	}
	return games, nil
}
