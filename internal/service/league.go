package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"handball-tracker/internal/api"
	"handball-tracker/internal/constants"
	"handball-tracker/internal/corpus"
	"handball-tracker/internal/domain"
	"handball-tracker/internal/stats"

	"github.com/rs/zerolog"
)

// ErrGameNotFound is returned when a game identifier is absent from a loaded
// corpus.
var ErrGameNotFound = errors.New("game not found")

// LeagueService is the application-facing facade: it resolves leagues from
// the crawler configuration, loads corpora through the corpus service and
// exposes every derived statistics view.
type LeagueService struct {
	client *api.CrawlerClient
	corpus *corpus.Service
	logger zerolog.Logger

	mu      sync.RWMutex
	leagues []domain.League
}

func NewLeagueService(client *api.CrawlerClient, corpusSvc *corpus.Service, logger zerolog.Logger) *LeagueService {
	return &LeagueService{client: client, corpus: corpusSvc, logger: logger}
}

// Leagues returns the crawler's league list, fetched once and cached for the
// session.
func (s *LeagueService) Leagues(ctx context.Context) ([]domain.League, error) {
	s.mu.RLock()
	if s.leagues != nil {
		leagues := s.leagues
		s.mu.RUnlock()
		return leagues, nil
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	cfg, err := s.client.GetLeagueConfig(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load league config")
		return nil, fmt.Errorf("load league config: %w", err)
	}

	leagues := make([]domain.League, 0, len(cfg.Leagues))
	for _, entry := range cfg.Leagues {
		league := entry.ToDomain()
		if league.HalfDuration == 0 {
			league.HalfDuration = constants.DefaultHalfDuration
		}
		leagues = append(leagues, league)
	}

	s.mu.Lock()
	s.leagues = leagues
	s.mu.Unlock()

	s.logger.Info().Int("count", len(leagues)).Msg("league config loaded")
	return leagues, nil
}

// League resolves one league by its out_name identifier.
func (s *LeagueService) League(ctx context.Context, leagueID string) (*domain.League, error) {
	leagues, err := s.Leagues(ctx)
	if err != nil {
		return nil, err
	}

	for _, l := range leagues {
		if l.OutName == leagueID {
			return &l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", corpus.ErrUnknownLeague, leagueID)
}

// Refresh drops a league's cached corpus so the next request reloads it.
func (s *LeagueService) Refresh(ctx context.Context, leagueID string) {
	s.logger.Info().Str("league_id", leagueID).Msg("refreshing league")
	s.corpus.Invalidate(ctx, leagueID)
}

func (s *LeagueService) load(ctx context.Context, leagueID string) (*domain.Corpus, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	return s.corpus.Load(ctx, leagueID)
}

func (s *LeagueService) Teams(ctx context.Context, leagueID string) ([]string, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.TeamNames(c), nil
}

func (s *LeagueService) Standings(ctx context.Context, leagueID string) ([]stats.TeamStanding, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("league_id", leagueID).Msg("building standings")
	return stats.Standings(c), nil
}

// TeamGames returns a team's perspective views in season order. An unknown
// team is not an error: it simply has no games.
func (s *LeagueService) TeamGames(ctx context.Context, leagueID, team string) ([]stats.TeamGameView, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.TeamPerspective(c, team), nil
}

// PlayerTotals sums one player's season stats over a team's games.
func (s *LeagueService) PlayerTotals(ctx context.Context, leagueID, team, player string) (stats.PlayerTotals, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return stats.PlayerTotals{}, err
	}
	views := stats.TeamPerspective(c, team)
	return stats.PlayerTotalStats(views, player), nil
}

func (s *LeagueService) PlayerStatistics(ctx context.Context, leagueID string) ([]stats.PlayerSeasonStats, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.PlayerStatistics(c), nil
}

func (s *LeagueService) SevenMeterShooters(ctx context.Context, leagueID string) ([]stats.SevenMeterShooter, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.SevenMeterShooters(c), nil
}

func (s *LeagueService) DisciplineStats(ctx context.Context, leagueID string) ([]stats.TeamDiscipline, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.DisciplineStats(c), nil
}

func (s *LeagueService) GoalDistribution(ctx context.Context, leagueID string) ([]stats.TeamGoalDistribution, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.GoalDistributionStats(c), nil
}

func (s *LeagueService) TeamRatios(ctx context.Context, leagueID string) ([]stats.TeamRatio, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.TeamRatioStats(c), nil
}

func (s *LeagueService) TeamOffense(ctx context.Context, leagueID string) ([]stats.TeamOffense, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.TeamOffenseStats(c), nil
}

func (s *LeagueService) TeamDefense(ctx context.Context, leagueID string) ([]stats.TeamDefense, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return stats.TeamDefenseStats(c), nil
}

func (s *LeagueService) Officials(ctx context.Context, leagueID string) (stats.OfficialsIndex, error) {
	c, err := s.load(ctx, leagueID)
	if err != nil {
		return stats.OfficialsIndex{}, err
	}
	return stats.BuildOfficialsIndex(c), nil
}

// GameTimeline enriches one game's goal sequence using the league's half
// duration. A game without timeline data yields two empty halves.
func (s *LeagueService) GameTimeline(ctx context.Context, leagueID, gameID string) ([]stats.HalfTimeline, error) {
	league, err := s.League(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	c, err := s.load(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	for _, g := range c.Games {
		if g.ID == gameID {
			return stats.EnrichTimeline(g.Timeline, league.HalfDuration), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
}
