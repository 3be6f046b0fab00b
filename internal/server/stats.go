package server

import (
	"net/http"
	"net/url"

	"handball-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// StatsServer exposes the derived statistics views as a JSON API for the
// dashboard frontend.
type StatsServer struct {
	svc    *service.LeagueService
	logger zerolog.Logger
}

func NewStatsServer(svc *service.LeagueService, logger zerolog.Logger) *StatsServer {
	return &StatsServer{svc: svc, logger: logger}
}

func (s *StatsServer) Routes() http.Handler {
	router := chi.NewRouter()

	router.NotFound(s.notFoundResponse)
	router.MethodNotAllowed(s.methodNotAllowedResponse)

	router.Get("/v1/healthcheck", s.HealthCheck)
	router.Get("/v1/leagues", s.GetLeagues)

	router.Route("/v1/leagues/{league}", func(router chi.Router) {
		router.Get("/teams", s.GetTeams)
		router.Get("/standings", s.GetStandings)
		router.Get("/teams/{team}/games", s.GetTeamGames)
		router.Get("/teams/{team}/players/{player}", s.GetPlayerTotals)
		router.Get("/statistics/players", s.GetPlayerStatistics)
		router.Get("/statistics/seven-meters", s.GetSevenMeterShooters)
		router.Get("/statistics/discipline", s.GetDiscipline)
		router.Get("/statistics/goal-distribution", s.GetGoalDistribution)
		router.Get("/statistics/ratio", s.GetTeamRatios)
		router.Get("/statistics/offense", s.GetTeamOffense)
		router.Get("/statistics/defense", s.GetTeamDefense)
		router.Get("/officials", s.GetOfficials)
		router.Get("/games/{game}/timeline", s.GetGameTimeline)
		router.Post("/refresh", s.RefreshLeague)
	})

	return router
}

func (s *StatsServer) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, envelope{"status": "available"})
}

func (s *StatsServer) GetLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.svc.Leagues(r.Context())
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"leagues": leagues})
}

func (s *StatsServer) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.Teams(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"teams": teams})
}

func (s *StatsServer) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.svc.Standings(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"standings": standings})
}

func (s *StatsServer) GetTeamGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.svc.TeamGames(r.Context(), leagueParam(r), pathParam(r, "team"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"games": games})
}

func (s *StatsServer) GetPlayerTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := s.svc.PlayerTotals(r.Context(), leagueParam(r), pathParam(r, "team"), pathParam(r, "player"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"totals": totals})
}

func (s *StatsServer) GetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	players, err := s.svc.PlayerStatistics(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"players": players})
}

func (s *StatsServer) GetSevenMeterShooters(w http.ResponseWriter, r *http.Request) {
	shooters, err := s.svc.SevenMeterShooters(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"shooters": shooters})
}

func (s *StatsServer) GetDiscipline(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.DisciplineStats(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"teams": teams})
}

func (s *StatsServer) GetGoalDistribution(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.GoalDistribution(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"teams": teams})
}

func (s *StatsServer) GetTeamRatios(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.TeamRatios(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"teams": teams})
}

func (s *StatsServer) GetTeamOffense(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.TeamOffense(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"teams": teams})
}

func (s *StatsServer) GetTeamDefense(w http.ResponseWriter, r *http.Request) {
	teams, err := s.svc.TeamDefense(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"teams": teams})
}

func (s *StatsServer) GetOfficials(w http.ResponseWriter, r *http.Request) {
	index, err := s.svc.Officials(r.Context(), leagueParam(r))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{
		"referees":    index.Referees,
		"timekeepers": index.Timekeepers,
		"secretaries": index.Secretaries,
	})
}

func (s *StatsServer) GetGameTimeline(w http.ResponseWriter, r *http.Request) {
	halves, err := s.svc.GameTimeline(r.Context(), leagueParam(r), pathParam(r, "game"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{"halves": halves})
}

func (s *StatsServer) RefreshLeague(w http.ResponseWriter, r *http.Request) {
	s.svc.Refresh(r.Context(), leagueParam(r))
	s.writeJSON(w, http.StatusAccepted, envelope{"status": "refreshing"})
}

func leagueParam(r *http.Request) string {
	return pathParam(r, "league")
}

// pathParam unescapes a chi URL parameter; team and player names carry
// spaces and umlauts.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
