package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"handball-tracker/internal/config"
	"handball-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

// CrawlerClient fetches the static JSON documents published by the handball
// crawler: the league configuration, the per-league round index ("meta") and
// one file per round (Spieltag).
type CrawlerClient struct {
	baseURL string
	client  *fasthttp.Client
}

func NewCrawlerClient(cfg *config.Config) *CrawlerClient {
	return &CrawlerClient{
		baseURL: cfg.DataBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetLeagueConfig fetches config.json, the list of leagues the crawler tracks.
func (c *CrawlerClient) GetLeagueConfig(ctx context.Context) (*LeagueConfigResponse, error) {
	url := fmt.Sprintf("%s/config.json", c.baseURL)
	return doRequest[LeagueConfigResponse](ctx, c, url)
}

// GetMetaIndex fetches data/meta.json, the per-league round index.
func (c *CrawlerClient) GetMetaIndex(ctx context.Context) (*MetaIndexResponse, error) {
	url := fmt.Sprintf("%s/data/meta.json", c.baseURL)
	return doRequest[MetaIndexResponse](ctx, c, url)
}

// FetchRoundRaw downloads one round file (data/{league}/{spieltag}.json) and
// returns the raw body so callers can persist it before decoding.
func (c *CrawlerClient) FetchRoundRaw(ctx context.Context, leagueID, spieltag string) ([]byte, error) {
	url := fmt.Sprintf("%s/data/%s/%s.json", c.baseURL, leagueID, spieltag)
	return fetchBytes(ctx, c, url)
}

// ParseRound decodes a round payload previously obtained via FetchRoundRaw
// or read back from the round snapshot store.
func ParseRound(payload []byte) (*RoundResponse, error) {
	var round RoundResponse
	if err := json.Unmarshal(payload, &round); err != nil {
		return nil, fmt.Errorf("decode round payload: %w", err)
	}
	return &round, nil
}

func doRequest[T any](ctx context.Context, client *CrawlerClient, url string) (*T, error) {
	body, err := fetchBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func fetchBytes(ctx context.Context, client *CrawlerClient, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("crawler data error: %d", resp.StatusCode())
	}

	// Body() is only valid until the response is released.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

type LeagueConfigResponse struct {
	Ref struct {
		BaseURL string `json:"base_url"`
	} `json:"ref"`
	Leagues []LeagueEntry `json:"leagues"`
}

type LeagueEntry struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	OutName      string `json:"out_name"`
	DataFolder   string `json:"data_folder"`
	HalfDuration int    `json:"half_duration"`
	AgeGroup     string `json:"age_group"`
}

func (e LeagueEntry) ToDomain() domain.League {
	return domain.League{
		Name:         e.Name,
		DisplayName:  e.DisplayName,
		OutName:      e.OutName,
		DataFolder:   e.DataFolder,
		HalfDuration: e.HalfDuration,
		AgeGroup:     e.AgeGroup,
	}
}

type MetaIndexResponse struct {
	LastUpdated string                `json:"last_updated"`
	Leagues     map[string]MetaLeague `json:"leagues"`
}

type MetaLeague struct {
	Name        string   `json:"name"`
	Spieltage   []string `json:"spieltage"`
	LastUpdated string   `json:"last_updated"`
}

type RoundResponse struct {
	Games []GameJSON `json:"games"`
}

// GameJSON mirrors the crawler's per-game document. Optional numeric fields
// decode to zero and optional arrays to nil, which ToDomain treats as "no
// entries" — the single place where missing data is defaulted.
type GameJSON struct {
	GameID        string          `json:"game_id"`
	Order         int             `json:"order"`
	Date          string          `json:"date"`
	Home          TeamJSON        `json:"home"`
	Away          TeamJSON        `json:"away"`
	FinalScore    string          `json:"final_score"`
	GoalsTimeline []GoalEventJSON `json:"goals_timeline"`
	Officials     *OfficialsJSON  `json:"officials"`
}

type TeamJSON struct {
	TeamName string       `json:"team_name"`
	Players  []PlayerJSON `json:"players"`
}

type PlayerJSON struct {
	Name             string `json:"name"`
	Goals            int    `json:"goals"`
	SevenMeters      int    `json:"seven_meters"`
	SevenMetersGoals int    `json:"seven_meters_goals"`
	TwoMinPenalties  int    `json:"two_min_penalties"`
	YellowCards      int    `json:"yellow_cards"`
	RedCards         int    `json:"red_cards"`
	BlueCards        int    `json:"blue_cards"`
}

type GoalEventJSON struct {
	Minute     int    `json:"minute"`
	Second     int    `json:"second"`
	Scorer     string `json:"scorer"`
	Team       string `json:"team"`
	SevenMeter bool   `json:"seven_meter"`
}

type OfficialsJSON struct {
	Referees    []string `json:"referees"`
	Timekeepers []string `json:"timekeepers"`
	Secretaries []string `json:"secretaries"`
}

func (g GameJSON) ToDomain() domain.Game {
	game := domain.Game{
		ID:         g.GameID,
		Order:      g.Order,
		Date:       g.Date,
		Home:       g.Home.toDomain(),
		Away:       g.Away.toDomain(),
		FinalScore: g.FinalScore,
	}

	for _, ev := range g.GoalsTimeline {
		side := domain.SideAway
		if ev.Team == string(domain.SideHome) {
			side = domain.SideHome
		}
		game.Timeline = append(game.Timeline, domain.GoalEvent{
			Minute:     ev.Minute,
			Second:     ev.Second,
			Side:       side,
			Scorer:     ev.Scorer,
			SevenMeter: ev.SevenMeter,
		})
	}

	if g.Officials != nil {
		game.Officials = &domain.Officials{
			Referees:    g.Officials.Referees,
			Timekeepers: g.Officials.Timekeepers,
			Secretaries: g.Officials.Secretaries,
		}
	}

	return game
}

func (t TeamJSON) toDomain() domain.TeamSide {
	side := domain.TeamSide{Name: t.TeamName}
	for _, p := range t.Players {
		side.Players = append(side.Players, domain.PlayerLine{
			Name:            p.Name,
			Goals:           p.Goals,
			SevenMeters:     p.SevenMeters,
			SevenMeterGoals: p.SevenMetersGoals,
			TwoMinPenalties: p.TwoMinPenalties,
			YellowCards:     p.YellowCards,
			RedCards:        p.RedCards,
			BlueCards:       p.BlueCards,
		})
	}
	return side
}
