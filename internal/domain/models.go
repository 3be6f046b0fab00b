package domain

// Side identifies which team a goal event belongs to.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Corpus is the full set of games for one league, merged across all rounds.
// Aggregations treat it as read-only.
type Corpus struct {
	LeagueID string
	Games    []Game
}

// Game is one crawled match. Ordering within a season comes from Order,
// never from file or fetch order.
type Game struct {
	ID         string
	Order      int
	Date       string
	Home       TeamSide
	Away       TeamSide
	FinalScore string
	Timeline   []GoalEvent
	Officials  *Officials
}

// TeamSide is one team's half of a game. Name is the join key across the
// corpus; the source data carries no surrogate IDs.
type TeamSide struct {
	Name    string
	Players []PlayerLine
}

// PlayerLine is a single player's stat line in one game. Name is the join
// key within a team. All counters are zero when the source omits them.
type PlayerLine struct {
	Name            string `json:"name"`
	Goals           int    `json:"goals"`
	SevenMeters     int    `json:"seven_meters"`
	SevenMeterGoals int    `json:"seven_meters_goals"`
	TwoMinPenalties int    `json:"two_min_penalties"`
	YellowCards     int    `json:"yellow_cards"`
	RedCards        int    `json:"red_cards"`
	BlueCards       int    `json:"blue_cards"`
}

// GoalEvent is one entry of a game's goal timeline. Slice order is
// chronological; Minute and Second locate the goal within the match.
type GoalEvent struct {
	Minute     int
	Second     int
	Side       Side
	Scorer     string
	SevenMeter bool
}

// Officials lists the names assigned to a game per role. A game may have
// zero or multiple names per role.
type Officials struct {
	Referees    []string
	Timekeepers []string
	Secretaries []string
}

// League is one entry of the crawler's league configuration. OutName is the
// identifier used in data paths and the meta index.
type League struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	OutName      string `json:"out_name"`
	DataFolder   string `json:"data_folder"`
	HalfDuration int    `json:"half_duration"`
	AgeGroup     string `json:"age_group"`
}
