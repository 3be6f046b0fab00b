package stats

import (
	"sort"

	"handball-tracker/internal/domain"
)

// unknownScore stands in when a game carries no stored final score.
const unknownScore = "?:?"

// GameSummary is the per-game line attached to an official's appearance list.
type GameSummary struct {
	Date  string `json:"date"`
	Home  string `json:"home"`
	Away  string `json:"away"`
	Score string `json:"score"`
}

type OfficialRecord struct {
	Name  string        `json:"name"`
	Count int           `json:"count"`
	Games []GameSummary `json:"games"`
}

// OfficialsIndex tracks the three officiating roles independently; a name
// appearing in several roles is counted per role, never merged.
type OfficialsIndex struct {
	Referees    []OfficialRecord `json:"referees"`
	Timekeepers []OfficialRecord `json:"timekeepers"`
	Secretaries []OfficialRecord `json:"secretaries"`
}

// BuildOfficialsIndex walks every game's officiating record and counts
// appearances per name and role. Each role list is sorted by descending
// count; names with equal counts keep first-appearance order.
func BuildOfficialsIndex(c *domain.Corpus) OfficialsIndex {
	referees := newRoleIndex()
	timekeepers := newRoleIndex()
	secretaries := newRoleIndex()

	if c != nil {
		for _, g := range c.Games {
			if g.Officials == nil {
				continue
			}

			score := g.FinalScore
			if score == "" {
				score = unknownScore
			}
			summary := GameSummary{
				Date:  g.Date,
				Home:  g.Home.Name,
				Away:  g.Away.Name,
				Score: score,
			}

			referees.record(g.Officials.Referees, summary)
			timekeepers.record(g.Officials.Timekeepers, summary)
			secretaries.record(g.Officials.Secretaries, summary)
		}
	}

	return OfficialsIndex{
		Referees:    referees.ranked(),
		Timekeepers: timekeepers.ranked(),
		Secretaries: secretaries.ranked(),
	}
}

type roleIndex struct {
	byName map[string]*OfficialRecord
	order  []string
}

func newRoleIndex() *roleIndex {
	return &roleIndex{byName: make(map[string]*OfficialRecord)}
}

func (idx *roleIndex) record(names []string, summary GameSummary) {
	for _, name := range names {
		rec, ok := idx.byName[name]
		if !ok {
			rec = &OfficialRecord{Name: name}
			idx.byName[name] = rec
			idx.order = append(idx.order, name)
		}
		rec.Count++
		rec.Games = append(rec.Games, summary)
	}
}

func (idx *roleIndex) ranked() []OfficialRecord {
	result := make([]OfficialRecord, 0, len(idx.order))
	for _, name := range idx.order {
		result = append(result, *idx.byName[name])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}
