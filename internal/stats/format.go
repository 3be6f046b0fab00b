package stats

import "strconv"

// CellKind selects the zero-suppression rule for a rendered stat cell.
type CellKind int

const (
	// CellGoals always renders numerically, including 0.
	CellGoals CellKind = iota
	// CellAttempts renders 0 as the absence marker.
	CellAttempts
	// CellSevenMeterGoals renders the absence marker whenever the
	// corresponding attempts count is 0, regardless of the goals value.
	CellSevenMeterGoals
	// CellOther covers penalties and cards: 0 renders as the absence marker.
	CellOther
)

const absenceMarker = "-"

// FormatCell applies the dashboard's display policy to a raw sum. Goals are
// the only stat where 0 stays numeric; everything else is zero-suppressed.
// attempts is only consulted for CellSevenMeterGoals.
func FormatCell(kind CellKind, value, attempts int) string {
	switch kind {
	case CellGoals:
		return strconv.Itoa(value)
	case CellSevenMeterGoals:
		if attempts > 0 {
			return strconv.Itoa(value)
		}
		return absenceMarker
	default:
		if value > 0 {
			return strconv.Itoa(value)
		}
		return absenceMarker
	}
}
