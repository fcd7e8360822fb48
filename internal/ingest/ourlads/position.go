package ourlads

import (
	"fmt"
	"strings"
)

// MapPosition maps a depth-chart row label and 1-based slot index to a
// canonical position code, or "" when the pair has no mapping. Slots past
// the enumerated depth (RB3+, TE3+ collapse to the last bucket; WR6+ and
// SLOT2+ drop) mirror realistic depth-chart widths.
func MapPosition(rowPos string, slot int) string {
	switch pos := strings.ToUpper(rowPos); pos {
	case "QB", "FB":
		return pos
	case "RB":
		if slot == 1 {
			return "RB1"
		}
		return "RB2"
	case "TE":
		if slot == 1 {
			return "TE1"
		}
		return "TE2"
	case "SWR", "WR-SLOT", "SLOT":
		if slot == 1 {
			return "SLOT"
		}
		return ""
	case "WR", "LWR", "RWR":
		if slot >= 1 && slot <= 5 {
			return fmt.Sprintf("WR%d", slot)
		}
		return ""
	}
	return ""
}
