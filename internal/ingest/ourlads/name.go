package ourlads

import (
	"regexp"
	"strings"
)

var (
	// trailing jersey number plus optional suffix letters, e.g. "26S"
	jerseyPattern = regexp.MustCompile(`\s*\d+\w*$`)
	// parenthetical annotations, e.g. "(IR)"
	parentheticalPattern = regexp.MustCompile(`\s*\(.*?\)`)
	innerSpacePattern    = regexp.MustCompile(`\s{2,}`)
)

// CleanName normalizes a raw depth-chart cell into "First Last" form:
// strips the trailing jersey number and any parenthetical annotation, and
// reorders "Last, First" names. Idempotent on already-clean names.
func CleanName(raw string) string {
	name := jerseyPattern.ReplaceAllString(raw, "")
	name = parentheticalPattern.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)

	if i := strings.Index(name, ","); i >= 0 {
		last := strings.TrimSpace(name[:i])
		first := strings.TrimSpace(name[i+1:])
		name = strings.TrimSpace(first + " " + last)
	}

	return innerSpacePattern.ReplaceAllString(name, " ")
}
