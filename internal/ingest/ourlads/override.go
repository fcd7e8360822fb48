package ourlads

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
)

// DefaultOverridePath is the conventional override file location.
const DefaultOverridePath = "starters_override.csv"

// LoadOverrides reads the manually curated correction file at path. The
// second return is false when the file does not exist, which callers must
// treat as "skip override processing entirely". An existing file with no
// data rows returns an empty set, which is also a no-op for the merge but
// a distinct condition. Rows default a missing status to the active
// sentinel and any other missing column to "".
func LoadOverrides(path string) ([]store.Starter, bool) {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[ourlads] override file %s unreadable: %v", path, err)
		}
		return nil, false
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		// Empty or unreadable header: treat as an empty override set.
		return []store.Starter{}, true
	}

	idx := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	iTeam := idx("team")
	iPosition := idx("position")
	iPlayer := idx("player")
	iStatus := idx("status")

	field := func(rec []string, i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	overrides := []store.Starter{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("[ourlads] override file %s malformed: %v (ignoring overrides)", path, err)
			return []store.Starter{}, true
		}

		status := field(rec, iStatus)
		if status == "" {
			status = store.StatusActive
		}
		overrides = append(overrides, store.Starter{
			Team:     field(rec, iTeam),
			Position: field(rec, iPosition),
			Player:   field(rec, iPlayer),
			Status:   status,
		})
	}

	return overrides, true
}

// MergeOverrides drops every scraped row whose (team, position) key
// matches an override row, then appends the override rows in file order.
// The scraped rows keep their original relative order.
func MergeOverrides(scraped, overrides []store.Starter) []store.Starter {
	if len(overrides) == 0 {
		return scraped
	}

	drop := make(map[[2]string]struct{}, len(overrides))
	for _, o := range overrides {
		drop[[2]string{o.Team, o.Position}] = struct{}{}
	}

	out := emptyStarters()
	for _, s := range scraped {
		if _, excluded := drop[[2]string{s.Team, s.Position}]; excluded {
			continue
		}
		out = append(out, s)
	}

	return append(out, overrides...)
}
