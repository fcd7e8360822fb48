// Package ourlads scrapes Ourlads NFL depth charts and normalizes them
// into canonical starter records.
//
// The pipeline is deliberately total: network failures, missing or
// malformed tables, empty sections and unmappable positions all funnel to
// the empty starter list so multi-team batch calls stay resilient to
// individual team failures. No stage returns an error for expected
// failure modes.
package ourlads

import (
	"regexp"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
)

// playerColumnPattern selects per-slot player columns ("Player 1",
// "No Player 2", ...) while excluding unrelated metadata columns.
var playerColumnPattern = regexp.MustCompile(`(?i)^(?:No\s*)?Player`)

// sectionLabelPattern matches stray section labels that survive slicing.
var sectionLabelPattern = regexp.MustCompile(`(?i)offense|defense|special`)

// slotEntry is one (position label, depth slot, raw cell) triple from the
// reshaped wide table.
type slotEntry struct {
	pos  string
	slot int
	raw  string
}

// emptyStarters is the uniform absence value: zero rows, never nil.
func emptyStarters() []store.Starter {
	return []store.Starter{}
}

// ParseDepthChart normalizes a raw Ourlads depth-chart page into starter
// records for team. Absence of usable data yields the empty list.
func ParseDepthChart(html, team string) []store.Starter {
	table, ok := ExtractFirstTable(html)
	if !ok {
		return emptyStarters()
	}

	cols := flattenHeader(table)
	if len(cols) == 0 {
		return emptyStarters()
	}

	playerCols := playerColumns(cols)
	if len(playerCols) == 0 {
		return emptyStarters()
	}

	rows := offenseBlock(table.Rows)
	if len(rows) == 0 {
		return emptyStarters()
	}

	entries := reshape(rows, playerCols)
	if len(entries) == 0 {
		return emptyStarters()
	}

	return assemble(entries, team)
}

// flattenHeader collapses the multi-level header into one string per
// column, joining non-placeholder levels with a single space. Empty
// strings, "nan" and auto-generated "Unnamed:" levels are skipped.
func flattenHeader(t Table) []string {
	width := t.Width()
	cols := make([]string, 0, width)
	for i := 0; i < width; i++ {
		var parts []string
		for _, level := range t.Header {
			part := cellAt(level, i)
			if part == "" || part == "nan" || strings.HasPrefix(part, "Unnamed:") {
				continue
			}
			parts = append(parts, part)
		}
		cols = append(cols, strings.Join(parts, " "))
	}
	return cols
}

// playerColumns returns the indexes of the player-slot columns. The first
// column is always the position field and is never selected.
func playerColumns(cols []string) []int {
	var idx []int
	for i, col := range cols {
		if i == 0 {
			continue
		}
		if playerColumnPattern.MatchString(col) {
			idx = append(idx, i)
		}
	}
	return idx
}

// offenseBlock restricts rows to the offensive section. "OFFENSE" and
// "DEFENSE" rows in the position column act as delimiters: with both
// markers the block is strictly between them, with only a defense marker
// it is everything before it, and with neither the whole table counts as
// offense. Blank position rows and stray section labels are dropped.
func offenseBlock(rows [][]string) [][]string {
	offense, defense := -1, -1
	for i, row := range rows {
		switch strings.ToUpper(cellAt(row, 0)) {
		case "OFFENSE":
			if offense < 0 {
				offense = i
			}
		case "DEFENSE":
			if defense < 0 {
				defense = i
			}
		}
	}

	start, end := 0, len(rows)
	if offense >= 0 {
		start = offense + 1
		if defense >= 0 {
			end = defense
		}
	} else if defense >= 0 {
		end = defense
	}
	if end < start {
		return nil
	}

	var block [][]string
	for _, row := range rows[start:end] {
		pos := cellAt(row, 0)
		if pos == "" || sectionLabelPattern.MatchString(pos) {
			continue
		}
		block = append(block, row)
	}
	return block
}

// reshape turns the position-indexed wide block into a long list of slot
// entries, one per (row, player column) pair, discarding empty cells.
// Slot indexes are 1-based in left-to-right player-column order.
func reshape(rows [][]string, playerCols []int) []slotEntry {
	var entries []slotEntry
	for _, row := range rows {
		pos := cellAt(row, 0)
		for slot, col := range playerCols {
			raw := cellAt(row, col)
			if raw == "" {
				continue
			}
			entries = append(entries, slotEntry{pos: pos, slot: slot + 1, raw: raw})
		}
	}
	return entries
}

// assemble maps each entry to its canonical position, cleans the player
// name, attaches the team and active status, and deduplicates by
// (position, player) keeping the first occurrence.
func assemble(entries []slotEntry, team string) []store.Starter {
	out := emptyStarters()
	seen := make(map[[2]string]struct{}, len(entries))

	for _, e := range entries {
		code := MapPosition(e.pos, e.slot)
		if code == "" {
			continue
		}
		player := CleanName(e.raw)

		key := [2]string{code, player}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, store.Starter{
			Team:     team,
			Position: code,
			Player:   player,
			Status:   store.StatusActive,
		})
	}

	return out
}
