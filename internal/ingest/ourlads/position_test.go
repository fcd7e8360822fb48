package ourlads

import "testing"

func TestMapPosition(t *testing.T) {
	tests := []struct {
		rowPos string
		slot   int
		want   string
	}{
		{"QB", 1, "QB"},
		{"QB", 3, "QB"},
		{"FB", 1, "FB"},
		{"RB", 1, "RB1"},
		{"RB", 2, "RB2"},
		{"RB", 5, "RB2"},
		{"TE", 1, "TE1"},
		{"TE", 2, "TE2"},
		{"TE", 4, "TE2"},
		{"WR", 1, "WR1"},
		{"WR", 2, "WR2"},
		{"WR", 3, "WR3"},
		{"WR", 5, "WR5"},
		{"WR", 6, ""},
		{"LWR", 1, "WR1"},
		{"RWR", 2, "WR2"},
		{"SWR", 1, "SLOT"},
		{"SWR", 2, ""},
		{"WR-SLOT", 1, "SLOT"},
		{"SLOT", 1, "SLOT"},
		{"SLOT", 2, ""},
		{"qb", 1, "QB"},
		{"wr", 4, "WR4"},
		{"LT", 1, ""},
		{"K", 1, ""},
		{"", 1, ""},
	}

	for _, tt := range tests {
		got := MapPosition(tt.rowPos, tt.slot)
		if got != tt.want {
			t.Errorf("MapPosition(%q, %d) = %q, want %q", tt.rowPos, tt.slot, got, tt.want)
		}
	}
}
