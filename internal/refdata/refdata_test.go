package refdata

import (
	"sort"
	"testing"
)

func TestTeamNames(t *testing.T) {
	names := TeamNames()

	// 32 NFL + 30 NBA + 30 MLB
	if len(names) != 92 {
		t.Fatalf("expected 92 team names, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("team names must be sorted")
	}
}

func TestCategoryNames_DistinctAndSorted(t *testing.T) {
	names := CategoryNames()
	if !sort.StringsAreSorted(names) {
		t.Error("category names must be sorted")
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate category %q", n)
		}
		seen[n] = true
	}

	// fantasy_points appears in several groups but only once in the set
	if !seen["fantasy_points"] {
		t.Error("expected fantasy_points in the category set")
	}
}

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"passing_yds", true},
		{"rebounds", true},
		{"strikeouts", true},
		{"sacks", true},
		{"underwater_yds", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidCategory(tt.name); got != tt.want {
			t.Errorf("ValidCategory(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormPosition(t *testing.T) {
	tests := []struct {
		abbr string
		want string
	}{
		{"QB", "Quarterback (QB)"},
		{"FB", "Running Back (RB)"},
		{"TE", "Wide Receiver (WR)"},
		{"P", "Kicker (K)"},
		{"EDGE", "NFL Defense Player"},
		{"", "Quarterback (QB)"},
		{"XX", "Quarterback (QB)"},
	}
	for _, tt := range tests {
		if got := FormPosition(tt.abbr); got != tt.want {
			t.Errorf("FormPosition(%q) = %q, want %q", tt.abbr, got, tt.want)
		}
	}
}
