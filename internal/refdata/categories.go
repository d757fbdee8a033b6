package refdata

import "sort"

// CategoryGroups maps a form position to the stat categories offered for it.
var CategoryGroups = map[string][]string{
	"Quarterback (QB)": {
		"rush_rec_tds", "passing_yds", "passing_tds", "rushing_yds", "rushing_att",
		"passing_att", "passing_comps", "passing_ints", "fantasy_points",
		"passing_and_rushing_yds", "passing_long", "period_1_passing_yds",
		"period_1_rushing_yds", "period_1_passing_tds", "period_1_2_passing_yds",
		"period_1_2_rushing_yds", "period_1_2_passing_tds", "fumbles_lost",
		"25_pass_yds_each_quarter", "passing_comp_pct", "period_first_attempt_completions",
	},
	"Running Back (RB)": {
		"rush_rec_tds", "rushing_yds", "receiving_yds", "receiving_rec", "rushing_att",
		"fantasy_points", "rush_rec_yds", "receiving_long", "rushing_long",
		"period_first_touchdown_scored", "rushing_tds", "receiving_tds",
		"period_1_receiving_yds", "period_1_rushing_yds", "period_1_receiving_rec",
		"period_1_rush_rec_tds", "period_1_2_receiving_yds", "period_1_2_rushing_yds",
		"period_1_2_receiving_rec", "period_1_2_rush_rec_tds", "fumbles_lost",
	},
	"Wide Receiver (WR)": {
		"rush_rec_tds", "receiving_yds", "receiving_rec", "fantasy_points", "receiving_tgts",
		"receiving_long", "period_first_touchdown_scored", "period_1_receiving_yds",
		"period_1_receiving_rec", "period_1_rush_rec_tds", "period_1_2_receiving_yds",
		"period_1_2_receiving_rec", "period_1_2_rush_rec_tds", "fumbles_lost",
	},
	"Kicker (K)": {
		"field_goals_made", "extra_points_made", "kicking_points",
	},
	"NBA Player": {
		"points", "three_points_made", "rebounds", "assists", "pts_rebs_asts", "rebs_asts",
		"pts_rebs", "pts_asts", "double_doubles", "triple_doubles", "period_1_points",
		"period_1_rebounds", "period_1_assists", "period_1_three_points_made", "period_1_pts_rebs_asts",
		"fantasy_points", "turnovers", "steals", "free_throws_made", "period_1_2_points",
		"period_1_2_three_points_made", "period_1_2_assists", "period_1_2_pts_rebs_asts",
		"period_first_fg_attempt", "period_first_three_attempt", "period_1_first_5_min_pra",
		"period_1_first_5_min_pts", "offensive_rebounds",
	},
	"MLB Player": {
		"strikeouts", "fantasy_points", "pitch_outs", "hits_allowed", "runs_allowed",
		"walks_allowed", "period_1_strikeouts", "period_1_total_runs_allowed", "period_1_pitch_count",
		"period_1_batters_faced", "period_1_hits_allowed", "period_1_2_3_total_runs_allowed",
		"period_first_pitch_of_game_velocity",
	},
	"NFL Defense Player": {
		"sacks", "tackles_and_assists", "assists", "tackles",
	},
}

var categorySet = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, cats := range CategoryGroups {
		for _, c := range cats {
			set[c] = struct{}{}
		}
	}
	return set
}()

// CategoryNames returns the distinct stat category names, sorted.
func CategoryNames() []string {
	names := make([]string, 0, len(categorySet))
	for c := range categorySet {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// ValidCategory reports whether name is a supported stat category.
func ValidCategory(name string) bool {
	_, ok := categorySet[name]
	return ok
}

// nflPositionGroups collapses ESPN position abbreviations into the
// position buckets the entry form uses.
var nflPositionGroups = map[string]string{
	"QB": "Quarterback (QB)",
	"RB": "Running Back (RB)",
	"FB": "Running Back (RB)",
	"WR": "Wide Receiver (WR)",
	"TE": "Wide Receiver (WR)",
	"K":  "Kicker (K)",
	"P":  "Kicker (K)",
	"LB": "NFL Defense Player", "DE": "NFL Defense Player", "DT": "NFL Defense Player",
	"CB": "NFL Defense Player", "S": "NFL Defense Player", "SS": "NFL Defense Player",
	"FS": "NFL Defense Player", "OLB": "NFL Defense Player", "ILB": "NFL Defense Player",
	"MLB": "NFL Defense Player", "NT": "NFL Defense Player", "DB": "NFL Defense Player",
	"DL": "NFL Defense Player", "EDGE": "NFL Defense Player",
}

// FormPosition maps an NFL position abbreviation to its form bucket.
// Unknown abbreviations fall back to QB, matching the entry form default.
func FormPosition(abbr string) string {
	if pos, ok := nflPositionGroups[abbr]; ok {
		return pos
	}
	return "Quarterback (QB)"
}
