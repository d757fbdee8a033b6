package domain

// Entry is a single pick'em selection: a player, a stat pick and the
// level (tier) it currently occupies on the board.
type Entry struct {
	ID           string  `json:"id"`
	PlayerName   string  `json:"player_name"`
	Team         string  `json:"team"`
	Opponent     string  `json:"opponent"`
	Position     string  `json:"position"`
	StatCategory string  `json:"stat_category"`
	Multiplier   float64 `json:"multiplier"`
	Level        int     `json:"level"`

	// Optional pick metadata carried through from the client.
	League    string  `json:"league,omitempty"`
	LineMode  string  `json:"line_mode,omitempty"`
	LineValue float64 `json:"line_value,omitempty"`
	Pick      string  `json:"pick,omitempty"`
	GameDate  string  `json:"game_date,omitempty"`
}

// PlayerInfo is the normalized result of an external player lookup.
type PlayerInfo struct {
	Player   string `json:"player"`
	Team     string `json:"team"`
	TeamAbbr string `json:"team_abbr"`
	Opponent string `json:"opponent"`
	Position string `json:"position"`
	League   string `json:"league"`
	GameDate string `json:"game_date,omitempty"`
}

// PlayerCandidate is one of several players matching an ambiguous
// lookup query.
type PlayerCandidate struct {
	Name string `json:"name"`
	Team string `json:"team"`
}
