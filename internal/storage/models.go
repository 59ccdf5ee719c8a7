package storage

// Match result values as stored in the matches table.
const (
	ResultX    = "X"
	ResultO    = "O"
	ResultDraw = "Draw"
)

// Match modes.
const (
	ModePvP  = "pvp"
	ModePvAI = "pvai"
)

// History filters accepted by RecentMatches.
const (
	FilterAll    = ""
	FilterPvP    = "pvp"
	FilterEasy   = "easy"
	FilterMedium = "medium"
	FilterHard   = "hard"
)

// MatchResult is the record a finished match hands to the store. AILevel must
// be set for pvai matches and empty for pvp.
type MatchResult struct {
	PlayerX string
	PlayerO string
	Result  string
	Mode    string
	AILevel string
}

// PlayerStats is one leaderboard row.
type PlayerStats struct {
	Name          string
	TotalWins     int
	PvPWins       int
	AIEasyWins    int
	AIMediumWins  int
	AIHardWins    int
	WinPercentage float64
	TotalGames    int
}

// MatchRecord is one history row, newest first. PlayedAt is the SQLite
// CURRENT_TIMESTAMP string (UTC, "2006-01-02 15:04:05").
type MatchRecord struct {
	PlayedAt string
	PlayerX  string
	PlayerO  string
	Result   string
	Mode     string
	AILevel  string
}

// Summary aggregates the whole database.
type Summary struct {
	Players     int
	Matches     int
	PvPMatches  int
	PvAIMatches int
	Draws       int
}
