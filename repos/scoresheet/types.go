package scoresheet

import "time"

// Player is the backend's user resource. Cross-references are URLs,
// matching the hyperlinked serializers on the API side.
type Player struct {
	URL        string     `json:"url"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
	MatchSet   []string   `json:"match_set"`
}

// Match references its players, games, scores and outcomes by URL.
// The nested lists must be fetched individually, the API does not embed them.
type Match struct {
	URL             string     `json:"url"`
	Players         []string   `json:"players"`
	Games           []string   `json:"games"`
	ScoreSet        []string   `json:"score_set"`
	OutcomeSet      []string   `json:"outcome_set"`
	DatetimeStarted time.Time  `json:"datetime_started"`
	DatetimeEnded   *time.Time `json:"datetime_ended"`
	TargetScore     int        `json:"target_score"`
	Complete        bool       `json:"complete"`
	CreatedBy       *string    `json:"created_by"`
}

type Game struct {
	URL             string    `json:"url"`
	Match           string    `json:"match"`
	Winner          string    `json:"winner"`
	Loser           string    `json:"loser"`
	Points          int       `json:"points"`
	Gin             bool      `json:"gin"`
	Undercut        bool      `json:"undercut"`
	DatetimePlayed  time.Time `json:"datetime_played"`
	CreatedBy       *string   `json:"created_by"`
}

// Score is the backend-maintained cumulative score of one player in one
// match. Read-only derived data as far as this service is concerned.
type Score struct {
	URL         string `json:"url"`
	Match       string `json:"match"`
	Player      string `json:"player"`
	PlayerScore int    `json:"player_score"`
}

// Outcome only exists once a match is complete: one per player,
// PlayerOutcome 1 for the match winner and 0 for the loser.
type Outcome struct {
	URL           string `json:"url"`
	Match         string `json:"match"`
	Player        string `json:"player"`
	PlayerOutcome int    `json:"player_outcome"`
}

type PlayerList struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Player `json:"results"`
}

type MatchList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Match `json:"results"`
}

type GameList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Game  `json:"results"`
}

type ScoreList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Score `json:"results"`
}

type OutcomeList struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Outcome `json:"results"`
}

// CreateMatchRequest is the body for the match-create endpoint.
type CreateMatchRequest struct {
	Players     []string `json:"players"`
	TargetScore int      `json:"target_score"`
}

// GameRequest is the body for both game-create and game-edit.
type GameRequest struct {
	Match    string `json:"match"`
	Winner   string `json:"winner"`
	Loser    string `json:"loser"`
	Points   int    `json:"points"`
	Gin      bool   `json:"gin"`
	Undercut bool   `json:"undercut"`
}

// UpdatePlayerRequest is the body for the player-edit endpoint.
type UpdatePlayerRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
