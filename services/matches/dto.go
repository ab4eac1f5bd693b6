package matches

import (
	"fmt"

	"github.com/ginrummy/scoresheet-web/pkg/format"
	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

// DefaultTargetScore preselects the target on the new-match form.
const DefaultTargetScore = 500

type ScoreboardRow struct {
	Username   string
	Points     int
	Target     int
	WinsLosses string
}

type GameRow struct {
	PK         string
	DatePlayed string
	Winner     string
	Points     int
	Gin        bool
	Undercut   bool
}

// MatchDetailView is everything the match detail template renders. Complete
// drives the disabled state of the new-game form.
type MatchDetailView struct {
	Title           string
	MatchPK         string
	ScoreboardTitle string
	Complete        bool
	Rows            []ScoreboardRow
	Games           []GameRow
	PlayerOptions   []string
}

// NewMatchDetailView shapes a resolved graph and its scoreboard for the
// template. Pure formatting, no I/O.
func NewMatchDetailView(rm *ResolvedMatch, sb *Scoreboard) MatchDetailView {
	view := MatchDetailView{
		Title:    fmt.Sprintf("Match - %s v. %s", rm.Players[0].Username, rm.Players[1].Username),
		MatchPK:  scoresheet.ValueFromURL(rm.Match.URL, "matches"),
		Complete: sb.Complete,
	}

	view.ScoreboardTitle = "Scoreboard"
	if sb.Complete {
		view.ScoreboardTitle = fmt.Sprintf("Scoreboard :: %s Wins!", sb.WinnerUsername())
	}

	for _, standing := range sb.Standings {
		view.Rows = append(view.Rows, ScoreboardRow{
			Username:   standing.Player.Username,
			Points:     standing.CurrentScore,
			Target:     sb.TargetScore,
			WinsLosses: format.WinLoss(standing.Wins, standing.Losses),
		})
		view.PlayerOptions = append(view.PlayerOptions, standing.Player.Username)
	}

	for _, game := range rm.Games {
		view.Games = append(view.Games, GameRow{
			PK:         scoresheet.ValueFromURL(game.URL, "games"),
			DatePlayed: format.Date(game.DatetimePlayed),
			Winner:     scoresheet.ValueFromURL(game.Winner, "players"),
			Points:     game.Points,
			Gin:        game.Gin,
			Undercut:   game.Undercut,
		})
	}
	return view
}

type MatchRow struct {
	PK       string
	Opponent string
	Scores   string
	Dates    string
	Outcome  string
}

// MatchListView backs the current/past matches page.
type MatchListView struct {
	Username    string
	Current     []MatchRow
	Past        []MatchRow
	Opponents   []scoresheet.Player
	TargetScore int
}

// NewMatchRow formats one summary. Own score renders first, an in-progress
// match shows only its start date, a completed one the full range and the
// W/L letter.
func NewMatchRow(summary MatchSummary) MatchRow {
	row := MatchRow{
		PK:       summary.PK,
		Opponent: summary.Opponent,
		Scores:   fmt.Sprintf("%d-%d", summary.OwnScore, summary.OpponentScore),
		Dates:    format.Date(summary.Match.DatetimeStarted),
	}
	if summary.Match.DatetimeEnded != nil {
		row.Dates = format.DateRange(summary.Match.DatetimeStarted, *summary.Match.DatetimeEnded)
	}
	if summary.Match.Complete && summary.Outcome >= 0 {
		row.Outcome = format.Outcome(summary.Outcome)
	}
	return row
}

// GameEditView backs the game edit form, prefilled from the current game.
type GameEditView struct {
	MatchPK       string
	GamePK        string
	Winner        string
	Points        int
	Gin           bool
	Undercut      bool
	PlayerOptions []string
}
