package matches

import (
	"github.com/xorcare/pointer"
	"golang.org/x/xerrors"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

// ErrIntegrity marks resolved data that contradicts the backend's own model:
// a game crediting a player outside the match, a lone outcome, two winners.
// Not recoverable locally, the affected render must abort rather than guess.
var ErrIntegrity = xerrors.New("match data integrity violation")

// PlayerStanding is one player's derived line on the scoreboard.
type PlayerStanding struct {
	Player       scoresheet.Player
	Wins         int
	Losses       int
	CurrentScore int

	// MatchWinner is nil while the match is still in progress.
	MatchWinner *bool
}

// Scoreboard is the derived state of one match. It is a pure function of the
// resolved graph, so it is recomputed from scratch after every mutation.
type Scoreboard struct {
	TargetScore int
	Complete    bool
	Standings   []PlayerStanding
}

// WinnerUsername returns the username of the match winner, or "" while the
// match is in progress.
func (sb *Scoreboard) WinnerUsername() string {
	for _, standing := range sb.Standings {
		if standing.MatchWinner != nil && *standing.MatchWinner {
			return standing.Player.Username
		}
	}
	return ""
}

// BuildScoreboard derives wins, losses, current scores and completion state
// from a resolved match graph.
//
// Win and loss counts come from the games alone. Outcomes only ever say who
// won the match: a match can end with an uneven game count, because it ends
// when a score reaches the target, not after a fixed number of games. The
// backend decides completion; this never infers it from score >= target.
func BuildScoreboard(rm *ResolvedMatch) (*Scoreboard, error) {
	standings := make([]PlayerStanding, len(rm.Players))
	byURL := make(map[string]*PlayerStanding, len(rm.Players))
	for i, player := range rm.Players {
		standings[i] = PlayerStanding{Player: player}
		byURL[player.URL] = &standings[i]
	}

	for _, game := range rm.Games {
		winner, ok := byURL[game.Winner]
		if !ok {
			return nil, xerrors.Errorf("game %s winner %s is not a match player: %w", game.URL, game.Winner, ErrIntegrity)
		}
		loser, ok := byURL[game.Loser]
		if !ok {
			return nil, xerrors.Errorf("game %s loser %s is not a match player: %w", game.URL, game.Loser, ErrIntegrity)
		}
		// A zero-point game still counts one win and one loss.
		winner.Wins++
		loser.Losses++
	}

	// Scores are matched by player identity, the backend does not guarantee
	// the two entries arrive in player order.
	for _, score := range rm.Scores {
		standing, ok := byURL[score.Player]
		if !ok {
			return nil, xerrors.Errorf("score %s belongs to non-match player %s: %w", score.URL, score.Player, ErrIntegrity)
		}
		standing.CurrentScore = score.PlayerScore
	}

	sb := &Scoreboard{
		TargetScore: rm.Match.TargetScore,
		Standings:   standings,
	}

	if len(rm.Outcomes) == 0 {
		return sb, nil
	}
	if len(rm.Outcomes) != len(rm.Players) {
		return nil, xerrors.Errorf("match has %d outcomes for %d players: %w", len(rm.Outcomes), len(rm.Players), ErrIntegrity)
	}

	winners := 0
	for _, outcome := range rm.Outcomes {
		standing, ok := byURL[outcome.Player]
		if !ok {
			return nil, xerrors.Errorf("outcome %s belongs to non-match player %s: %w", outcome.URL, outcome.Player, ErrIntegrity)
		}
		won := outcome.PlayerOutcome == 1
		if won {
			winners++
		}
		standing.MatchWinner = pointer.Bool(won)
	}
	if winners != 1 {
		return nil, xerrors.Errorf("match has %d winning outcomes: %w", winners, ErrIntegrity)
	}

	sb.Complete = true
	return sb, nil
}
