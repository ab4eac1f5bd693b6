package matches

import (
	"testing"

	"golang.org/x/xerrors"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

const (
	aliceURL = "http://api.test/api/players/alice/"
	bobURL   = "http://api.test/api/players/bob/"
	carolURL = "http://api.test/api/players/carol/"
	matchURL = "http://api.test/api/matches/1/"
)

func testResolvedMatch() *ResolvedMatch {
	return &ResolvedMatch{
		Match: scoresheet.Match{
			URL:         matchURL,
			Players:     []string{aliceURL, bobURL},
			TargetScore: 500,
		},
		Players: []scoresheet.Player{
			{URL: aliceURL, Username: "alice"},
			{URL: bobURL, Username: "bob"},
		},
		Games: []scoresheet.Game{
			{Winner: aliceURL, Loser: bobURL, Points: 25},
			{Winner: bobURL, Loser: aliceURL, Points: 30},
			{Winner: aliceURL, Loser: bobURL, Points: 10},
		},
		Scores: []scoresheet.Score{
			{Match: matchURL, Player: bobURL, PlayerScore: 30},
			{Match: matchURL, Player: aliceURL, PlayerScore: 35},
		},
	}
}

func standingFor(t *testing.T, sb *Scoreboard, username string) PlayerStanding {
	t.Helper()
	for _, standing := range sb.Standings {
		if standing.Player.Username == username {
			return standing
		}
	}
	t.Fatalf("no standing for %s", username)
	return PlayerStanding{}
}

func TestBuildScoreboardInProgress(t *testing.T) {
	rm := testResolvedMatch()

	sb, err := BuildScoreboard(rm)
	if err != nil {
		t.Fatalf("BuildScoreboard failed: %v", err)
	}

	if sb.Complete {
		t.Error("expected match without outcomes to be in progress")
	}
	if sb.TargetScore != 500 {
		t.Errorf("expected target score 500, got %d", sb.TargetScore)
	}

	alice := standingFor(t, sb, "alice")
	bob := standingFor(t, sb, "bob")

	if alice.Wins != 2 || alice.Losses != 1 {
		t.Errorf("expected alice at 2-1, got %d-%d", alice.Wins, alice.Losses)
	}
	if bob.Wins != 1 || bob.Losses != 2 {
		t.Errorf("expected bob at 1-2, got %d-%d", bob.Wins, bob.Losses)
	}
	// Scores are matched by identity even though the backend returned
	// bob's score first.
	if alice.CurrentScore != 35 {
		t.Errorf("expected alice at 35 points, got %d", alice.CurrentScore)
	}
	if bob.CurrentScore != 30 {
		t.Errorf("expected bob at 30 points, got %d", bob.CurrentScore)
	}
	if alice.MatchWinner != nil || bob.MatchWinner != nil {
		t.Error("expected no match winner flags while in progress")
	}
}

func TestBuildScoreboardComplete(t *testing.T) {
	rm := testResolvedMatch()
	rm.Outcomes = []scoresheet.Outcome{
		{Match: matchURL, Player: aliceURL, PlayerOutcome: 1},
		{Match: matchURL, Player: bobURL, PlayerOutcome: 0},
	}

	sb, err := BuildScoreboard(rm)
	if err != nil {
		t.Fatalf("BuildScoreboard failed: %v", err)
	}

	if !sb.Complete {
		t.Error("expected match with an outcome pair to be complete")
	}
	if got := sb.WinnerUsername(); got != "alice" {
		t.Errorf("expected alice to win the match, got %q", got)
	}

	alice := standingFor(t, sb, "alice")
	bob := standingFor(t, sb, "bob")
	if alice.MatchWinner == nil || !*alice.MatchWinner {
		t.Error("expected alice flagged as match winner")
	}
	if bob.MatchWinner == nil || *bob.MatchWinner {
		t.Error("expected bob flagged as match loser")
	}
}

// Win and loss counts always sum to twice the game count: each game hands
// out exactly one of each.
func TestBuildScoreboardTallyInvariant(t *testing.T) {
	cases := [][]scoresheet.Game{
		nil,
		{{Winner: aliceURL, Loser: bobURL, Points: 10}},
		{
			{Winner: aliceURL, Loser: bobURL, Points: 10},
			{Winner: aliceURL, Loser: bobURL, Points: 55},
			{Winner: bobURL, Loser: aliceURL, Points: 5},
			{Winner: bobURL, Loser: aliceURL, Points: 0},
		},
	}

	for _, games := range cases {
		rm := testResolvedMatch()
		rm.Games = games

		sb, err := BuildScoreboard(rm)
		if err != nil {
			t.Fatalf("BuildScoreboard failed: %v", err)
		}

		total := 0
		for _, standing := range sb.Standings {
			total += standing.Wins + standing.Losses
		}
		if total != 2*len(games) {
			t.Errorf("expected %d total tallies for %d games, got %d", 2*len(games), len(games), total)
		}
	}
}

// A zero-point game contributes nothing to the score but still counts one
// win and one loss.
func TestBuildScoreboardZeroPointGame(t *testing.T) {
	rm := testResolvedMatch()
	rm.Games = []scoresheet.Game{{Winner: aliceURL, Loser: bobURL, Points: 0}}

	sb, err := BuildScoreboard(rm)
	if err != nil {
		t.Fatalf("BuildScoreboard failed: %v", err)
	}

	alice := standingFor(t, sb, "alice")
	bob := standingFor(t, sb, "bob")
	if alice.Wins != 1 || bob.Losses != 1 {
		t.Errorf("expected zero-point game to count, got alice %d wins, bob %d losses", alice.Wins, bob.Losses)
	}
}

func TestBuildScoreboardNoGames(t *testing.T) {
	rm := testResolvedMatch()
	rm.Games = nil

	sb, err := BuildScoreboard(rm)
	if err != nil {
		t.Fatalf("BuildScoreboard failed: %v", err)
	}

	for _, standing := range sb.Standings {
		if standing.Wins != 0 || standing.Losses != 0 {
			t.Errorf("expected empty tallies, got %d-%d for %s", standing.Wins, standing.Losses, standing.Player.Username)
		}
	}
	// Current scores still come from the score entities.
	if standingFor(t, sb, "alice").CurrentScore != 35 {
		t.Error("expected score entities to drive current score with no games")
	}
}

// The aggregator is a pure function: the same resolved graph always
// derives the same scoreboard.
func TestBuildScoreboardDeterministic(t *testing.T) {
	rm := testResolvedMatch()
	rm.Outcomes = []scoresheet.Outcome{
		{Match: matchURL, Player: aliceURL, PlayerOutcome: 1},
		{Match: matchURL, Player: bobURL, PlayerOutcome: 0},
	}

	first, err := BuildScoreboard(rm)
	if err != nil {
		t.Fatalf("BuildScoreboard failed: %v", err)
	}
	second, err := BuildScoreboard(rm)
	if err != nil {
		t.Fatalf("BuildScoreboard failed: %v", err)
	}

	for i := range first.Standings {
		a, b := first.Standings[i], second.Standings[i]
		if a.Wins != b.Wins || a.Losses != b.Losses || a.CurrentScore != b.CurrentScore {
			t.Errorf("expected identical standings across runs, got %+v vs %+v", a, b)
		}
	}
	if first.Complete != second.Complete {
		t.Error("expected identical completion state across runs")
	}
}

func TestBuildScoreboardIntegrityViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(rm *ResolvedMatch)
	}{
		{
			name: "game winner outside match",
			mutate: func(rm *ResolvedMatch) {
				rm.Games = append(rm.Games, scoresheet.Game{Winner: carolURL, Loser: bobURL, Points: 10})
			},
		},
		{
			name: "game loser outside match",
			mutate: func(rm *ResolvedMatch) {
				rm.Games = append(rm.Games, scoresheet.Game{Winner: aliceURL, Loser: carolURL, Points: 10})
			},
		},
		{
			name: "single outcome",
			mutate: func(rm *ResolvedMatch) {
				rm.Outcomes = []scoresheet.Outcome{{Player: aliceURL, PlayerOutcome: 1}}
			},
		},
		{
			name: "two winners",
			mutate: func(rm *ResolvedMatch) {
				rm.Outcomes = []scoresheet.Outcome{
					{Player: aliceURL, PlayerOutcome: 1},
					{Player: bobURL, PlayerOutcome: 1},
				}
			},
		},
		{
			name: "two losers",
			mutate: func(rm *ResolvedMatch) {
				rm.Outcomes = []scoresheet.Outcome{
					{Player: aliceURL, PlayerOutcome: 0},
					{Player: bobURL, PlayerOutcome: 0},
				}
			},
		},
		{
			name: "outcome for outside player",
			mutate: func(rm *ResolvedMatch) {
				rm.Outcomes = []scoresheet.Outcome{
					{Player: aliceURL, PlayerOutcome: 1},
					{Player: carolURL, PlayerOutcome: 0},
				}
			},
		},
		{
			name: "score for outside player",
			mutate: func(rm *ResolvedMatch) {
				rm.Scores = append(rm.Scores, scoresheet.Score{Player: carolURL, PlayerScore: 12})
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rm := testResolvedMatch()
			c.mutate(rm)

			_, err := BuildScoreboard(rm)
			if err == nil {
				t.Fatal("expected an integrity error, got none")
			}
			if !xerrors.Is(err, ErrIntegrity) {
				t.Errorf("expected ErrIntegrity, got %v", err)
			}
		})
	}
}
