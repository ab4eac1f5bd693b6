package matches

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

type MatchesService struct {
	client *scoresheet.Client
}

func NewMatchesService(client *scoresheet.Client) *MatchesService {
	return &MatchesService{
		client: client,
	}
}

// ResolvedMatch is the fully dereferenced graph needed to render one match.
// Snapshots are page-scoped: every render resolves afresh, nothing is cached
// across requests.
type ResolvedMatch struct {
	Match    scoresheet.Match
	Players  []scoresheet.Player
	Games    []scoresheet.Game
	Scores   []scoresheet.Score
	Outcomes []scoresheet.Outcome
}

// PlayerByUsername returns the resolved player with the given username.
func (rm *ResolvedMatch) PlayerByUsername(username string) (scoresheet.Player, bool) {
	for _, player := range rm.Players {
		if player.Username == username {
			return player, true
		}
	}
	return scoresheet.Player{}, false
}

// OpponentOf returns the other match player.
func (rm *ResolvedMatch) OpponentOf(playerURL string) (scoresheet.Player, bool) {
	for _, player := range rm.Players {
		if player.URL != playerURL {
			return player, true
		}
	}
	return scoresheet.Player{}, false
}

// ResolveMatch fetches the match and its player, game, score and outcome
// lists concurrently. All five fetches must succeed before anything is
// aggregated: a partial scoreboard could misrepresent who is winning, so a
// missing sub-resource fails the whole resolution.
func (s *MatchesService) ResolveMatch(ctx context.Context, creds scoresheet.Credentials, matchPK string) (*ResolvedMatch, error) {
	var (
		match    scoresheet.Match
		players  scoresheet.PlayerList
		games    scoresheet.GameList
		scores   scoresheet.ScoreList
		outcomes scoresheet.OutcomeList
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return s.client.GetJSON(groupCtx, creds, s.client.MatchDetailEndpoint(matchPK), &match)
	})
	group.Go(func() error {
		return s.client.GetJSON(groupCtx, creds, s.client.MatchPlayersEndpoint(matchPK), &players)
	})
	group.Go(func() error {
		return s.client.GetJSON(groupCtx, creds, s.client.MatchGamesEndpoint(matchPK), &games)
	})
	group.Go(func() error {
		return s.client.GetJSON(groupCtx, creds, s.client.MatchScoresEndpoint(matchPK), &scores)
	})
	group.Go(func() error {
		return s.client.GetJSON(groupCtx, creds, s.client.MatchOutcomesEndpoint(matchPK), &outcomes)
	})
	if err := group.Wait(); err != nil {
		return nil, xerrors.Errorf("resolve match %s: %w", matchPK, err)
	}

	rm := &ResolvedMatch{
		Match:    match,
		Players:  players.Results,
		Games:    games.Results,
		Scores:   scores.Results,
		Outcomes: outcomes.Results,
	}
	if len(rm.Players) != 2 {
		return nil, xerrors.Errorf("match %s has %d players: %w", matchPK, len(rm.Players), ErrIntegrity)
	}
	return rm, nil
}

// LoggedInPlayer fetches the identity behind the current backend session.
func (s *MatchesService) LoggedInPlayer(ctx context.Context, creds scoresheet.Credentials) (*scoresheet.Player, error) {
	var player scoresheet.Player
	if err := s.client.GetJSON(ctx, creds, s.client.LoggedInPlayerEndpoint(), &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// ListOpponents returns every player except self, for the new-match form.
func (s *MatchesService) ListOpponents(ctx context.Context, creds scoresheet.Credentials, self *scoresheet.Player) ([]scoresheet.Player, error) {
	var list scoresheet.PlayerList
	if err := s.client.GetJSON(ctx, creds, s.client.PlayerListEndpoint(), &list); err != nil {
		return nil, err
	}

	var opponents []scoresheet.Player
	for _, player := range list.Results {
		if player.URL != self.URL {
			opponents = append(opponents, player)
		}
	}
	return opponents, nil
}

// CreateMatch posts a new match between the two players and returns the new
// match's primary key for the redirect.
func (s *MatchesService) CreateMatch(ctx context.Context, creds scoresheet.Credentials, playerURLs []string, targetScore int) (string, error) {
	var created scoresheet.Match
	err := s.client.MutateInto(ctx, creds, http.MethodPost, s.client.MatchCreateEndpoint(), scoresheet.CreateMatchRequest{
		Players:     playerURLs,
		TargetScore: targetScore,
	}, &created)
	if err != nil {
		return "", err
	}
	return scoresheet.ValueFromURL(created.URL, "matches"), nil
}

func (s *MatchesService) DeleteMatch(ctx context.Context, creds scoresheet.Credentials, matchPK string) error {
	return s.client.Mutate(ctx, creds, http.MethodDelete, s.client.MatchDetailEndpoint(matchPK), nil)
}

// CreateGame records one game. The backend recomputes scores and outcomes,
// so the caller re-resolves the whole graph afterwards instead of patching
// state incrementally.
func (s *MatchesService) CreateGame(ctx context.Context, creds scoresheet.Credentials, matchPK string, game scoresheet.GameRequest) error {
	return s.client.Mutate(ctx, creds, http.MethodPost, s.client.GameCreateEndpoint(matchPK), game)
}

func (s *MatchesService) GetGame(ctx context.Context, creds scoresheet.Credentials, matchPK, gamePK string) (*scoresheet.Game, error) {
	var game scoresheet.Game
	if err := s.client.GetJSON(ctx, creds, s.client.GameDetailEndpoint(matchPK, gamePK), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *MatchesService) UpdateGame(ctx context.Context, creds scoresheet.Credentials, matchPK, gamePK string, game scoresheet.GameRequest) error {
	return s.client.Mutate(ctx, creds, http.MethodPatch, s.client.GameDetailEndpoint(matchPK, gamePK), game)
}

func (s *MatchesService) DeleteGame(ctx context.Context, creds scoresheet.Credentials, matchPK, gamePK string) error {
	return s.client.Mutate(ctx, creds, http.MethodDelete, s.client.GameDetailEndpoint(matchPK, gamePK), nil)
}

// MatchSummary is one row of the logged-in player's matches page.
type MatchSummary struct {
	Match         scoresheet.Match
	PK            string
	Opponent      string
	OwnScore      int
	OpponentScore int

	// Outcome is 1 or 0 for the logged-in player once the match is
	// complete, -1 before that.
	Outcome int
}

// SummarizeMatches resolves every match of the logged-in player into row
// summaries, split into in-progress and completed. Row order within each
// table is the backend's list order.
func (s *MatchesService) SummarizeMatches(ctx context.Context, creds scoresheet.Credentials, self *scoresheet.Player) (current, past []MatchSummary, err error) {
	var list scoresheet.MatchList
	if err := s.client.GetJSON(ctx, creds, s.client.PlayerMatchesEndpoint(self.Username), &list); err != nil {
		return nil, nil, err
	}

	summaries := make([]MatchSummary, len(list.Results))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, match := range list.Results {
		i, match := i, match
		group.Go(func() error {
			summary, err := s.summarize(groupCtx, creds, match, self)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, xerrors.Errorf("summarize matches for %s: %w", self.Username, err)
	}

	for _, summary := range summaries {
		if summary.Match.Complete {
			past = append(past, summary)
		} else {
			current = append(current, summary)
		}
	}
	return current, past, nil
}

// summarize dereferences one match's scores, opponent and, when complete,
// the logged-in player's outcome.
func (s *MatchesService) summarize(ctx context.Context, creds scoresheet.Credentials, match scoresheet.Match, self *scoresheet.Player) (MatchSummary, error) {
	summary := MatchSummary{
		Match:   match,
		PK:      scoresheet.ValueFromURL(match.URL, "matches"),
		Outcome: -1,
	}

	for _, scoreURL := range match.ScoreSet {
		var score scoresheet.Score
		if err := s.client.GetJSON(ctx, creds, scoreURL, &score); err != nil {
			return summary, err
		}
		if score.Player == self.URL {
			summary.OwnScore = score.PlayerScore
		} else {
			summary.OpponentScore = score.PlayerScore
		}
	}

	for _, playerURL := range match.Players {
		if playerURL == self.URL {
			continue
		}
		var opponent scoresheet.Player
		if err := s.client.GetJSON(ctx, creds, playerURL, &opponent); err != nil {
			return summary, err
		}
		summary.Opponent = opponent.Username
	}

	if match.Complete {
		for _, outcomeURL := range match.OutcomeSet {
			var outcome scoresheet.Outcome
			if err := s.client.GetJSON(ctx, creds, outcomeURL, &outcome); err != nil {
				return summary, err
			}
			if outcome.Player == self.URL {
				summary.Outcome = outcome.PlayerOutcome
			}
		}
	}
	return summary, nil
}
