package players

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

type PlayersService struct {
	client *scoresheet.Client
}

func NewPlayersService(client *scoresheet.Client) *PlayersService {
	return &PlayersService{
		client: client,
	}
}

// PlayerStats is one player's lifetime record across completed matches and
// all recorded games.
type PlayerStats struct {
	Player          scoresheet.Player
	MatchesWon      int
	MatchesComplete int
	GamesWon        int
	GamesPlayed     int
}

// ListPlayers fetches every player together with their match and game
// records. The per-player record fetches fan out and all must succeed
// before anything renders.
func (s *PlayersService) ListPlayers(ctx context.Context, creds scoresheet.Credentials) ([]PlayerStats, error) {
	var list scoresheet.PlayerList
	if err := s.client.GetJSON(ctx, creds, s.client.PlayerListEndpoint(), &list); err != nil {
		return nil, err
	}

	stats := make([]PlayerStats, len(list.Results))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, player := range list.Results {
		i, player := i, player
		group.Go(func() error {
			playerStats, err := s.statsFor(groupCtx, creds, player)
			if err != nil {
				return err
			}
			stats[i] = playerStats
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, xerrors.Errorf("list players: %w", err)
	}
	return stats, nil
}

// statsFor counts match wins from the player's outcomes and game wins from
// their games. Outcomes only exist for completed matches, so their count is
// the completed-match count.
func (s *PlayersService) statsFor(ctx context.Context, creds scoresheet.Credentials, player scoresheet.Player) (PlayerStats, error) {
	stats := PlayerStats{Player: player}

	var outcomes scoresheet.OutcomeList
	if err := s.client.GetJSON(ctx, creds, s.client.PlayerOutcomesEndpoint(player.Username), &outcomes); err != nil {
		return stats, err
	}
	stats.MatchesComplete = len(outcomes.Results)
	for _, outcome := range outcomes.Results {
		if outcome.PlayerOutcome == 1 {
			stats.MatchesWon++
		}
	}

	var games scoresheet.GameList
	if err := s.client.GetJSON(ctx, creds, s.client.PlayerGamesEndpoint(player.Username), &games); err != nil {
		return stats, err
	}
	stats.GamesPlayed = len(games.Results)
	for _, game := range games.Results {
		if scoresheet.ValueFromURL(game.Winner, "players") == player.Username {
			stats.GamesWon++
		}
	}
	return stats, nil
}

// GetPlayer fetches one player's profile.
func (s *PlayersService) GetPlayer(ctx context.Context, creds scoresheet.Credentials, username string) (*scoresheet.Player, error) {
	var player scoresheet.Player
	if err := s.client.GetJSON(ctx, creds, s.client.PlayerDetailEndpoint(username), &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// UpdatePlayer submits the edit-profile form as a PATCH.
func (s *PlayersService) UpdatePlayer(ctx context.Context, creds scoresheet.Credentials, username string, update scoresheet.UpdatePlayerRequest) error {
	return s.client.Mutate(ctx, creds, http.MethodPatch, s.client.PlayerDetailEndpoint(username), update)
}
