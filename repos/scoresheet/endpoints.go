package scoresheet

import "fmt"

// Endpoint builders for the backend API. Every cross-reference the API
// returns is already a full URL, so these are only needed for entry points.

func (c *Client) PlayerListEndpoint() string {
	return fmt.Sprintf("%s/api/players/", c.baseURL)
}

func (c *Client) PlayerDetailEndpoint(username string) string {
	return fmt.Sprintf("%s/api/players/%s/", c.baseURL, username)
}

func (c *Client) PlayerMatchesEndpoint(username string) string {
	return fmt.Sprintf("%s/api/players/%s/matches/", c.baseURL, username)
}

func (c *Client) PlayerGamesEndpoint(username string) string {
	return fmt.Sprintf("%s/api/players/%s/games/", c.baseURL, username)
}

func (c *Client) PlayerOutcomesEndpoint(username string) string {
	return fmt.Sprintf("%s/api/players/%s/outcomes/", c.baseURL, username)
}

func (c *Client) MatchCreateEndpoint() string {
	return fmt.Sprintf("%s/api/matches/create/", c.baseURL)
}

func (c *Client) MatchDetailEndpoint(matchPK string) string {
	return fmt.Sprintf("%s/api/matches/%s/", c.baseURL, matchPK)
}

func (c *Client) MatchPlayersEndpoint(matchPK string) string {
	return fmt.Sprintf("%s/api/matches/%s/players/", c.baseURL, matchPK)
}

func (c *Client) MatchGamesEndpoint(matchPK string) string {
	return fmt.Sprintf("%s/api/matches/%s/games/", c.baseURL, matchPK)
}

func (c *Client) MatchScoresEndpoint(matchPK string) string {
	return fmt.Sprintf("%s/api/matches/%s/scores/", c.baseURL, matchPK)
}

func (c *Client) MatchOutcomesEndpoint(matchPK string) string {
	return fmt.Sprintf("%s/api/matches/%s/outcomes/", c.baseURL, matchPK)
}

func (c *Client) GameCreateEndpoint(matchPK string) string {
	return fmt.Sprintf("%s/api/matches/%s/games/create/", c.baseURL, matchPK)
}

func (c *Client) GameDetailEndpoint(matchPK, gamePK string) string {
	return fmt.Sprintf("%s/api/matches/%s/games/%s/", c.baseURL, matchPK, gamePK)
}

func (c *Client) LoggedInPlayerEndpoint() string {
	return fmt.Sprintf("%s/api/logged-in-player/", c.baseURL)
}

func (c *Client) LoginEndpoint() string {
	return fmt.Sprintf("%s/api/login/", c.baseURL)
}
