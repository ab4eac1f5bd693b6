package auth

import (
	"context"
	"net/http"

	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

type AuthService struct {
	client *scoresheet.Client
}

func NewAuthService(client *scoresheet.Client) *AuthService {
	return &AuthService{
		client: client,
	}
}

// Login forwards the submitted credentials to the backend and returns the
// session cookies it sets on success. A 4xx surfaces as a StatusError for
// the handler to map to the invalid-credentials warning.
func (s *AuthService) Login(ctx context.Context, username, password string) ([]*http.Cookie, error) {
	return s.client.Login(ctx, username, password)
}

// LoggedInPlayer fetches the identity behind the current backend session.
func (s *AuthService) LoggedInPlayer(ctx context.Context, creds scoresheet.Credentials) (*scoresheet.Player, error) {
	var player scoresheet.Player
	if err := s.client.GetJSON(ctx, creds, s.client.LoggedInPlayerEndpoint(), &player); err != nil {
		return nil, err
	}
	return &player, nil
}
