package players

import (
	"strings"

	"github.com/ginrummy/scoresheet-web/pkg/format"
	scoresheet "github.com/ginrummy/scoresheet-web/repos/scoresheet"
)

type PlayerRow struct {
	Username    string
	MatchWinPct string
	GameWinPct  string
}

type PlayerListView struct {
	Rows []PlayerRow
}

// NewPlayerListView formats lifetime records into the all-players table.
// A player with no completed matches or no games shows "--", never "0%":
// a percentage of zero attempts is undefined, not zero.
func NewPlayerListView(stats []PlayerStats) PlayerListView {
	view := PlayerListView{}
	for _, playerStats := range stats {
		view.Rows = append(view.Rows, PlayerRow{
			Username:    playerStats.Player.Username,
			MatchWinPct: format.Percent(playerStats.MatchesWon, playerStats.MatchesComplete),
			GameWinPct:  format.Percent(playerStats.GamesWon, playerStats.GamesPlayed),
		})
	}
	return view
}

// ProfileView backs the profile card. Blank fields render as "--".
type ProfileView struct {
	Username   string
	FullName   string
	Email      string
	DateJoined string
	LastLogin  string
}

func NewProfileView(player *scoresheet.Player) ProfileView {
	fullName := strings.TrimSpace(player.FirstName + " " + player.LastName)

	lastLogin := ""
	if player.LastLogin != nil {
		lastLogin = format.DayDate(*player.LastLogin)
	}

	return ProfileView{
		Username:   player.Username,
		FullName:   format.OrDashes(fullName),
		Email:      format.OrDashes(player.Email),
		DateJoined: format.DayDate(player.DateJoined),
		LastLogin:  format.OrDashes(lastLogin),
	}
}

// ProfileEditView prefills the edit-profile form.
type ProfileEditView struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

func NewProfileEditView(player *scoresheet.Player) ProfileEditView {
	return ProfileEditView{
		Username:  player.Username,
		FirstName: player.FirstName,
		LastName:  player.LastName,
		Email:     player.Email,
	}
}
