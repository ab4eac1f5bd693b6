package format

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Date renders a timestamp as M/D/YY without zero padding, e.g. "3/7/24".
func Date(t time.Time) string {
	return t.Format("1/2/06")
}

// DateRange renders "M/D/YY-M/D/YY" for a completed match.
func DateRange(start, end time.Time) string {
	return fmt.Sprintf("%s-%s", Date(start), Date(end))
}

// DayDate renders the long date used on profile cards, e.g. "Thu Mar 7 2024".
func DayDate(t time.Time) string {
	return t.Format("Mon Jan 2 2006")
}

// WinLoss renders "(N Win, M Losses)" style tallies. Exactly 1 selects the
// singular word; 0 and everything above 1 stay plural.
func WinLoss(wins, losses int) string {
	winWord := "Wins"
	if wins == 1 {
		winWord = "Win"
	}
	lossWord := "Losses"
	if losses == 1 {
		lossWord = "Loss"
	}
	return fmt.Sprintf("(%d %s, %d %s)", wins, winWord, losses, lossWord)
}

// Percent renders won/played as "NN%" rounded to the nearest integer.
// A percentage of zero attempts is undefined and renders as "--", not "0%".
func Percent(won, played int) string {
	if played == 0 {
		return "--"
	}
	pct := math.Round(100 * float64(won) / float64(played))
	return fmt.Sprintf("%d%%", int(pct))
}

// Outcome maps a player outcome value to its letter: 1 is "W", anything
// else is "L".
func Outcome(playerOutcome int) string {
	if playerOutcome == 1 {
		return "W"
	}
	return "L"
}

// OrDashes substitutes "--" for values with no word characters, so blank
// profile fields never render as empty cells.
func OrDashes(value string) string {
	if !wordPattern.MatchString(value) {
		return "--"
	}
	return value
}
