package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "3/7/24", Date(ts))

	ts = time.Date(2023, time.November, 21, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "11/21/23", Date(ts))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 2, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "3/7/24-4/2/24", DateRange(start, end))
}

func TestWinLoss(t *testing.T) {
	cases := []struct {
		wins   int
		losses int
		want   string
	}{
		{1, 0, "(1 Win, 0 Losses)"},
		{0, 1, "(0 Wins, 1 Loss)"},
		{2, 2, "(2 Wins, 2 Losses)"},
		{0, 0, "(0 Wins, 0 Losses)"},
		{1, 1, "(1 Win, 1 Loss)"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, WinLoss(c.wins, c.losses))
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		won    int
		played int
		want   string
	}{
		{0, 0, "--"},
		{1, 2, "50%"},
		{1, 3, "33%"},
		{2, 3, "67%"},
		{3, 3, "100%"},
		{0, 5, "0%"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Percent(c.won, c.played))
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "W", Outcome(1))
	assert.Equal(t, "L", Outcome(0))
}

func TestOrDashes(t *testing.T) {
	assert.Equal(t, "--", OrDashes(""))
	assert.Equal(t, "--", OrDashes("   "))
	assert.Equal(t, "alice", OrDashes("alice"))
	assert.Equal(t, "Alice Smith", OrDashes("Alice Smith"))
}
