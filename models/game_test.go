package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameWinnerHelpers(t *testing.T) {
	game := Game{ID: "1-1", Week: 1, Away: "DET", Home: "KC"}

	assert.False(t, game.HasWinner())
	assert.True(t, game.HasTeam("DET"))
	assert.True(t, game.HasTeam("KC"))
	assert.False(t, game.HasTeam("GB"))
	assert.Equal(t, "DET @ KC", game.Matchup())

	game.Winner = "KC"
	assert.True(t, game.HasWinner())
}

func TestGameID(t *testing.T) {
	assert.Equal(t, "1-1", GameID(1, 1))
	assert.Equal(t, "18-16", GameID(18, 16))
}

func TestWeekFromGameID(t *testing.T) {
	assert.Equal(t, 1, WeekFromGameID("1-4"))
	assert.Equal(t, 12, WeekFromGameID("12-1"))
	assert.Equal(t, 0, WeekFromGameID("nope"))
	assert.Equal(t, 0, WeekFromGameID("-3"))
	assert.Equal(t, 0, WeekFromGameID("x-3"))
}
