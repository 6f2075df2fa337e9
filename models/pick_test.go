package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePicksString(t *testing.T) {
	picks, err := ParsePicksString("1-1-KC,1-2-BUF,1-3-PHI")
	require.NoError(t, err)
	require.Len(t, picks, 3)
	assert.Equal(t, Pick{GameID: "1-1", Team: "KC"}, picks[0])
	assert.Equal(t, Pick{GameID: "1-2", Team: "BUF"}, picks[1])
	assert.Equal(t, Pick{GameID: "1-3", Team: "PHI"}, picks[2])
}

func TestParsePicksStringTrimsWhitespace(t *testing.T) {
	picks, err := ParsePicksString(" 1-1-KC , 1-2-BUF ")
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "1-1", picks[0].GameID)
	assert.Equal(t, "BUF", picks[1].Team)
}

func TestParsePicksStringSinglePick(t *testing.T) {
	picks, err := ParsePicksString("12-4-SEA")
	require.NoError(t, err)
	require.Len(t, picks, 1)
	assert.Equal(t, Pick{GameID: "12-4", Team: "SEA"}, picks[0])
}

func TestParsePicksStringErrors(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing team", "1-1"},
		{"missing team after hyphen", "1-1-"},
		{"trailing comma", "1-1-KC,"},
		{"no separators", "garbage"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePicksString(tc.encoded)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestEncodePicksStringRoundTrip(t *testing.T) {
	original := "1-1-KC,1-2-BUF"
	picks, err := ParsePicksString(original)
	require.NoError(t, err)
	assert.Equal(t, original, EncodePicksString(picks))
}

func TestSubmissionGameIDs(t *testing.T) {
	submission := PickSubmission{
		Picks: []Pick{{GameID: "1-1", Team: "KC"}, {GameID: "1-2", Team: "BUF"}},
	}
	assert.Equal(t, []string{"1-1", "1-2"}, submission.GameIDs())
}
