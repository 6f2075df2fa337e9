package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pickem-pool-go/database"
	"pickem-pool-go/models"
	"pickem-pool-go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerFixture(t *testing.T) (*PickHandler, *StandingsHandler, *database.MemoryGameCatalog, *database.MemoryPickStore) {
	t.Helper()

	catalog := database.NewMemoryGameCatalog()
	catalog.PutGame(models.Game{ID: "1-1", Week: 1, Away: "DET", Home: "KC"})
	catalog.PutGame(models.Game{ID: "1-2", Week: 1, Away: "BUF", Home: "NYJ"})
	catalog.PutGame(models.Game{ID: "1-3", Week: 1, Away: "DAL", Home: "PHI"})
	catalog.PutGame(models.Game{ID: "1-4", Week: 1, Away: "SF", Home: "SEA"})

	store := database.NewMemoryPickStore()
	submissions := services.NewSubmissionService(store, catalog)
	scoring := services.NewScoringService(store, catalog)
	standings := services.NewStandingsService(scoring)

	return NewPickHandler(submissions), NewStandingsHandler(standings), catalog, store
}

func postPicks(t *testing.T, handler *PickHandler, body string) (*httptest.ResponseRecorder, SubmitResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/picks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SubmitPicks(rec, req)

	var resp SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestSubmitPicksEndpointSuccess(t *testing.T) {
	pickHandler, _, _, store := newHandlerFixture(t)

	rec, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-1-KC,1-2-BUF"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "accepted 2 picks")

	stored, err := store.ListSubmissions(context.Background(), "alice", 1)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitPicksEndpointRejections(t *testing.T) {
	cases := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{"malformed body", `{not json`, "invalid request body"},
		{"missing username", `{"week":1,"picks":"1-1-KC"}`, "username is required"},
		{"missing week", `{"username":"alice","picks":"1-1-KC"}`, "week must be between"},
		{"empty picks", `{"username":"alice","week":1,"picks":""}`, "picks string is empty"},
		{"unknown game", `{"username":"alice","week":1,"picks":"1-9-KC"}`, "unknown game"},
		{"malformed pick", `{"username":"alice","week":1,"picks":"KC"}`, "malformed pick"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pickHandler, _, _, _ := newHandlerFixture(t)

			rec, resp := postPicks(t, pickHandler, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Message, tc.wantMessage)
		})
	}
}

func TestSubmitPicksEndpointWeeklyLimit(t *testing.T) {
	pickHandler, _, _, _ := newHandlerFixture(t)

	_, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-1-KC,1-2-BUF"}`)
	require.True(t, resp.Success)

	rec, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-3-PHI,1-4-SF"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "weekly pick limit exceeded")
}

func TestSubmitPicksEndpointDuplicate(t *testing.T) {
	pickHandler, _, _, _ := newHandlerFixture(t)

	_, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-1-KC"}`)
	require.True(t, resp.Success)

	rec, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-1-DET"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "already picked")
}

func TestGetUserPicksEndpoint(t *testing.T) {
	pickHandler, _, _, _ := newHandlerFixture(t)

	_, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-1-KC"}`)
	require.True(t, resp.Success)

	req := httptest.NewRequest(http.MethodGet, "/api/picks?username=alice&week=1", nil)
	rec := httptest.NewRecorder()
	pickHandler.GetUserPicks(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var listResp SubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
	assert.True(t, listResp.Success)
	assert.Contains(t, listResp.Message, "1 submissions")
}

func TestGetUserPicksEndpointRequiresUsername(t *testing.T) {
	pickHandler, _, _, _ := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/picks", nil)
	rec := httptest.NewRecorder()
	pickHandler.GetUserPicks(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStandingsEndpointRanksUsers(t *testing.T) {
	pickHandler, standingsHandler, catalog, _ := newHandlerFixture(t)

	_, resp := postPicks(t, pickHandler, `{"username":"alice","week":1,"picks":"1-1-KC,1-2-BUF,1-3-PHI"}`)
	require.True(t, resp.Success)
	_, resp = postPicks(t, pickHandler, `{"username":"bob","week":1,"picks":"1-1-DET"}`)
	require.True(t, resp.Success)

	catalog.SetWinner("1-1", "KC")
	catalog.SetWinner("1-2", "BUF")
	catalog.SetWinner("1-3", "PHI")

	req := httptest.NewRequest(http.MethodGet, "/api/standings", nil)
	rec := httptest.NewRecorder()
	standingsHandler.GetStandings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var standingsResp struct {
		Success bool                  `json:"success"`
		Data    []models.StandingsRow `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&standingsResp))
	require.True(t, standingsResp.Success)
	require.Len(t, standingsResp.Data, 2)

	// alice swept the week with a full slate: 3 wins + parlay bonus
	assert.Equal(t, models.StandingsRow{Username: "alice", TotalPoints: 4, Wins: 3, Parlays: 1}, standingsResp.Data[0])
	assert.Equal(t, models.StandingsRow{Username: "bob", Losses: 1}, standingsResp.Data[1])
}
