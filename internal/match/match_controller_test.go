package match

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, f *fixture) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	MatchRoutes(r.Group("/api"), f.db, 2)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func (f *fixture) body(teams ...string) gin.H {
	entries := make([]gin.H, 0, len(teams))
	for i, name := range teams {
		role := "home"
		if i > 0 {
			role = "away"
		}
		entries = append(entries, gin.H{"team_id": f.teams[name].ID, "role": role})
	}
	return gin.H{
		"discipline_id": f.football.ID,
		"starts_at":     f.start.Format(time.RFC3339),
		"ends_at":       f.start.Add(2 * time.Hour).Format(time.RFC3339),
		"venue_id":      f.venue.ID,
		"teams":         entries,
	}
}

func TestCreateMatchEndpoint(t *testing.T) {
	f := newFixture(t)
	r := newRouter(t, f)

	w, out := doJSON(t, r, http.MethodPost, "/api/matches", f.body("Lions", "Tigers"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := out["data"].(map[string]interface{})
	assert.Equal(t, "Football", data["discipline"].(map[string]interface{})["name"])
	assert.Equal(t, float64(120), data["duration_minutes"])
	assert.Nil(t, data["referee"])
	assert.Len(t, data["teams"], 2)
	assert.Equal(t, fmt.Sprintf("Match %v - Football", data["id"]), data["title"])
}

func TestCreateMatchEndpointRejectsComposition(t *testing.T) {
	f := newFixture(t)
	r := newRouter(t, f)

	w, out := doJSON(t, r, http.MethodPost, "/api/matches", f.body("Lions", "Cubs"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "invalid", out["status"])
	assert.Equal(t, []interface{}{`team "Cubs" has too few participants: 1 < 3`}, out["reasons"])
}

func TestCreateMatchEndpointBadInput(t *testing.T) {
	f := newFixture(t)
	r := newRouter(t, f)

	body := f.body("Lions", "Tigers")
	body["ends_at"] = body["starts_at"]
	w, out := doJSON(t, r, http.MethodPost, "/api/matches", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, out["errors"], "ends_at")

	body = f.body("Lions", "Tigers")
	body["venue_id"] = 999
	w, out = doJSON(t, r, http.MethodPost, "/api/matches", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Venue not found", out["message"])

	body = f.body("Lions", "Tigers")
	body["teams"] = []gin.H{{"team_id": f.teams["Lions"].ID, "role": "referee"}}
	w, _ = doJSON(t, r, http.MethodPost, "/api/matches", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	f := newFixture(t)
	r := newRouter(t, f)

	w, out := doJSON(t, r, http.MethodPost, "/api/matches/validate", gin.H{
		"discipline_id": f.football.ID,
		"teams":         []gin.H{{"team_id": f.teams["Lions"].ID, "role": "home"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, []interface{}{`discipline "Football" requires between 2 and 2 teams, has 1`}, data["reasons"])

	w, out = doJSON(t, r, http.MethodPost, "/api/matches/validate", f.body("Lions", "Tigers"))
	require.Equal(t, http.StatusOK, w.Code)
	data = out["data"].(map[string]interface{})
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, []interface{}{}, data["reasons"])
}

func TestMatchTeamEndpoints(t *testing.T) {
	f := newFixture(t)
	r := newRouter(t, f)

	w, out := doJSON(t, r, http.MethodPost, "/api/matches", f.body("Lions", "Tigers"))
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(out["data"].(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/matches/%d/teams", id),
		gin.H{"team_id": f.teams["Lions"].ID, "role": "away"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, out = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/matches/%d/teams/%d", id, f.teams["Lions"].ID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Len(t, out["reasons"], 1)

	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/matches/%d/teams/%d", id, f.teams["Tigers"].ID), gin.H{"role": "home"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/matches/%d/teams/%d", id, f.teams["Cubs"].ID), gin.H{"role": "home"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/matches/%d/validation", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["data"].(map[string]interface{})["valid"])
}

func TestListAndAuditEndpoints(t *testing.T) {
	f := newFixture(t)
	r := newRouter(t, f)

	w, _ := doJSON(t, r, http.MethodPost, "/api/matches", f.body("Lions", "Tigers"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, out := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/matches?team_id=%d", f.teams["Lions"].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"], 1)

	w, out = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/matches?team_id=%d", f.teams["Cubs"].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["data"], 0)

	w, _ = doJSON(t, r, http.MethodGet, "/api/matches?venue_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, f.db.Model(f.football).Update("min_participants_per_team", 5).Error)
	w, out = doJSON(t, r, http.MethodGet, "/api/admin/matches/audit?invalid_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	audit := out["data"].(map[string]interface{})
	assert.Equal(t, float64(1), audit["checked"])
	assert.Equal(t, float64(1), audit["invalid"])
	assert.Len(t, audit["matches"], 1)

	w, _ = doJSON(t, r, http.MethodGet, "/api/matches/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
