package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/matchday/config"
	"github.com/DhavalSuthar-24/matchday/internal/dbtest"
	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/DhavalSuthar-24/matchday/internal/match"
	"github.com/DhavalSuthar-24/matchday/internal/participant"
	"github.com/DhavalSuthar-24/matchday/internal/referee"
	"github.com/DhavalSuthar-24/matchday/internal/team"
	"github.com/DhavalSuthar-24/matchday/internal/user"
	"github.com/DhavalSuthar-24/matchday/internal/venue"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t,
		&user.Role{}, &user.User{}, &user.RefreshToken{},
		&discipline.Discipline{}, &team.Team{}, &participant.Participant{},
		&venue.Venue{}, &referee.Referee{},
		&match.Match{}, &match.MatchTeam{},
	)
	cfg := &config.Config{}
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.JWT.AccessTokenSecret = "access-secret"
	cfg.Audit.Workers = 2
	return SetupRoutes(db, cfg)
}

func TestHealth(t *testing.T) {
	r := newEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"up"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestReadsArePublicAndWritesGuarded(t *testing.T) {
	r := newEngine(t)

	for _, path := range []string{"/api/disciplines", "/api/teams", "/api/participants", "/api/venues", "/api/referees", "/api/matches"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/matches/audit", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
