package venue

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/matchday/internal/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueRepository(t *testing.T) {
	db := dbtest.Open(t, &Venue{})
	dbtest.StubMatchTables(t, db)
	repo := NewVenueRepository(db)
	ctx := context.Background()

	hall := &Venue{Name: "Sports Hall", Covered: true}
	field := &Venue{Name: "North Field"}
	require.NoError(t, repo.CreateVenue(ctx, hall))
	require.NoError(t, repo.CreateVenue(ctx, field))

	venues, total, err := repo.GetAllVenues(ctx, 1, 10, map[string]interface{}{"covered": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Sports Hall", venues[0].Name)

	field.Covered = true
	require.NoError(t, repo.UpdateVenue(ctx, field))
	_, total, err = repo.GetAllVenues(ctx, 1, 10, map[string]interface{}{"covered": true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	require.NoError(t, db.Exec(`INSERT INTO matches (id, venue_id) VALUES (1, ?), (2, ?)`, hall.ID, field.ID).Error)
	require.NoError(t, db.Exec(`INSERT INTO match_teams (match_id, team_id) VALUES (1, 1), (2, 1)`).Error)
	require.NoError(t, repo.DeleteVenue(ctx, hall.ID))

	var matches, associations int64
	require.NoError(t, db.Table("matches").Count(&matches).Error)
	require.NoError(t, db.Table("match_teams").Count(&associations).Error)
	assert.Equal(t, int64(1), matches)
	assert.Equal(t, int64(1), associations)

	_, err = repo.GetVenueByID(ctx, hall.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
