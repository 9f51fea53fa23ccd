package team

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/matchday/internal/dbtest"
	"github.com/DhavalSuthar-24/matchday/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (TeamRepository, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t, &Team{})
	dbtest.StubMatchTables(t, db)
	return NewTeamRepository(db), db
}

func TestTeamCRUD(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()

	team := &Team{Name: "Lions", Olympic: true}
	require.NoError(t, repo.CreateTeam(ctx, team))

	got, err := repo.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, got.Olympic)
	assert.Equal(t, "Lions", got.String())

	got.Name = "Lionesses"
	got.Olympic = false
	require.NoError(t, repo.UpdateTeam(ctx, got))

	got, err = repo.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lionesses", got.Name)
	assert.False(t, got.Olympic)

	_, err = repo.GetTeamByID(ctx, 404)
	assert.ErrorIs(t, err, ErrTeamNotFound)
	assert.ErrorIs(t, repo.UpdateTeam(ctx, &Team{Model: models.Model{ID: 404}, Name: "Nobody"}), ErrTeamNotFound)
}

func TestGetTeamsByIDs(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	a, b := &Team{Name: "A"}, &Team{Name: "B"}
	require.NoError(t, repo.CreateTeam(ctx, a))
	require.NoError(t, repo.CreateTeam(ctx, b))

	found, err := repo.GetTeamsByIDs(ctx, []uint{a.ID, b.ID, 999, a.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "B", found[b.ID].Name)

	empty, err := repo.GetTeamsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListTeamsFilters(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	for _, tm := range []*Team{{Name: "Sharks", Olympic: true}, {Name: "Shrimps"}, {Name: "Whales", Olympic: true}} {
		require.NoError(t, repo.CreateTeam(ctx, tm))
	}

	olympic := true
	teams, total, err := repo.GetAllTeams(ctx, 1, 10, TeamFilter{Olympic: &olympic})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "Sharks", teams[0].Name)

	teams, total, err = repo.GetAllTeams(ctx, 1, 10, TeamFilter{Name: "sh"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, teams, 2)
}

func TestDeleteTeamDetachesMembers(t *testing.T) {
	repo, db := setup(t)
	ctx := context.Background()
	team := &Team{Name: "Lions"}
	require.NoError(t, repo.CreateTeam(ctx, team))
	require.NoError(t, db.Exec(`INSERT INTO participants (id, team_id) VALUES (1, ?), (2, ?)`, team.ID, team.ID).Error)
	require.NoError(t, db.Exec(`INSERT INTO match_teams (match_id, team_id) VALUES (1, ?)`, team.ID).Error)

	require.NoError(t, repo.DeleteTeam(ctx, team.ID))

	var attached, associations int64
	require.NoError(t, db.Table("participants").Where("team_id IS NOT NULL").Count(&attached).Error)
	require.NoError(t, db.Table("match_teams").Count(&associations).Error)
	assert.Zero(t, attached)
	assert.Zero(t, associations)

	assert.ErrorIs(t, repo.DeleteTeam(ctx, team.ID), ErrTeamNotFound)
}
