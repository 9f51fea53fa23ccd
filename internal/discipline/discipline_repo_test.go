package discipline

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/matchday/internal/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (DisciplineRepository, func(query string, args ...interface{})) {
	t.Helper()
	db := dbtest.Open(t, &Discipline{})
	dbtest.StubMatchTables(t, db)
	exec := func(query string, args ...interface{}) {
		require.NoError(t, db.Exec(query, args...).Error)
	}
	return NewDisciplineRepository(db), exec
}

func football() *Discipline {
	return &Discipline{Name: "Football", MinTeams: 2, MaxTeams: 2, MinParticipantsPerTeam: 7, MaxParticipantsPerTeam: 11}
}

func TestCreateAndGetDiscipline(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	d := football()
	require.NoError(t, repo.CreateDiscipline(ctx, d))
	require.NotZero(t, d.ID)

	got, err := repo.GetDisciplineByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Football", got.Name)
	assert.Equal(t, 7, got.MinParticipantsPerTeam)

	_, err = repo.GetDisciplineByID(ctx, d.ID+1)
	assert.ErrorIs(t, err, ErrDisciplineNotFound)

	missing, err := repo.FindDisciplineByName(ctx, "Curling")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDisciplineNameIsUnique(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateDiscipline(ctx, football()))
	assert.ErrorIs(t, repo.CreateDiscipline(ctx, football()), ErrDisciplineNameConflict)

	other := &Discipline{Name: "Handball", MinTeams: 2, MaxTeams: 2, MinParticipantsPerTeam: 7, MaxParticipantsPerTeam: 14}
	require.NoError(t, repo.CreateDiscipline(ctx, other))
	other.Name = "Football"
	assert.ErrorIs(t, repo.UpdateDiscipline(ctx, other), ErrDisciplineNameConflict)
}

func TestDisciplineBoundsAreCheckedByStorage(t *testing.T) {
	repo, _ := newRepo(t)

	d := football()
	d.MaxTeams = 1
	assert.Error(t, repo.CreateDiscipline(context.Background(), d))
}

func TestListDisciplines(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	for _, name := range []string{"Volleyball", "Basketball", "Beach Volleyball"} {
		require.NoError(t, repo.CreateDiscipline(ctx, &Discipline{Name: name, MinTeams: 2, MaxTeams: 2, MinParticipantsPerTeam: 2, MaxParticipantsPerTeam: 12}))
	}

	all, total, err := repo.GetAllDisciplines(ctx, 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 2)
	assert.Equal(t, "Basketball", all[0].Name)

	found, total, err := repo.GetAllDisciplines(ctx, 1, 10, "volley")
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, found, 2)
}

func TestUpdateDiscipline(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	d := football()
	require.NoError(t, repo.CreateDiscipline(ctx, d))

	d.MinParticipantsPerTeam = 5
	require.NoError(t, repo.UpdateDiscipline(ctx, d))
	got, err := repo.GetDisciplineByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.MinParticipantsPerTeam)

	ghost := football()
	ghost.ID = 42
	ghost.Name = "Ghost"
	assert.ErrorIs(t, repo.UpdateDiscipline(ctx, ghost), ErrDisciplineNotFound)
}

func TestDeleteDisciplineTakesMatches(t *testing.T) {
	repo, exec := newRepo(t)
	ctx := context.Background()
	d := football()
	require.NoError(t, repo.CreateDiscipline(ctx, d))
	exec(`INSERT INTO matches (id, discipline_id) VALUES (1, ?), (2, ?)`, d.ID, d.ID+100)
	exec(`INSERT INTO match_teams (match_id, team_id) VALUES (1, 1), (2, 1)`)

	require.NoError(t, repo.DeleteDiscipline(ctx, d.ID))
	assert.ErrorIs(t, repo.DeleteDiscipline(ctx, d.ID), ErrDisciplineNotFound)

	db := dbtestRows(t, repo)
	assert.Equal(t, []int{2}, db("SELECT id FROM matches"))
	assert.Equal(t, []int{2}, db("SELECT match_id FROM match_teams"))
}

func dbtestRows(t *testing.T, repo DisciplineRepository) func(string) []int {
	t.Helper()
	db := repo.(*disciplineRepository).db
	return func(query string) []int {
		var out []int
		require.NoError(t, db.Raw(query).Scan(&out).Error)
		return out
	}
}

func TestCheckBounds(t *testing.T) {
	assert.NoError(t, football().CheckBounds())

	d := football()
	d.MinTeams = 3
	assert.ErrorIs(t, d.CheckBounds(), ErrInvalidBounds)

	d = football()
	d.MinParticipantsPerTeam = 0
	assert.ErrorIs(t, d.CheckBounds(), ErrInvalidBounds)

	d = football()
	d.MaxParticipantsPerTeam = 6
	assert.ErrorContains(t, d.CheckBounds(), "min_participants_per_team 7 exceeds max_participants_per_team 6")
}
