package referee

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/matchday/internal/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefereeRepository(t *testing.T) {
	db := dbtest.Open(t, &Referee{})
	dbtest.StubMatchTables(t, db)
	repo := NewRefereeRepository(db)
	ctx := context.Background()

	ref := &Referee{Name: "Howard Webb"}
	ref.Phone = "600123456"
	require.NoError(t, repo.CreateReferee(ctx, ref))

	got, err := repo.GetRefereeByID(ctx, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, "600123456", got.Phone)

	got.Email = "webb@example.com"
	require.NoError(t, repo.UpdateReferee(ctx, got))

	list, total, err := repo.GetAllReferees(ctx, 1, 10, "webb")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "webb@example.com", list[0].Email)

	require.NoError(t, db.Exec(`INSERT INTO matches (id, referee_id) VALUES (1, ?)`, ref.ID).Error)
	require.NoError(t, repo.DeleteReferee(ctx, ref.ID))

	var cleared int64
	require.NoError(t, db.Table("matches").Where("referee_id IS NULL").Count(&cleared).Error)
	assert.Equal(t, int64(1), cleared)
	assert.ErrorIs(t, repo.DeleteReferee(ctx, ref.ID), ErrRefereeNotFound)
}
