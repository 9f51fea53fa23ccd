package match

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/matchday/internal/discipline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter serves participant counts from a map and records lookups.
type fakeCounter struct {
	counts map[uint]int64
	err    error
	calls  []uint
}

func (f *fakeCounter) CountByTeam(_ context.Context, teamID uint) (int64, error) {
	f.calls = append(f.calls, teamID)
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[teamID], nil
}

func bounds(name string, minTeams, maxTeams, minPart int) *discipline.Discipline {
	return &discipline.Discipline{
		Name:                   name,
		MinTeams:               minTeams,
		MaxTeams:               maxTeams,
		MinParticipantsPerTeam: minPart,
		MaxParticipantsPerTeam: minPart + 10,
	}
}

func proposal(ids ...uint) []ProposedTeam {
	names := map[uint]string{1: "Team1", 2: "Team2", 3: "Team3", 4: "Team4"}
	out := make([]ProposedTeam, 0, len(ids))
	for i, id := range ids {
		role := RoleHome
		if i%2 == 1 {
			role = RoleAway
		}
		out = append(out, ProposedTeam{TeamID: id, TeamName: names[id], Role: role})
	}
	return out
}

func TestValidateOneTeamShort(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 3, 2: 2}}
	v := NewCompositionValidator(counter)

	result, err := v.Validate(context.Background(), bounds("Football", 2, 2, 3), proposal(1, 2))
	require.NoError(t, err)
	assert.False(t, result.Valid())
	assert.Equal(t, []string{`team "Team2" has too few participants: 2 < 3`}, result.Reasons)
}

func TestValidateAllRulesMet(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 3, 2: 7}}
	v := NewCompositionValidator(counter)

	result, err := v.Validate(context.Background(), bounds("Football", 2, 2, 3), proposal(1, 2))
	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.NotNil(t, result.Reasons)
	assert.Empty(t, result.Reasons)
}

func TestValidateTooManyTeamsStillChecksRosters(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 3, 2: 3, 3: 1}}
	v := NewCompositionValidator(counter)

	result, err := v.Validate(context.Background(), bounds("Football", 2, 2, 3), proposal(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{
		`discipline "Football" requires between 2 and 2 teams, has 3`,
		`team "Team3" has too few participants: 1 < 3`,
	}, result.Reasons)
	assert.Equal(t, []uint{1, 2, 3}, counter.calls)
}

func TestValidateNoTeams(t *testing.T) {
	counter := &fakeCounter{}
	v := NewCompositionValidator(counter)

	result, err := v.Validate(context.Background(), bounds("Chess", 1, 1, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{`discipline "Chess" requires between 1 and 1 teams, has 0`}, result.Reasons)
	assert.Empty(t, counter.calls)
}

func TestValidateNoDiscipline(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{}}
	v := NewCompositionValidator(counter)

	result, err := v.Validate(context.Background(), nil, proposal(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"no discipline assigned"}, result.Reasons)
	assert.Empty(t, counter.calls)
}

func TestValidateTeamCountRange(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 5, 2: 5, 3: 5, 4: 5}}
	v := NewCompositionValidator(counter)
	d := bounds("Relay", 2, 3, 1)

	for n := 0; n <= 4; n++ {
		ids := []uint{1, 2, 3, 4}[:n]
		result, err := v.Validate(context.Background(), d, proposal(ids...))
		require.NoError(t, err)
		inRange := n >= 2 && n <= 3
		assert.Equal(t, inRange, result.Valid(), "teams=%d", n)
	}
}

func TestValidateIgnoresParticipantMaximum(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 100, 2: 2}}
	v := NewCompositionValidator(counter)
	d := bounds("Volleyball", 2, 2, 2)
	d.MaxParticipantsPerTeam = 6

	result, err := v.Validate(context.Background(), d, proposal(1, 2))
	require.NoError(t, err)
	assert.True(t, result.Valid())
}

func TestValidateIsRepeatable(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 1, 2: 0}}
	v := NewCompositionValidator(counter)
	d := bounds("Football", 2, 2, 3)
	in := proposal(1, 2)

	first, err := v.Validate(context.Background(), d, in)
	require.NoError(t, err)
	second, err := v.Validate(context.Background(), d, in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, proposal(1, 2), in)
	assert.Equal(t, 3, d.MinParticipantsPerTeam)
}

func TestValidateDuplicateTeam(t *testing.T) {
	counter := &fakeCounter{counts: map[uint]int64{1: 3, 2: 3}}
	v := NewCompositionValidator(counter)

	result, err := v.Validate(context.Background(), bounds("Football", 2, 2, 3), proposal(1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{`team "Team1" is listed more than once`}, result.Reasons)
	// each distinct team is counted once
	assert.Equal(t, []uint{1, 2}, counter.calls)
}

func TestValidateCounterFailure(t *testing.T) {
	boom := errors.New("connection refused")
	v := NewCompositionValidator(&fakeCounter{err: boom})

	result, err := v.Validate(context.Background(), bounds("Football", 2, 2, 3), proposal(1, 2))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
}
