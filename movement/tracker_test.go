package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbonzo/CrimsonFall-sub000/hexgrid"
	"github.com/zbonzo/CrimsonFall-sub000/movement"
	"github.com/zbonzo/CrimsonFall-sub000/rpgerr"
)

func TestMoveWithinRangeSucceeds(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 2)
	target := hexgrid.FromAxial(2, 0)

	res, err := tr.Move(target, movement.OccupancySet{}, movement.OccupancySet{}, true)
	require.NoError(t, err)
	assert.Equal(t, target, res.To)
	assert.Equal(t, target, tr.Position())
	assert.True(t, tr.HasMovedThisRound())
}

func TestMoveBeyondRangeFails(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 1)
	target := hexgrid.FromAxial(3, 0)

	_, err := tr.Move(target, movement.OccupancySet{}, movement.OccupancySet{}, true)
	require.Error(t, err)
	assert.True(t, rpgerr.IsOutOfRange(err))
}

func TestMoveTwiceInOneRoundFails(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 3)
	_, err := tr.Move(hexgrid.FromAxial(1, 0), movement.OccupancySet{}, movement.OccupancySet{}, true)
	require.NoError(t, err)

	_, err = tr.Move(hexgrid.FromAxial(2, 0), movement.OccupancySet{}, movement.OccupancySet{}, true)
	require.Error(t, err)
	assert.True(t, rpgerr.IsTimingRestriction(err))
}

func TestMoveIntoOccupiedCellFails(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 2)
	target := hexgrid.FromAxial(1, 0)
	occupied := movement.OccupancySet{target.Key(): true}

	_, err := tr.Move(target, occupied, movement.OccupancySet{}, true)
	require.Error(t, err)
	assert.True(t, rpgerr.IsConflictingState(err))
	assert.Contains(t, err.Error(), "occupied")
}

func TestMoveIntoObstacleFails(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 2)
	target := hexgrid.FromAxial(1, 0)
	obstacles := movement.OccupancySet{target.Key(): true}

	_, err := tr.Move(target, movement.OccupancySet{}, obstacles, true)
	require.Error(t, err)
	assert.True(t, rpgerr.IsConflictingState(err))
}

func TestMoveBlockedByStatus(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 2)
	_, err := tr.Move(hexgrid.FromAxial(1, 0), movement.OccupancySet{}, movement.OccupancySet{}, false)
	require.Error(t, err)
	assert.True(t, rpgerr.IsNotAllowed(err))
}

func TestResetForNewRoundAllowsAnotherMove(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 3)
	_, err := tr.Move(hexgrid.FromAxial(1, 0), movement.OccupancySet{}, movement.OccupancySet{}, true)
	require.NoError(t, err)

	tr.ResetForNewRound()
	assert.False(t, tr.HasMovedThisRound())

	_, err = tr.Move(hexgrid.FromAxial(2, 0), movement.OccupancySet{}, movement.OccupancySet{}, true)
	require.NoError(t, err)
}

func TestGetReachablePositionsMatchesInRange(t *testing.T) {
	tr := movement.New(hexgrid.FromAxial(0, 0), 1)
	reachable := tr.GetReachablePositions()
	assert.ElementsMatch(t, hexgrid.InRange(hexgrid.FromAxial(0, 0), 1), reachable)
}
