package anvil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-forge/internal/smithy"
)

func newTestRound(seed int64) *Round {
	return NewRound(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func press(lanes ...Lane) Presses {
	var p Presses
	for _, l := range lanes {
		p[l] = true
	}
	return p
}

func TestHitScore(t *testing.T) {
	assert.Equal(t, 100, HitScore(0))
	assert.Equal(t, 0, HitScore(100))
	assert.Equal(t, 0, HitScore(-100))
	assert.Equal(t, 95, HitScore(-5))
	assert.Equal(t, -50, HitScore(150), "scores are not clamped")
}

func TestPayoutRounding(t *testing.T) {
	assert.Equal(t, 293, Payout(1.5, 195))
	assert.Equal(t, 150, Payout(1.5, 100))
	assert.Equal(t, 195, Payout(1.0, 195))
	assert.Equal(t, 0, Payout(1.5, 0))
}

func TestSpawnerInterval(t *testing.T) {
	r := newTestRound(1)

	r.Step(Presses{}, false)
	require.Len(t, r.Notes(), 1, "first note spawns on the first tick")
	assert.Equal(t, SpawnY, r.Notes()[0].Y)

	for range 14 {
		r.Step(Presses{}, false)
	}
	require.Len(t, r.Notes(), 1, "no note before the interval elapses")

	r.Step(Presses{}, false)
	require.Len(t, r.Notes(), 2, "second note on tick 16")

	for range 15 {
		r.Step(Presses{}, false)
	}
	assert.Len(t, r.Notes(), 3)
}

func TestSpawnedNotesMatchLane(t *testing.T) {
	r := newTestRound(7)
	for range 100 {
		r.Step(Presses{}, false)
	}
	for _, n := range r.Notes() {
		assert.Equal(t, Variant(n.Lane), n.Variant)
		assert.GreaterOrEqual(t, int(n.Lane), 0)
		assert.Less(t, int(n.Lane), int(LaneCount))
	}
}

func TestMissedNoteEndsRound(t *testing.T) {
	r := newTestRound(3)
	for !r.Step(Presses{}, false) {
		require.Less(t, r.Tick(), 500, "round should end")
	}

	// -60 + 5*(tick-1) >= 480
	assert.Equal(t, 109, r.Tick())
	assert.Equal(t, ReasonMissed, r.Reason())
	assert.Zero(t, r.Points())
}

func TestMissEndsRoundRegardlessOfOtherNotes(t *testing.T) {
	r := newTestRound(3)
	r.notes = []Note{
		{Lane: LaneLeft, Y: 475},
		{Lane: LaneUp, Y: 380},
	}

	ended := r.Step(press(LaneUp), false)

	assert.True(t, ended)
	assert.Equal(t, ReasonMissed, r.Reason())
	assert.Zero(t, r.Points(), "hits are not processed after a miss")
}

func TestFalsePressEndsRound(t *testing.T) {
	r := newTestRound(5)

	assert.True(t, r.Step(press(LaneDown), false))
	assert.Equal(t, ReasonFalsePress, r.Reason())

	// Further steps are no-ops.
	tick := r.Tick()
	assert.True(t, r.Step(Presses{}, false))
	assert.Equal(t, tick, r.Tick())
}

func TestHitScoresAndRemovesNote(t *testing.T) {
	r := newTestRound(9)
	r.notes = []Note{
		{Lane: LaneUp, Y: 385},
		{Lane: LaneRight, Y: 100},
	}

	require.False(t, r.Step(press(LaneUp), false))

	assert.Equal(t, 100, r.Points())
	assert.Equal(t, 1, r.Hits())
	notes := r.Notes()
	require.NotEmpty(t, notes)
	assert.Equal(t, LaneRight, notes[0].Lane)
	assert.Equal(t, 105, notes[0].Y)
}

func TestHitWindowEdges(t *testing.T) {
	tests := []struct {
		name   string
		startY int // before the tick's advance
		hit    bool
		points int
	}{
		{"just entering", 330, true, 45},
		{"too early", 325, false, 0},
		{"just leaving", 440, true, 45},
		{"already past", 445, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRound(11)
			r.notes = []Note{{Lane: LaneLeft, Y: tc.startY}}

			ended := r.Step(press(LaneLeft), false)

			assert.Equal(t, !tc.hit, ended)
			assert.Equal(t, tc.points, r.Points())
		})
	}
}

func TestNoteInOtherLaneDoesNotCount(t *testing.T) {
	r := newTestRound(13)
	r.notes = []Note{{Lane: LaneUp, Y: 385}}

	assert.True(t, r.Step(press(LaneDown), false))
	assert.Equal(t, ReasonFalsePress, r.Reason())
}

func TestQuitKeepsPoints(t *testing.T) {
	r := newTestRound(17)
	r.notes = []Note{{Lane: LaneRight, Y: 385}}
	require.False(t, r.Step(press(LaneRight), false))

	assert.True(t, r.Step(Presses{}, true))
	assert.Equal(t, ReasonQuit, r.Reason())
	assert.Equal(t, 100, r.Points())
}

func TestDeterministicSpawns(t *testing.T) {
	a, b := newTestRound(42), newTestRound(42)
	for range 200 {
		a.Step(Presses{}, false)
		b.Step(Presses{}, false)
	}
	assert.Equal(t, a.Notes(), b.Notes())
	assert.Equal(t, a.Reason(), b.Reason())
}

func hotIron(temp int) *smithy.Product {
	p := smithy.NewProduct(smithy.Iron)
	p.Temp = temp
	return &p
}

func TestSessionPerfectIronPayout(t *testing.T) {
	item := hotIron(2500)
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(1)))

	require.NoError(t, s.SelectItem(item))
	require.NoError(t, s.SelectForm(smithy.Sword))
	require.NoError(t, s.Start())
	assert.Equal(t, smithy.Anvil, item.Location)
	assert.Equal(t, 1.5, s.Multiplier())

	s.round.notes = []Note{{Lane: LaneLeft, Y: 380}}
	s.Step(press(LaneLeft), false)
	s.round.notes = append(s.round.notes, Note{Lane: LaneRight, Y: 385})
	s.Step(press(LaneRight), false)
	require.Equal(t, PhaseRunning, s.Phase())
	require.Equal(t, 195, s.Points())

	s.Step(Presses{}, true)

	assert.Equal(t, PhaseExiting, s.Phase())
	assert.Equal(t, 293, item.Value)
	assert.Equal(t, 293, s.Payout())
	assert.Equal(t, smithy.Sword, item.Form)
	assert.Equal(t, smithy.Storage, item.Location)
	assert.Equal(t, 2500, item.Temp)

	for range DefaultConfig().DwellTicks {
		s.Step(Presses{}, false)
	}
	assert.Equal(t, PhaseDone, s.Phase())
}

func TestSessionOverheatedPaysFlat(t *testing.T) {
	item := hotIron(2700)
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(1)))

	require.NoError(t, s.SelectItem(item))
	require.NoError(t, s.SelectForm(smithy.Axe))
	require.NoError(t, s.Start())

	s.round.notes = []Note{{Lane: LaneDown, Y: 380}}
	s.Step(press(LaneDown), false)
	s.Step(press(LaneDown), false) // nothing there

	assert.Equal(t, PhaseExiting, s.Phase())
	assert.Equal(t, 95, item.Value)
	assert.Equal(t, smithy.Axe, item.Form)
}

func TestSessionRejectsColdItem(t *testing.T) {
	item := hotIron(smithy.RoomTemp)
	before := *item
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(1)))

	assert.ErrorIs(t, s.SelectItem(item), ErrNotHotEnough)
	assert.ErrorIs(t, s.Start(), ErrNotReady)
	assert.Equal(t, before, *item)
}

func TestSessionSetupValidation(t *testing.T) {
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(1)))

	assert.ErrorIs(t, s.SelectForm(smithy.Bar), ErrInvalidForm)
	require.NoError(t, s.SelectItem(hotIron(2450)))
	assert.ErrorIs(t, s.Start(), ErrNotReady)
}

func TestSessionCancelLeavesItemUntouched(t *testing.T) {
	item := hotIron(2450)
	before := *item
	s := NewSession(DefaultConfig(), rand.New(rand.NewSource(1)))

	require.NoError(t, s.SelectItem(item))
	s.Cancel()

	assert.Equal(t, PhaseCancelled, s.Phase())
	assert.False(t, s.Played())
	assert.Equal(t, before, *item)
	assert.ErrorIs(t, s.Start(), ErrWrongPhase)
}
