package minefield

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptRand replays a fixed list of draws so mine placement lands on
// known cells.
type scriptRand struct {
	draws []int
	i     int
}

func (r *scriptRand) IntN(n int) int {
	d := r.draws[r.i] % n
	r.i++
	return d
}

func kindAt(t *testing.T, m *Minefield, x, y int) SpotKind {
	t.Helper()
	spot, ok := m.At(x, y)
	require.True(t, ok, "(%d, %d) out of bounds", x, y)
	return spot.Kind
}

func countAt(t *testing.T, m *Minefield, x, y int) int {
	t.Helper()
	spot, ok := m.At(x, y)
	require.True(t, ok, "(%d, %d) out of bounds", x, y)
	return spot.NeighboringMines
}

func TestNewMinefield(t *testing.T) {
	m := New(3, 4)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 4, m.Height)
	assert.Equal(t, 0, m.MineCount)
	require.Len(t, m.Spots, 12)
	for p, spot := range m.All() {
		assert.Equal(t, HiddenEmpty, spot.Kind, "spot at %+v", p)
		assert.Equal(t, 0, spot.NeighboringMines, "spot at %+v", p)
	}
}

func TestNewMinefieldCoercesDimensions(t *testing.T) {
	m := New(0, -5)

	assert.Equal(t, 1, m.Width)
	assert.Equal(t, 1, m.Height)
	assert.Len(t, m.Spots, 1)
}

// Mines at (2, 0), (0, 3) and (0, 1) of a 3x4 field, and the neighbor
// counts they must produce:
//
//	1 2 *
//	* 2 1
//	2 2 0
//	* 1 0
func TestWithMinesCounts(t *testing.T) {
	// Pool indices: 2 picks (2, 0); 9 picks (0, 3); 3 picks (0, 1)
	// (index 3 is still at slot 3 after the first two swap-removals).
	r := &scriptRand{draws: []int{2, 9, 3}}
	m := New(3, 4).WithMines(3, r)

	assert.Equal(t, 3, m.MineCount)

	assert.Equal(t, HiddenMine, kindAt(t, m, 2, 0))
	assert.Equal(t, HiddenMine, kindAt(t, m, 0, 1))
	assert.Equal(t, HiddenMine, kindAt(t, m, 0, 3))

	wantCounts := [][]int{
		{1, 2, 0},
		{0, 2, 1},
		{2, 2, 0},
		{0, 1, 0},
	}
	for y, row := range wantCounts {
		for x, want := range row {
			if kindAt(t, m, x, y) == HiddenMine {
				continue
			}
			assert.Equal(t, want, countAt(t, m, x, y), "count at (%d, %d)", x, y)
		}
	}

	assert.Equal(t, StepBoom, m.Step(2, 0))
	assert.Equal(t, ExplodedMine, kindAt(t, m, 2, 0))
	assert.True(t, m.Exploded())
}

func TestWithMinesClampsCount(t *testing.T) {
	m := New(3, 3).WithMines(100, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, 9, m.MineCount)
	for p, spot := range m.All() {
		assert.Equal(t, HiddenMine, spot.Kind, "spot at %+v", p)
	}
}

func TestWithMinesExactCount(t *testing.T) {
	m := New(16, 16).WithMines(40, rand.New(rand.NewPCG(7, 42)))

	mines := 0
	for _, spot := range m.All() {
		if spot.Kind == HiddenMine {
			mines++
		}
	}
	assert.Equal(t, 40, mines)
	assert.Equal(t, 40, m.MineCount)
}

func TestWithMinesAfterPlayPanics(t *testing.T) {
	m := New(3, 3).WithMines(1, &scriptRand{draws: []int{8}})
	require.Equal(t, StepPhew, m.Step(0, 0))

	assert.PanicsWithValue(t, AssertionError{"mines placed mid-game"}, func() {
		m.WithMines(1, &scriptRand{draws: []int{0}})
	})
}

func TestStepOutOfBounds(t *testing.T) {
	m := New(3, 3).WithMines(2, rand.New(rand.NewPCG(1, 2)))
	before := append([]Spot(nil), m.Spots...)

	assert.Equal(t, StepInvalid, m.Step(-1, 0))
	assert.Equal(t, StepInvalid, m.Step(0, -1))
	assert.Equal(t, StepInvalid, m.Step(3, 0))
	assert.Equal(t, StepInvalid, m.Step(0, 3))
	assert.Equal(t, before, m.Spots)
}

func TestToggleFlagOutOfBounds(t *testing.T) {
	m := New(2, 2)

	assert.Equal(t, FlagNone, m.ToggleFlag(5, 5))
	assert.Equal(t, FlagNone, m.ToggleFlag(-1, 1))
}

func TestStepOnNumberedCellDoesNotCascade(t *testing.T) {
	// Mine at (0, 0) of a 2x2 field; every other cell counts 1.
	m := New(2, 2).WithMines(1, &scriptRand{draws: []int{0}})

	assert.Equal(t, StepPhew, m.Step(1, 1))
	assert.Equal(t, RevealedEmpty, kindAt(t, m, 1, 1))
	assert.Equal(t, HiddenEmpty, kindAt(t, m, 1, 0))
	assert.Equal(t, HiddenEmpty, kindAt(t, m, 0, 1))
}

func TestBoomDoesNotCascade(t *testing.T) {
	m := New(3, 3).WithMines(1, &scriptRand{draws: []int{4}})

	assert.Equal(t, StepBoom, m.Step(1, 1))
	for p, spot := range m.All() {
		if p.X == 1 && p.Y == 1 {
			continue
		}
		assert.Equal(t, HiddenEmpty, spot.Kind, "spot at %+v", p)
	}
}

// A 10x10 field with mines at (2, 4), (5, 7), (7, 7), (9, 4), (6, 3)
// and (3, 0), a flag at (5, 1), stepped at (9, 6). The cascade must
// stop at numbered cells, leave every mine hidden and never pass
// through the flag.
func TestStepFloodReveal(t *testing.T) {
	m := New(10, 10)
	for _, p := range []Point{{2, 4}, {5, 7}, {7, 7}, {9, 4}, {6, 3}, {3, 0}} {
		m.placeMine(p.X, p.Y)
	}
	m.MineCount = 6

	require.Equal(t, FlagAdded, m.ToggleFlag(5, 1))
	require.Equal(t, StepPhew, m.Step(9, 6))

	for _, p := range []Point{{2, 4}, {5, 7}, {7, 7}, {9, 4}, {6, 3}, {3, 0}} {
		assert.Equal(t, HiddenMine, kindAt(t, m, p.X, p.Y), "mine at %+v", p)
	}

	assert.Equal(t, RevealedEmpty, kindAt(t, m, 9, 6))
	assert.Equal(t, RevealedEmpty, kindAt(t, m, 7, 5))
	assert.Equal(t, 0, countAt(t, m, 7, 5))

	// The flag blocks the cascade but its own count is unaffected.
	assert.Equal(t, FlaggedEmpty, kindAt(t, m, 5, 1))
	assert.Equal(t, 0, countAt(t, m, 5, 1))

	// Cells walled off behind the flag stay hidden.
	assert.Equal(t, HiddenEmpty, kindAt(t, m, 9, 0))
	assert.Equal(t, HiddenEmpty, kindAt(t, m, 7, 1))
}

func TestAutoStepRequiresRevealedCell(t *testing.T) {
	m := New(3, 3).WithMines(1, &scriptRand{draws: []int{0}})

	assert.Equal(t, StepInvalid, m.AutoStep(1, 1))
	assert.Equal(t, StepInvalid, m.AutoStep(-1, 0))

	require.Equal(t, FlagAdded, m.ToggleFlag(2, 2))
	assert.Equal(t, StepInvalid, m.AutoStep(2, 2))
}

func TestAutoStepFlagCountMismatch(t *testing.T) {
	// Mine at (0, 0); (1, 1) reveals as a 1 with no flags around it.
	m := New(3, 3).WithMines(1, &scriptRand{draws: []int{0}})
	require.Equal(t, StepPhew, m.Step(1, 1))
	before := append([]Spot(nil), m.Spots...)

	assert.Equal(t, StepInvalid, m.AutoStep(1, 1))
	assert.Equal(t, before, m.Spots)

	// Two flags around a 1 is just as invalid as zero.
	require.Equal(t, FlagAdded, m.ToggleFlag(0, 0))
	require.Equal(t, FlagAdded, m.ToggleFlag(2, 2))
	assert.Equal(t, StepInvalid, m.AutoStep(1, 1))
	assert.Equal(t, FlaggedMine, kindAt(t, m, 0, 0))
	assert.Equal(t, FlaggedEmpty, kindAt(t, m, 2, 2))
}

func TestAutoStepCorrectFlag(t *testing.T) {
	m := New(3, 3).WithMines(1, &scriptRand{draws: []int{0}})
	require.Equal(t, StepPhew, m.Step(1, 1))
	require.Equal(t, FlagAdded, m.ToggleFlag(0, 0))

	assert.Equal(t, StepPhew, m.AutoStep(1, 1))

	assert.Equal(t, FlaggedMine, kindAt(t, m, 0, 0))
	for _, p := range []Point{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		assert.Equal(t, RevealedEmpty, kindAt(t, m, p.X, p.Y), "neighbor at %+v", p)
	}
}

func TestAutoStepMisplacedFlagBooms(t *testing.T) {
	// Mine at (2, 2), flag wrongly at (0, 0): the chord fires, hits the
	// mine, and the reveals made before the boom stay revealed.
	m := New(3, 3).WithMines(1, &scriptRand{draws: []int{8}})
	require.Equal(t, StepPhew, m.Step(1, 1))
	require.Equal(t, FlagAdded, m.ToggleFlag(0, 0))

	assert.Equal(t, StepBoom, m.AutoStep(1, 1))

	assert.Equal(t, ExplodedMine, kindAt(t, m, 2, 2))
	assert.Equal(t, FlaggedEmpty, kindAt(t, m, 0, 0))
	assert.True(t, m.Exploded())

	revealed := 0
	for _, spot := range m.All() {
		if spot.Kind == RevealedEmpty {
			revealed++
		}
	}
	assert.Greater(t, revealed, 1, "pre-boom reveals must survive")
}

func TestIsCleared(t *testing.T) {
	m := New(2, 2).WithMines(1, &scriptRand{draws: []int{0}})
	assert.False(t, m.IsCleared())

	require.Equal(t, StepPhew, m.Step(1, 0))
	require.Equal(t, StepPhew, m.Step(0, 1))
	require.Equal(t, StepPhew, m.Step(1, 1))
	assert.False(t, m.IsCleared(), "hidden mine is unresolved")

	require.Equal(t, FlagAdded, m.ToggleFlag(0, 0))
	assert.True(t, m.IsCleared())

	require.Equal(t, FlagRemoved, m.ToggleFlag(0, 0))
	assert.False(t, m.IsCleared())
}

func TestIsClearedFalseAfterExplosion(t *testing.T) {
	m := New(2, 2).WithMines(1, &scriptRand{draws: []int{0}})
	require.Equal(t, StepBoom, m.Step(0, 0))

	require.Equal(t, StepPhew, m.Step(1, 0))
	require.Equal(t, StepPhew, m.Step(0, 1))
	require.Equal(t, StepPhew, m.Step(1, 1))
	assert.False(t, m.IsCleared())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := New(5, 5).WithMines(5, rand.New(rand.NewPCG(3, 4)))
	m.Step(2, 2)
	m.ToggleFlag(4, 4)

	buf, err := m.Bytes()
	require.NoError(t, err)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not a minefield"))
	assert.Error(t, err)
}

func TestPlayerViewHidesMines(t *testing.T) {
	m := New(2, 2).WithMines(1, &scriptRand{draws: []int{0}})
	require.Equal(t, StepPhew, m.Step(1, 1))
	require.Equal(t, FlagAdded, m.ToggleFlag(0, 1))

	assert.Equal(t, []string{"--", "F1"}, m.PlayerRows())
	assert.Equal(t, "--\nF1\n", m.PlayerView())

	require.Equal(t, StepBoom, m.Step(0, 0))
	assert.Equal(t, []string{"*-", "F1"}, m.PlayerRows())
}

func TestPlayerViewZeroCellIsBlank(t *testing.T) {
	m := New(2, 1)
	require.Equal(t, StepPhew, m.Step(0, 0))

	assert.Equal(t, []string{"  "}, m.PlayerRows())
}
