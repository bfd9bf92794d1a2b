package minefield

import "iter"

// Rand supplies uniformly distributed ints in [0, n). It is the only
// nondeterministic input to the engine. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Point is a grid coordinate. (0, 0) is the top-left cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Minefield owns a dense grid of spots, indexed y*Width+x. Fields are
// exported for gob; treat them as read-only outside this package and
// mutate through Step, AutoStep and ToggleFlag. A Minefield assumes
// exclusive single-threaded ownership; concurrent hosts must serialize
// access to it.
type Minefield struct {
	Spots     []Spot
	MineCount int
	Width     int
	Height    int
}

// New creates an empty minefield with every spot hidden and no mines.
// Dimensions below 1 are coerced to 1: a field must have at least one
// cell.
func New(width, height int) *Minefield {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Minefield{
		Spots:  make([]Spot, width*height),
		Width:  width,
		Height: height,
	}
}

// WithMines places count mines on uniformly random distinct cells and
// fixes the stored mine count. count is clamped to [0, cells]. Call
// exactly once, before any Step, ToggleFlag or AutoStep; panics with
// AssertionError if play has already started.
func (m *Minefield) WithMines(count int, r Rand) *Minefield {
	for i := range m.Spots {
		if k := m.Spots[i].Kind; k != HiddenEmpty && k != HiddenMine {
			panic(AssertionError{"mines placed mid-game"})
		}
	}

	if count < 0 {
		count = 0
	}
	if total := m.Width * m.Height; count > total {
		count = total
	}
	m.MineCount = count

	// Drawing random cells and retrying on collisions degenerates as
	// mine density approaches 100%, so spend the memory on a pool of
	// remaining indices and swap-remove a uniform pick each draw:
	// exactly count draws at any density.
	pool := make([]int, len(m.Spots))
	for i := range pool {
		pool[i] = i
	}
	for range count {
		j := r.IntN(len(pool))
		i := pool[j]
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		m.placeMine(i%m.Width, i/m.Width)
	}
	return m
}

// placeMine converts the cell at (x, y) to a hidden mine and bumps the
// neighbor counts of every adjacent mineless cell. Placing onto a cell
// that already holds a mine is a no-op.
func (m *Minefield) placeMine(x, y int) {
	if !m.inBounds(x, y) {
		panic(AssertionError{"mine placement out of bounds"})
	}
	spot := &m.Spots[y*m.Width+x]
	if spot.hasMine() {
		return
	}
	spot.Kind = HiddenMine
	for p := range m.neighbors(x, y) {
		if nb := &m.Spots[p.Y*m.Width+p.X]; !nb.hasMine() {
			nb.NeighboringMines++
		}
	}
}

// neighbors yields the in-bounds cells of the 3x3 block around (x, y),
// excluding (x, y) itself: up to 8 of them, fewer at edges and corners.
func (m *Minefield) neighbors(x, y int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if nx, ny := x+dx, y+dy; m.inBounds(nx, ny) {
					if !yield(Point{nx, ny}) {
						return
					}
				}
			}
		}
	}
}

// Step steps on the spot at (x, y). A StepPhew reveal of a cell with no
// neighboring mines cascades: every reachable hidden empty cell is
// revealed, with the cascade stopping at numbered cells and never touching
// flagged or already revealed ones. Out-of-bounds coordinates are
// StepInvalid.
func (m *Minefield) Step(x, y int) StepResult {
	if !m.inBounds(x, y) {
		return StepInvalid
	}
	res := m.Spots[y*m.Width+x].Step()

	if res == StepPhew && m.Spots[y*m.Width+x].NeighboringMines == 0 {
		// Explicit worklist, no recursion. Each cell transitions at
		// most once, so the loop is bounded by the cell count.
		work := []Point{{x, y}}
		for len(work) > 0 {
			p := work[len(work)-1]
			work = work[:len(work)-1]
			for nb := range m.neighbors(p.X, p.Y) {
				spot := &m.Spots[nb.Y*m.Width+nb.X]
				if spot.Kind != HiddenEmpty {
					continue
				}
				spot.Kind = RevealedEmpty
				if spot.NeighboringMines == 0 {
					work = append(work, nb)
				}
			}
		}
	}
	return res
}

// AutoStep steps on every neighbor of an already revealed numbered cell
// (a chord). It only fires when the number of flagged neighbors equals
// the cell's neighboring mine count; otherwise nothing is mutated.
// Neighbors are stepped in turn and the first mine hit aborts with
// StepBoom, keeping the reveals made before it.
func (m *Minefield) AutoStep(x, y int) StepResult {
	if !m.inBounds(x, y) {
		return StepInvalid
	}
	spot := m.Spots[y*m.Width+x]
	if spot.Kind != RevealedEmpty {
		return StepInvalid
	}

	flags := 0
	for nb := range m.neighbors(x, y) {
		if m.Spots[nb.Y*m.Width+nb.X].flagged() {
			flags++
		}
	}
	if flags != spot.NeighboringMines {
		return StepInvalid
	}

	// Flagged neighbors are stepped like the rest; their Step is a
	// no-op.
	for nb := range m.neighbors(x, y) {
		if m.Spots[nb.Y*m.Width+nb.X].Step() == StepBoom {
			return StepBoom
		}
	}
	return StepPhew
}

// ToggleFlag toggles the marker on the spot at (x, y). Out-of-bounds
// coordinates are FlagNone.
func (m *Minefield) ToggleFlag(x, y int) FlagResult {
	if !m.inBounds(x, y) {
		return FlagNone
	}
	return m.Spots[y*m.Width+x].Flag()
}

// IsCleared reports whether every spot is resolved: all mines correctly
// flagged and everything else revealed. Recomputed on demand.
func (m *Minefield) IsCleared() bool {
	for i := range m.Spots {
		if !m.Spots[i].IsResolved() {
			return false
		}
	}
	return true
}

// Exploded reports whether any mine has been stepped on.
func (m *Minefield) Exploded() bool {
	for i := range m.Spots {
		if m.Spots[i].Kind == ExplodedMine {
			return true
		}
	}
	return false
}

// At fetches the spot at (x, y). ok is false out of bounds.
func (m *Minefield) At(x, y int) (spot Spot, ok bool) {
	if !m.inBounds(x, y) {
		return Spot{}, false
	}
	return m.Spots[y*m.Width+x], true
}

// All enumerates every cell with its coordinates, row by row.
func (m *Minefield) All() iter.Seq2[Point, Spot] {
	return func(yield func(Point, Spot) bool) {
		for i, s := range m.Spots {
			if !yield(Point{i % m.Width, i / m.Width}, s) {
				return
			}
		}
	}
}

func (m *Minefield) inBounds(x, y int) bool {
	return 0 <= x && x < m.Width && 0 <= y && y < m.Height
}
