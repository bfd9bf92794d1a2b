package minefield

// SpotKind tags the state of a single grid cell. The zero value is
// HiddenEmpty, so a freshly allocated field starts fully hidden.
type SpotKind uint8

const (
	HiddenEmpty SpotKind = iota
	HiddenMine
	FlaggedEmpty
	FlaggedMine
	RevealedEmpty
	ExplodedMine
)

func (k SpotKind) String() string {
	switch k {
	case HiddenEmpty:
		return "hidden"
	case HiddenMine:
		return "hidden-mine"
	case FlaggedEmpty:
		return "flagged"
	case FlaggedMine:
		return "flagged-mine"
	case RevealedEmpty:
		return "revealed"
	case ExplodedMine:
		return "exploded"
	default:
		return "!"
	}
}

// StepResult is the outcome of stepping on a spot.
type StepResult int8

const (
	StepInvalid StepResult = iota // step not taken
	StepPhew                      // stepped on an empty spot
	StepBoom                      // stepped on a mine
)

func (r StepResult) String() string {
	switch r {
	case StepPhew:
		return "phew"
	case StepBoom:
		return "boom"
	default:
		return "invalid"
	}
}

// FlagResult is the outcome of toggling a flag on a spot.
type FlagResult int8

const (
	FlagNone    FlagResult = iota // no flag placed or removed
	FlagAdded                     // a flag was added
	FlagRemoved                   // an existing flag was removed
)

func (r FlagResult) String() string {
	switch r {
	case FlagAdded:
		return "added"
	case FlagRemoved:
		return "removed"
	default:
		return "none"
	}
}

// Spot is one cell of a Minefield. NeighboringMines is fixed when mines
// are placed and is meaningful for the Empty-family kinds only. Fields are
// exported for gob; mutate through Step and Flag.
type Spot struct {
	Kind             SpotKind
	NeighboringMines int
}

// Step reveals the spot if it can be revealed. Flagged, revealed and
// exploded spots are left untouched.
func (s *Spot) Step() StepResult {
	switch s.Kind {
	case HiddenEmpty:
		s.Kind = RevealedEmpty
		return StepPhew
	case HiddenMine:
		s.Kind = ExplodedMine
		return StepBoom
	case FlaggedEmpty, FlaggedMine, RevealedEmpty, ExplodedMine:
		return StepInvalid
	default:
		panic(AssertionError{"unknown spot kind"})
	}
}

// Flag toggles the player marker on a hidden spot. Revealed and exploded
// spots cannot be flagged.
func (s *Spot) Flag() FlagResult {
	switch s.Kind {
	case HiddenEmpty:
		s.Kind = FlaggedEmpty
		return FlagAdded
	case HiddenMine:
		s.Kind = FlaggedMine
		return FlagAdded
	case FlaggedEmpty:
		s.Kind = HiddenEmpty
		return FlagRemoved
	case FlaggedMine:
		s.Kind = HiddenMine
		return FlagRemoved
	case RevealedEmpty, ExplodedMine:
		return FlagNone
	default:
		panic(AssertionError{"unknown spot kind"})
	}
}

// IsResolved reports whether the spot is in its final correct state:
// a correctly flagged mine or a revealed empty cell. An exploded mine is a
// loss, not a resolution.
func (s Spot) IsResolved() bool {
	return s.Kind == FlaggedMine || s.Kind == RevealedEmpty
}

func (s Spot) hasMine() bool {
	return s.Kind == HiddenMine || s.Kind == FlaggedMine || s.Kind == ExplodedMine
}

func (s Spot) flagged() bool {
	return s.Kind == FlaggedEmpty || s.Kind == FlaggedMine
}
