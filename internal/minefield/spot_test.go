package minefield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpotStep(t *testing.T) {
	tests := []struct {
		name   string
		before Spot
		want   StepResult
		after  Spot
	}{
		{
			name:   "hidden empty reveals",
			before: Spot{Kind: HiddenEmpty, NeighboringMines: 3},
			want:   StepPhew,
			after:  Spot{Kind: RevealedEmpty, NeighboringMines: 3},
		},
		{
			name:   "hidden mine explodes",
			before: Spot{Kind: HiddenMine},
			want:   StepBoom,
			after:  Spot{Kind: ExplodedMine},
		},
		{
			name:   "flagged empty untouched",
			before: Spot{Kind: FlaggedEmpty, NeighboringMines: 1},
			want:   StepInvalid,
			after:  Spot{Kind: FlaggedEmpty, NeighboringMines: 1},
		},
		{
			name:   "flagged mine untouched",
			before: Spot{Kind: FlaggedMine},
			want:   StepInvalid,
			after:  Spot{Kind: FlaggedMine},
		},
		{
			name:   "revealed is terminal",
			before: Spot{Kind: RevealedEmpty, NeighboringMines: 2},
			want:   StepInvalid,
			after:  Spot{Kind: RevealedEmpty, NeighboringMines: 2},
		},
		{
			name:   "exploded is terminal",
			before: Spot{Kind: ExplodedMine},
			want:   StepInvalid,
			after:  Spot{Kind: ExplodedMine},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spot := test.before
			assert.Equal(t, test.want, spot.Step())
			assert.Equal(t, test.after, spot)
		})
	}
}

func TestSpotFlag(t *testing.T) {
	tests := []struct {
		name   string
		before Spot
		want   FlagResult
		after  Spot
	}{
		{
			name:   "hidden empty gains flag",
			before: Spot{Kind: HiddenEmpty, NeighboringMines: 4},
			want:   FlagAdded,
			after:  Spot{Kind: FlaggedEmpty, NeighboringMines: 4},
		},
		{
			name:   "hidden mine gains flag",
			before: Spot{Kind: HiddenMine},
			want:   FlagAdded,
			after:  Spot{Kind: FlaggedMine},
		},
		{
			name:   "flagged empty loses flag",
			before: Spot{Kind: FlaggedEmpty, NeighboringMines: 4},
			want:   FlagRemoved,
			after:  Spot{Kind: HiddenEmpty, NeighboringMines: 4},
		},
		{
			name:   "flagged mine loses flag",
			before: Spot{Kind: FlaggedMine},
			want:   FlagRemoved,
			after:  Spot{Kind: HiddenMine},
		},
		{
			name:   "revealed cannot be flagged",
			before: Spot{Kind: RevealedEmpty, NeighboringMines: 1},
			want:   FlagNone,
			after:  Spot{Kind: RevealedEmpty, NeighboringMines: 1},
		},
		{
			name:   "exploded cannot be flagged",
			before: Spot{Kind: ExplodedMine},
			want:   FlagNone,
			after:  Spot{Kind: ExplodedMine},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spot := test.before
			assert.Equal(t, test.want, spot.Flag())
			assert.Equal(t, test.after, spot)
		})
	}
}

func TestSpotFlagTwiceRoundTrips(t *testing.T) {
	spot := Spot{Kind: HiddenMine}
	assert.Equal(t, FlagAdded, spot.Flag())
	assert.Equal(t, FlagRemoved, spot.Flag())
	assert.Equal(t, HiddenMine, spot.Kind)
}

func TestSpotIsResolved(t *testing.T) {
	assert.True(t, Spot{Kind: FlaggedMine}.IsResolved())
	assert.True(t, Spot{Kind: RevealedEmpty, NeighboringMines: 5}.IsResolved())

	assert.False(t, Spot{Kind: HiddenEmpty}.IsResolved())
	assert.False(t, Spot{Kind: HiddenMine}.IsResolved())
	assert.False(t, Spot{Kind: FlaggedEmpty}.IsResolved())
	assert.False(t, Spot{Kind: ExplodedMine}.IsResolved())
}
