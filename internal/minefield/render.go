package minefield

import "strings"

// PlayerRune is the spot as the player is allowed to see it. Hidden cells
// and hidden mines are indistinguishable; so are the two flagged kinds.
func (s Spot) PlayerRune() rune {
	switch s.Kind {
	case HiddenEmpty, HiddenMine:
		return '-'
	case FlaggedEmpty, FlaggedMine:
		return 'F'
	case ExplodedMine:
		return '*'
	case RevealedEmpty:
		if s.NeighboringMines == 0 {
			return ' '
		}
		return rune('0' + s.NeighboringMines)
	default:
		return '!'
	}
}

// PlayerRows renders the player-visible grid, one string per row.
func (m *Minefield) PlayerRows() []string {
	rows := make([]string, m.Height)
	var b strings.Builder
	for y := range m.Height {
		b.Reset()
		for x := range m.Width {
			b.WriteRune(m.Spots[y*m.Width+x].PlayerRune())
		}
		rows[y] = b.String()
	}
	return rows
}

// PlayerView renders the player-visible grid as a single newline-joined
// block, handy for logs and terminal clients.
func (m *Minefield) PlayerView() string {
	return strings.Join(m.PlayerRows(), "\n") + "\n"
}
