package minefield

// AssertionError signals a caller contract violation (placing mines
// mid-game, internal out-of-range placement). It is raised via panic and
// never returned from the public API.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
