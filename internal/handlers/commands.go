package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/drelich/minefield-server/internal/minefield"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand runs one line of the text protocol against the field:
// "o x y" steps, "f x y" toggles a flag, "c x y" chords and "g" is a
// no-op fetch. It returns the move outcome for the response.
func executeCommand(field *minefield.Minefield, command string) (string, error) {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return "", errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return "", errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return "", errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return "", nil
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return "", err
		}
		return field.Step(x, y).String(), nil
	case "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return "", err
		}
		return field.ToggleFlag(x, y).String(), nil
	case "c":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return "", err
		}
		return field.AutoStep(x, y).String(), nil
	}
	return "", errors.New("unknown command")
}

// readCommands splits a request body into non-empty command lines.
func readCommands(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var commands []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			commands = append(commands, line)
		}
	}
	if len(commands) == 0 {
		return nil, errors.New("empty command script")
	}
	return commands, nil
}
