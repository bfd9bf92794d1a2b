package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateGameSessionParamsSetClause(t *testing.T) {
	dead := true
	won := false
	endedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state := []byte{1, 2, 3}

	tests := []struct {
		name       string
		params     UpdateGameSessionParams
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name:       "empty",
			params:     UpdateGameSessionParams{},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
		{
			name:       "state only",
			params:     UpdateGameSessionParams{State: &state},
			wantClause: "state = @state",
			wantArgs:   map[string]any{"state": state},
		},
		{
			name: "full outcome",
			params: UpdateGameSessionParams{
				Dead:    &dead,
				Won:     &won,
				EndedAt: &endedAt,
				State:   &state,
			},
			wantClause: "dead = @dead, won = @won, ended_at = @ended_at, state = @state",
			wantArgs: map[string]any{
				"dead":     true,
				"won":      false,
				"ended_at": endedAt,
				"state":    state,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clause, args := test.params.SetClause()
			assert.Equal(t, test.wantClause, clause)
			assert.Equal(t, test.wantArgs, args)
		})
	}
}
