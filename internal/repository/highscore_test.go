package repository

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestHighscoreFilterWhereClause(t *testing.T) {
	username := "dreich"
	width, height, mineCount := 9, 9, 10

	clause, args := HighscoreFilter{}.WhereClause()
	assert.Empty(t, clause)
	assert.Empty(t, args)

	clause, args = HighscoreFilter{Username: &username}.WhereClause()
	assert.Equal(t, "username = @username", clause)
	assert.Equal(t, pgx.NamedArgs{"username": username}, args)

	clause, args = HighscoreFilter{
		Username:  &username,
		Width:     &width,
		Height:    &height,
		MineCount: &mineCount,
	}.WhereClause()
	assert.Equal(
		t,
		"username = @username AND width = @width AND height = @height AND mine_count = @mineCount",
		clause,
	)
	assert.Equal(t, pgx.NamedArgs{
		"username":  username,
		"width":     width,
		"height":    height,
		"mineCount": mineCount,
	}, args)
}
