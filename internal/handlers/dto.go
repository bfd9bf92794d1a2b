package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/drelich/minefield-server/internal/minefield"
	"github.com/drelich/minefield-server/internal/repository"
)

var queryDecoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type NewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := queryDecoder.Decode(&dto, src)
	return dto, err
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePositionDTO(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	err := queryDecoder.Decode(&dto, src)
	return dto, err
}

type HighscoreFilterDTO struct {
	Username  *string `schema:"username"`
	Width     *int    `schema:"width"`
	Height    *int    `schema:"height"`
	MineCount *int    `schema:"mine_count"`
}

func ParseHighscoreFilterDTO(src map[string][]string) (HighscoreFilterDTO, error) {
	var dto HighscoreFilterDTO
	err := queryDecoder.Decode(&dto, src)
	return dto, err
}

// GameSessionDTO is the wire shape of a session. Grid carries the
// player-visible rendering only; mines stay server-side.
type GameSessionDTO struct {
	GameSessionId string   `json:"game_session_id"`
	Grid          []string `json:"grid"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	MineCount     int      `json:"mine_count"`
	Dead          bool     `json:"dead"`
	Won           bool     `json:"won"`
	StartedAt     int64    `json:"started_at"`
	EndedAt       *int64   `json:"ended_at,omitempty"`
	Result        string   `json:"result,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, field *minefield.Minefield,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Grid:          field.PlayerRows(),
		Width:         field.Width,
		Height:        field.Height,
		MineCount:     field.MineCount,
		Dead:          session.Dead,
		Won:           session.Won,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
		EndedAt:       endedAt,
	}
}
