package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/drelich/minefield-server/internal/config"
	"github.com/drelich/minefield-server/internal/middleware"
	"github.com/drelich/minefield-server/internal/minefield"
	"github.com/drelich/minefield-server/internal/repository"
)

type GameHandler struct {
	logger  logrus.FieldLogger
	repo    repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     minefield.Rand
}

func NewGameHandler(
	logger logrus.FieldLogger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd minefield.Rand,
) *GameHandler {
	return &GameHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	field := minefield.New(dto.Width, dto.Height).WithMines(dto.MineCount, g.rnd)

	var params repository.CreateGameSessionParams
	if claims, loggedIn := middleware.PlayerClaims(r.Context()); loggedIn {
		g.logger.WithField("playerId", claims.PlayerId).
			Debug("creating player session")
		params.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), field, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to create game session")
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, field))
}

// loadSession resolves the {id} path value into a session and its
// decoded field, writing the error status itself when it fails.
func (g GameHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *minefield.Minefield, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to fetch session from db")
		return nil, nil, false
	}

	field, err := session.Field()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("db returned invalid game_session.state")
		return nil, nil, false
	}

	return session, field, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, field, ok := g.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, field))
}

// saveAndRespond derives the session outcome from the field, persists
// it and sends the updated session back. result goes out verbatim in
// the DTO.
func (g GameHandler) saveAndRespond(
	w http.ResponseWriter,
	r *http.Request,
	session *repository.GameSession,
	field *minefield.Minefield,
	result string,
) {
	dead := session.Dead || field.Exploded()
	won := session.Won || field.IsCleared()

	params := repository.UpdateGameSessionParams{Dead: &dead, Won: &won}

	state, err := field.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to serialize field")
		return
	}
	params.State = &state

	if (dead || won) && !session.EndedAt.Valid {
		now := time.Now().UTC()
		params.EndedAt = &now
	}

	session, err = g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithError(err).Error("unable to update session in db")
		return
	}

	dto := NewGameSessionDTO(session, field)
	dto.Result = result
	sendJSONOrLog(w, g.logger, dto)
}

// gameOver guards move handlers: a finished session accepts no moves.
func (g GameHandler) gameOver(w http.ResponseWriter, session *repository.GameSession) bool {
	if session.Dead || session.Won {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(errors.New("game is over")))
		return true
	}
	return false
}

func (g GameHandler) Step(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePositionDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	session, field, ok := g.loadSession(w, r)
	if !ok || g.gameOver(w, session) {
		return
	}
	result := field.Step(pos.X, pos.Y)
	g.saveAndRespond(w, r, session, field, result.String())
}

func (g GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePositionDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	session, field, ok := g.loadSession(w, r)
	if !ok || g.gameOver(w, session) {
		return
	}
	result := field.ToggleFlag(pos.X, pos.Y)
	g.saveAndRespond(w, r, session, field, result.String())
}

func (g GameHandler) Chord(w http.ResponseWriter, r *http.Request) {
	pos, err := ParsePositionDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	session, field, ok := g.loadSession(w, r)
	if !ok || g.gameOver(w, session) {
		return
	}
	result := field.AutoStep(pos.X, pos.Y)
	g.saveAndRespond(w, r, session, field, result.String())
}

// Forfeit ends the session as a loss without touching the field.
func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, field, ok := g.loadSession(w, r)
	if !ok || g.gameOver(w, session) {
		return
	}
	session.Dead = true
	g.saveAndRespond(w, r, session, field, "")
}

// Batch executes a newline-separated command script from the request
// body against the session, stopping at the first failed command or
// finished game.
func (g GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	session, field, ok := g.loadSession(w, r)
	if !ok || g.gameOver(w, session) {
		return
	}

	script, err := readCommands(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	var result string
	for _, command := range script {
		result, err = executeCommand(field, command)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		if field.Exploded() || field.IsCleared() {
			break
		}
	}

	g.saveAndRespond(w, r, session, field, result)
}
