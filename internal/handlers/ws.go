package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/drelich/minefield-server/internal/repository"
)

// ConnectWS upgrades the connection and plays the session over the
// text protocol: each frame holds one or more newline-separated
// commands, each frame is answered with the updated session. The
// socket serializes moves, so the field itself needs no locking.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, field, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer conn.Close()

	log := g.logger.WithField("gameSessionId", session.GameSessionId)

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("ws read failed")
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		var result string
		gameWasOver := session.Dead || session.Won
		for _, command := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			if gameWasOver {
				break
			}
			result, err = executeCommand(field, command)
			if err != nil {
				log.WithError(err).WithField("command", command).
					Error("ws command failed")
				return
			}
			if field.Exploded() || field.IsCleared() {
				break
			}
		}

		dead := session.Dead || field.Exploded()
		won := session.Won || field.IsCleared()

		state, err := field.Bytes()
		if err != nil {
			log.WithError(err).Error("unable to serialize field")
			return
		}
		params := repository.UpdateGameSessionParams{
			Dead:  &dead,
			Won:   &won,
			State: &state,
		}
		if (dead || won) && !session.EndedAt.Valid {
			now := time.Now().UTC()
			params.EndedAt = &now
		}

		session, err = g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params)
		if err != nil {
			log.WithError(err).Error("unable to update session in db")
			return
		}

		dto := NewGameSessionDTO(session, field)
		dto.Result = result
		if err := conn.WriteJSON(dto); err != nil {
			log.WithError(err).Error("ws write failed")
			return
		}
	}
}
