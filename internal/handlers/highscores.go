package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/drelich/minefield-server/internal/repository"
)

type HighscoreHandler struct {
	logger logrus.FieldLogger
	repo   repository.Queries
}

func NewHighscoreHandler(logger logrus.FieldLogger, db *pgxpool.Pool) *HighscoreHandler {
	return &HighscoreHandler{
		logger: logger,
		repo:   repository.New(db),
	}
}

func (h HighscoreHandler) GetHighscores(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseHighscoreFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	highscores, err := h.repo.GetHighscores(r.Context(), repository.HighscoreFilter{
		Username:  dto.Username,
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch highscores")
		return
	}

	sendJSONOrLog(w, h.logger, highscores)
}
