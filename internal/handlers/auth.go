package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/drelich/minefield-server/internal/config"
	"github.com/drelich/minefield-server/internal/middleware"
	"github.com/drelich/minefield-server/internal/repository"
)

type AuthHandler struct {
	logger  logrus.FieldLogger
	repo    repository.Queries
	cookies *config.Cookies
}

func NewAuthHandler(
	logger logrus.FieldLogger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
	}
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrBadCredentials     = fmt.Errorf("invalid username or password")
)

// parseCredentials pulls username and password out of a url-encoded
// body, enforcing the bcrypt input limit.
func parseCredentials(r *http.Request) (username, password string, err error) {
	if err = r.ParseForm(); err != nil {
		return "", "", ErrBadAuthBody
	}
	username = r.FormValue("username")
	password = r.FormValue("password")
	if username == "" || password == "" {
		return "", "", ErrBadAuthBody
	}
	if len(password) > 72 {
		return "", "", ErrBadPasswordTooLong
	}
	return username, password, nil
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, err := parseCredentials(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to hash password")
		return
	}

	player, err := h.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to insert player")
		return
	}

	if err := h.cookies.Issue(w, player.PlayerId, player.Username); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to issue session cookies")
	}
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, err := parseCredentials(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	player, err := h.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.logger, wrapError(ErrBadCredentials))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to fetch player")
		return
	}

	if bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password)) != nil {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.logger, wrapError(ErrBadCredentials))
		return
	}

	if err := h.cookies.Issue(w, player.PlayerId, player.Username); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to issue session cookies")
	}
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
}

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type Status struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

func (h AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r.Context())
	if !ok {
		h.cookies.Clear(w)
		sendJSONOrLog(w, h.logger, &Status{LoggedIn: false})
		return
	}

	if err := h.cookies.Issue(w, claims.PlayerId, claims.Username); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to refresh session cookies")
		return
	}
	sendJSONOrLog(w, h.logger, &Status{
		LoggedIn: true,
		Player:   &PlayerInfo{claims.PlayerId, claims.Username},
	})
}
