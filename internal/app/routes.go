package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/drelich/minefield-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	auth := handlers.NewAuthHandler(a.logger, a.db, a.cookies)
	game := handlers.NewGameHandler(a.logger, a.db, a.cookies, a.ws, createRand())
	highscores := handlers.NewHighscoreHandler(a.logger, a.db)

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	a.router.HandleFunc("GET /v1/highscores", highscores.GetHighscores)

	a.router.HandleFunc("POST /v1/game", game.NewGame)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/step", game.Step)
	a.router.HandleFunc("POST /v1/game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST /v1/game/{id}/chord", game.Chord)
	a.router.HandleFunc("POST /v1/game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("POST /v1/game/{id}/batch", game.Batch)
	a.router.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)
}
