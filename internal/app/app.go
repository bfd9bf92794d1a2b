package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/drelich/minefield-server/internal/config"
	"github.com/drelich/minefield-server/internal/database"
	"github.com/drelich/minefield-server/internal/middleware"
)

type App struct {
	logger  *logrus.Logger
	router  *http.ServeMux
	db      *pgxpool.Pool
	cookies *config.Cookies
	ws      *config.WebSocket
}

func New(logger *logrus.Logger) *App {
	return &App{
		logger: logger,
		router: http.NewServeMux(),
	}
}

// Start runs migrations, wires the routes and serves until ctx is
// canceled, then drains connections for up to 30 seconds.
func (a *App) Start(ctx context.Context) error {
	db, _, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()
	a.db = db

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return err
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	addr := ":" + config.Port()
	if addr == ":" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Auth(a.logger, cookies),
			middleware.Logging(a.logger),
			middleware.Cors(),
		),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.WithField("addr", addr).Info("server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
