package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsgame/internal/app"
	"github.com/robalobadob/wordsgame/internal/config"
	"github.com/robalobadob/wordsgame/internal/countdown"
	"github.com/robalobadob/wordsgame/internal/httpserver"
	"github.com/robalobadob/wordsgame/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	srv := httpserver.New(httpserver.Options{
		Store:        store.NewMemoryStore(),
		Pick:         deps.Pick,
		Checker:      deps.Checker,
		Secret:       cfg.Server.RoundSecret,
		ClientOrigin: cfg.Server.ClientOrigin,
		Production:   cfg.IsProduction(),
		RoundTTL:     cfg.Game.RoundTTL,
	})

	go countdown.Run(ctx, cfg.Game.TickInterval, func() { srv.TickAll(ctx) })

	hs := &http.Server{Addr: cfg.GetAddr(), Handler: srv.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", hs.Addr).Msg("starting go-server")
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
