//go:build !integration

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/crgw/booking-hub/internal/storage"
	"bitbucket.org/crgw/booking-hub/internal/tools/logging"
	"bitbucket.org/crgw/booking-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/booking-hub/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

// run drives the server loop and closes the store once the loop exits.
// os.Exit skips deferred calls, so the close has to happen before main
// hands the code to it.
func run(log *zerolog.Logger, store io.Closer, httpServer *http.Server) int {
	exitCode := serverApp(httpServer, log)

	if err := store.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close database cleanly")
	}

	return exitCode
}

func main() {
	_ = godotenv.Load(".env")
	log := logging.New(os.Getenv("LOG_LEVEL"))

	store, err := storage.Open(storage.ConfigFromEnv())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	redisFactory := redisfactory.New()

	appRouter := web.SetupRouter(log, store, redisFactory)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, os.Getenv("PORT")),
		Handler: appRouter,
	}

	os.Exit(run(log, store, httpServer))
}
