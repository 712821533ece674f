// Command stubapi runs the development stand-in for the retail backend on
// the port the gateway points at by default.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog/log"

	"github.com/shopdesk/portalgate/internal/config"
	"github.com/shopdesk/portalgate/stubapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running stub backend")
	}
	log.Info().Msg("stub backend stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	displayAppname("Stub API")

	key := config.GetEnv("STUBAPI_SIGNING_KEY", "dev-only-signing-key")
	api, err := stubapi.New([]byte(key))
	if err != nil {
		return fmt.Errorf("stubapi.New: %w", err)
	}

	addr := config.GetEnv("STUBAPI_PORT", ":9090")
	if addr[0] != ':' {
		addr = ":" + addr
	}
	httpServer := &http.Server{Addr: addr, Handler: api}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("stub backend listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
