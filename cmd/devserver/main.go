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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/paycanvas/console/devserver"
	"github.com/paycanvas/console/internal/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("error running devserver")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("devserver stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := newConfig()
	displayAppname(c.GetAppName() + " dev")
	if c.GetEnv() == "DEV" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	handler, err := devserver.New(c)
	if err != nil {
		return fmt.Errorf("devserver.New: %w", err)
	}

	server := &http.Server{Addr: c.GetListenAddr(), Handler: handler}
	go listenAndServe(server)
	waitForStopSignal()
	returnError = shutdown(server)
	return returnError
}

func newConfig() config.Config {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		c, err := config.NewFromFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("load config file")
		}
		return c
	}
	return config.New()
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("devserver listening")
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
