package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/paycanvas/console/api"
	"github.com/paycanvas/console/auth"
	"github.com/paycanvas/console/console"
	"github.com/paycanvas/console/internal/config"
	"github.com/paycanvas/console/session"
)

func main() {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := run(); err != nil {
		zlog.Fatal().Err(err).Msg("error running console")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := newConfig()
	displayAppname(c.GetAppName())

	// Credentials persist across runs in the data folder, so a still-valid
	// session skips the login screen.
	kv := session.NewFileKV(filepath.Join(c.GetDataFolder(), "credentials.json"))
	store := session.NewStore(kv)
	bus := session.NewBus()

	var term *console.Console
	client, err := api.New(c.GetBaseURL(), store, bus, api.WithInvalidatedHook(func() {
		if term != nil {
			term.SessionInvalidated()
		}
	}))
	if err != nil {
		return fmt.Errorf("api.New: %w", err)
	}

	controller, err := auth.NewController(client, store, bus)
	if err != nil {
		return fmt.Errorf("auth.NewController: %w", err)
	}
	defer controller.Close()

	term = console.New(controller, client, os.Stdin, os.Stdout)
	return term.Run(context.Background())
}

func newConfig() config.Config {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		c, err := config.NewFromFile(path)
		if err != nil {
			zlog.Fatal().Err(err).Str("path", path).Msg("load config file")
		}
		return c
	}
	return config.New()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
