//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"snake/internal/app"
	"snake/internal/logging"
	"snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, logs, err := logging.Open(cfg.LogFile, os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer logs.Close()

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	if addr := session.SpectatorAddr(); addr != "" {
		logger.Info("spectator stream listening", "addr", "ws://"+addr+"/ws")
	}

	game := app.New(session, cfg)
	size := session.Loop.Size()

	ebiten.SetWindowTitle("snake")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.PanelWidth, size.H*cfg.Scale+ui.HeaderHeight)

	runErr := ebiten.RunGame(game)
	if err := session.Close(); err != nil {
		logger.Error("close session", "err", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
	logger.Info("quit")
}
