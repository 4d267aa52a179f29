package main

import (
	"flag"
	"log"
	"os"

	"snake/internal/app"
	"snake/internal/logging"
	"snake/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg := app.NewConfig()
	cfg.LogFile = "snake-tui.log"
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal belongs to the game, so logs go to a file.
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

	p := tea.NewProgram(tui.New(session.Loop, cfg.TPS, cfg.Seed, logger), tea.WithAltScreen())
	_, runErr := p.Run()
	if err := session.Close(); err != nil {
		logger.Error("close session", "err", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
	logger.Info("quit")
}
