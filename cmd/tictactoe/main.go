package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/OmerBS123/tic-tac-toe/internal/logger"
	"github.com/OmerBS123/tic-tac-toe/internal/storage"
	"github.com/OmerBS123/tic-tac-toe/services/game"
)

func main() {
	dbPath := flag.String("db", "tictactoe.db", "path to the SQLite database")
	logPath := flag.String("log", "", "write logs to this file (off when empty)")
	flag.Parse()

	log := logger.Discard()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.New(f, slog.LevelDebug)
	}

	store, err := storage.Open(*dbPath, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := logger.NewContext(context.Background(), log)

	gameService := game.New(store, log)
	if err := gameService.Play(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
