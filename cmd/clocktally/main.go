package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/clocktally/internal/cli"
	"github.com/alexanderramin/clocktally/internal/config"
	"github.com/alexanderramin/clocktally/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Diagnostics share stderr with the day listing; stdout carries only the row.
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app := &cli.App{
		Reports:  service.NewReportService(logger, service.NewLogReportObserver(logger)),
		Config:   cfg,
		Logger:   logger,
		LogLevel: level,
		IsTerminal: func(w io.Writer) bool {
			f, ok := w.(*os.File)
			if !ok {
				return false
			}
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
