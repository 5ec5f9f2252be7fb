// Command weather-term shows the rain and snow overlay in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/senk-showcase/internal/logger"
	"github.com/iburimskiy/senk-showcase/internal/prefs"
	"github.com/iburimskiy/senk-showcase/internal/term"
)

func main() {
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "write logs to this file; the terminal is busy drawing")
	flag.Parse()

	lvl, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.CurrentLevel = lvl
	logger.Color = false

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger.SetOutput(out)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := term.New(screen, term.Options{Prefs: prefs.Open()})
	if err := app.Run(ctx); err != nil {
		logger.Error("weather-term: %v", err)
	}
}
