package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/jask/scholarmatch/internal/api"
	"github.com/jask/scholarmatch/internal/config"
	"github.com/jask/scholarmatch/internal/tui"
)

func main() {
	ctx := context.Background()

	// A missing .env is fine; it only supplies optional overrides.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(tint.NewHandler(logFile, &tint.Options{
		Level:      logLevel(cfg.Log.Level),
		TimeFormat: time.Kitchen,
		NoColor:    true,
	})))

	client := api.New(cfg.Server.URL, time.Duration(cfg.Server.Timeout)*time.Second, slog.Default())

	p := tea.NewProgram(tui.New(ctx, cfg, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// logLevel maps the configured level name onto slog's scale, defaulting to
// info for anything unrecognized.
func logLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
