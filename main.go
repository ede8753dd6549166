package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songdrop/internal/app"
	"github.com/llehouerou/songdrop/internal/catalog"
	"github.com/llehouerou/songdrop/internal/config"
	"github.com/llehouerou/songdrop/internal/errmsg"
	"github.com/llehouerou/songdrop/internal/icons"
	"github.com/llehouerou/songdrop/internal/player"
	"github.com/llehouerou/songdrop/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpLoadConfig, err))
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	icons.Init(cfg.Icons)

	ctx := context.Background()
	st, err := store.OpenSeeded(ctx, catalog.SampleData(time.Now()))
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpStoreOpen, err))
		os.Exit(1)
	}
	defer st.Close()

	if cfg.Username != "" {
		if err := st.SetUsername(ctx, cfg.Username); err != nil {
			fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
			os.Exit(1)
		}
	}

	m := app.New(cfg, st, player.New(), time.Now)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog logger. Without a configured file
// logs are discarded since the terminal belongs to the UI.
func setupLogging(cfg *config.Config) (func(), error) {
	if !cfg.HasLogFile() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	path, err := cfg.LogFilePath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)})
	slog.SetDefault(slog.New(handler))
	slog.Info("songdrop starting", "icons", cfg.Icons)
	return func() { f.Close() }, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
