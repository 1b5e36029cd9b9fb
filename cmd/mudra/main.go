package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(logger)

	cfgPath := configPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("Failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}
	level.Set(parseLevel(cfg.Log.Level))

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0755); err != nil {
		logger.Error("Failed to create data directory", "error", err)
		os.Exit(1)
	}

	st, err := store.New(cfg.Store.Path)
	if err != nil {
		logger.Error("Failed to initialize store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	manager := app.NewManager(st)

	srv := server.New(server.Config{
		StaticDir: cfg.Server.StaticDir,
		Store:     st,
		Manager:   manager,
	})

	// Log level follows the config file without a restart
	stop, err := config.Watch(cfgPath, func(fresh *config.Config) {
		level.Set(parseLevel(fresh.Log.Level))
		logger.Info("Config reloaded", "log_level", fresh.Log.Level)
	})
	if err != nil {
		logger.Warn("Config watching disabled", "error", err)
	} else {
		defer stop()
	}

	logger.Info("Starting server", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// configPath resolves the config file location, honoring MUDRA_CONFIG.
func configPath() string {
	if p := os.Getenv("MUDRA_CONFIG"); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".mudra", "config.toml")
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
