package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config collects the runtime knobs. Environment variables fill the
// defaults, then flags override per run.
type Config struct {
	Dev       bool   `env:"MIRRORHALL_DEV"`
	RoomsDir  string `env:"MIRRORHALL_ROOMS_DIR"`
	ExportDir string `env:"MIRRORHALL_EXPORT_DIR"`
	StartRoom int    `env:"MIRRORHALL_START_ROOM"`
}

// LoadConfig parses environment variables then the command line.
func LoadConfig(args []string) (Config, error) {
	cfg := Config{StartRoom: 1, ExportDir: "."}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("mirrorhall", flag.ContinueOnError)
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "watch the rooms dir and reload the manifest between rooms")
	fs.StringVar(&cfg.RoomsDir, "rooms", cfg.RoomsDir, "rooms dir overriding the embedded set")
	fs.StringVar(&cfg.ExportDir, "export", cfg.ExportDir, "directory walkthrough exports are written to")
	fs.IntVar(&cfg.StartRoom, "room", cfg.StartRoom, "room index a new session starts in")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.StartRoom < 1 {
		return cfg, fmt.Errorf("start room %d out of range", cfg.StartRoom)
	}
	return cfg, nil
}
