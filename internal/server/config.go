package server

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultAddr is the listen address used when neither flag nor env set one.
const DefaultAddr = ":8080"

// Environment variables read as flag fallbacks.
const (
	EnvAddr       = "FORMBUILDER_ADDR"
	EnvBlueprints = "FORMBUILDER_BLUEPRINTS"
	EnvDebug      = "FORMBUILDER_DEBUG"
)

// Config holds the server binary settings.
type Config struct {
	Addr       string
	Blueprints string
	Debug      bool
}

// LoadEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("server: load env %s: %w", file, err)
		}
	}
	return nil
}

// ParseFlags reads the command line, falling back to the environment for
// anything not given as a flag.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("formbuilder-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "", "listen address (env "+EnvAddr+", default "+DefaultAddr+")")
	fs.StringVar(&cfg.Blueprints, "blueprints", "", "directory of blueprint files (env "+EnvBlueprints+", default embedded set)")
	debug := fs.String("debug", "", "log at DEBUG level (env "+EnvDebug+")")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Addr == "" {
		cfg.Addr = os.Getenv(EnvAddr)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Blueprints == "" {
		cfg.Blueprints = os.Getenv(EnvBlueprints)
	}

	raw := *debug
	if raw == "" {
		raw = os.Getenv(EnvDebug)
	}
	if raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("server: invalid debug value %q", raw)
		}
		cfg.Debug = value
	}
	return cfg, nil
}
