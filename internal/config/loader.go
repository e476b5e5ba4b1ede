package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load builds a validated config from defaults, the YAML file at path (none
// when empty) and WHALEHUNT_* environment variables, in that order.
func Load(path string) (*GameConfig, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "config: load %s", path)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv reads .env style files into the process environment. Missing files
// are skipped and variables already set win.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "config: env file %s", f)
		}
	}
	return nil
}

func applyEnv(cfg *GameConfig) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WHALEHUNT_WIDTH", &cfg.Grid.Width},
		{"WHALEHUNT_HEIGHT", &cfg.Grid.Height},
		{"WHALEHUNT_MAX_TURNS", &cfg.MaxTurns},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s", e.key)
		}
		*e.dst = n
	}
	if v := os.Getenv("WHALEHUNT_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "config: WHALEHUNT_SEED")
		}
		cfg.Seed = n
	}
	return nil
}
