package aoc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config selects what Run runs and where the inputs come from.
type Config struct {
	Year int `yaml:"year"`
	// Day restricts the run to one day. Zero or negative runs all days.
	Day int `yaml:"day"`
	// Part restricts the run to one part ("1", "2", ...).
	Part       string `yaml:"part"`
	OnlySample bool   `yaml:"sample"`
	SkipSample bool   `yaml:"skip_sample"`
	Debug      bool   `yaml:"debug"`
	// Parallel bounds how many accounts are solved at once.
	Parallel int       `yaml:"parallel"`
	Accounts []Account `yaml:"accounts"`

	Out    io.Writer    `yaml:"-"`
	Logger *slog.Logger `yaml:"-"`
}

// Account is one set of puzzle inputs, typically belonging to a single
// login on the puzzle site.
type Account struct {
	Name string `yaml:"name"`
	// Input is the input file path. "{day}" is replaced with the
	// two-digit day number.
	Input string `yaml:"input"`
	// Want maps solver method names (e.g. "D12p1") to known answers.
	Want map[string]string `yaml:"want"`
}

// InputPath returns the input file for day.
func (a Account) InputPath(day int) string {
	return strings.ReplaceAll(a.Input, "{day}", fmt.Sprintf("%02d", day))
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates a YAML config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration mistakes that would otherwise show up
// halfway through a run.
func (c Config) Validate() error {
	if c.OnlySample && c.SkipSample {
		return fmt.Errorf("config: sample and skip_sample are mutually exclusive")
	}
	if c.Parallel < 0 {
		return fmt.Errorf("config: parallel cannot be negative (%d)", c.Parallel)
	}
	names := make(map[string]bool, len(c.Accounts))
	for i, a := range c.Accounts {
		if a.Name == "" {
			return fmt.Errorf("config: account %d has no name", i)
		}
		if a.Input == "" {
			return fmt.Errorf("config: account %q has no input", a.Name)
		}
		if names[a.Name] {
			return fmt.Errorf("config: duplicate account %q", a.Name)
		}
		names[a.Name] = true
	}
	return nil
}
