package scenario

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config selects the cases to run and their shared knobs.
type Config struct {
	// Iterations repeats each case this many times.
	Iterations int `yaml:"iterations"`
	// Cases lists the case names to run; empty means all known cases.
	Cases []string `yaml:"cases"`
	// Burst is the number of events pushed in one round of the queue
	// cases.
	Burst int `yaml:"burst"`
	// Sources is the number of queues combined in the merge cases.
	Sources int `yaml:"sources"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Iterations: 10_000,
		Burst:      10,
		Sources:    2,
	}
}

// Load reads a YAML scenario file. An empty path returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays EVQ_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("EVQ_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Iterations = n
		}
	}
	if v := os.Getenv("EVQ_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	if v := os.Getenv("EVQ_SOURCES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Sources = n
		}
	}
	if v := os.Getenv("EVQ_CASES"); v != "" {
		cfg.Cases = nil
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.Cases = append(cfg.Cases, p)
			}
		}
	}
}

// Validate checks the configuration and resolves the case list.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be positive, got %d", c.Burst)
	}
	if c.Sources <= 0 {
		return fmt.Errorf("sources must be positive, got %d", c.Sources)
	}
	if len(c.Cases) == 0 {
		c.Cases = CaseNames()
		return nil
	}
	for _, name := range c.Cases {
		if _, ok := cases[name]; !ok {
			return fmt.Errorf("unknown case %q (known: %s)", name, strings.Join(CaseNames(), ", "))
		}
	}
	return nil
}
