package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rzbill/evq/pkg/log"
)

func testLogger() log.Logger {
	return log.NewLogger(log.WithLevel(log.ErrorLevel), log.WithOutput(log.NullOutput{}))
}

func TestRunAllCases(t *testing.T) {
	cfg := Default()
	cfg.Iterations = 3
	results, err := Run(cfg, testLogger())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != len(CaseNames()) {
		t.Fatalf("got %d results, want %d", len(results), len(CaseNames()))
	}
	for _, r := range results {
		if r.Iterations != 3 {
			t.Fatalf("case %s ran %d iterations", r.Case, r.Iterations)
		}
	}
}

func TestValidateRejectsUnknownCase(t *testing.T) {
	cfg := Default()
	cfg.Cases = []string{"no-such-case"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown case")
	}
}

func TestValidateRejectsBadKnobs(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Iterations = 0 },
		func(c *Config) { c.Burst = -1 },
		func(c *Config) { c.Sources = 0 },
	} {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	body := "iterations: 7\nburst: 4\ncases:\n  - cleanup\n  - merge-with\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Iterations != 7 || cfg.Burst != 4 || len(cfg.Cases) != 2 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Sources != Default().Sources {
		t.Fatalf("sources default lost: %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Iterations != Default().Iterations {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestFromEnvOverlay(t *testing.T) {
	t.Setenv("EVQ_ITERATIONS", "42")
	t.Setenv("EVQ_CASES", "cleanup, bidir-bounce")
	cfg := Default()
	FromEnv(&cfg)
	if cfg.Iterations != 42 {
		t.Fatalf("iterations overlay failed: %+v", cfg)
	}
	if len(cfg.Cases) != 2 || cfg.Cases[0] != "cleanup" || cfg.Cases[1] != "bidir-bounce" {
		t.Fatalf("cases overlay failed: %+v", cfg)
	}
}
