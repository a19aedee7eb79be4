package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatal("expected footer enabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatal("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"SHELFCTL_WIDTH=100", "SHELFCTL_VERBOSE=true"}
	cfg, err := LoadArgs([]string{"-width", "80"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag to win over env, got %d", cfg.App.Width)
	}
	if !cfg.App.Verbose {
		t.Fatal("expected env verbose to apply")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	env := []string{"SHELFCTL_WIDTH=notanumber", "SHELFCTL_FOOTER=maybe", "garbage"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected fallback width, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter {
		t.Fatal("expected fallback footer value")
	}
}
