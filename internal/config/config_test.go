package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Fatalf("default prompt = %q", cfg.Prompt)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanword.ini")
	contents := `[layout]
file = my-layout.ini

[input]
qwerty = true

[interactive]
prompt = ::
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LayoutFile != "my-layout.ini" {
		t.Fatalf("LayoutFile = %q", cfg.LayoutFile)
	}
	if !cfg.Qwerty {
		t.Fatalf("Qwerty should be true")
	}
	if cfg.Prompt != "::" {
		t.Fatalf("Prompt = %q", cfg.Prompt)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("a directory must be rejected")
	}
}
