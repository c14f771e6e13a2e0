// Package config loads the optional hanword.ini tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "gopkg.in/ini.v1"
)

// Config carries the CLI defaults. Zero values mean built-in behavior:
// the bundled dubeolsik layout, jamo input (not QWERTY keys), and the
// standard interactive prompt.
type Config struct {
	LayoutFile string
	Qwerty     bool
	Prompt     string
}

const defaultPrompt = "> "

// Default is the configuration used when no file exists.
func Default() Config {
	return Config{Prompt: defaultPrompt}
}

// Load reads path. A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.LayoutFile = file.Section("layout").Key("file").MustString(cfg.LayoutFile)
	cfg.Qwerty = file.Section("input").Key("qwerty").MustBool(cfg.Qwerty)
	cfg.Prompt = file.Section("interactive").Key("prompt").MustString(cfg.Prompt)
	return cfg, nil
}

// Resolve picks the config file to load: an explicit CLI path wins,
// then ./hanword.ini when present, otherwise none.
func Resolve(cliPath string) string {
	if cliPath != "" {
		return cliPath
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(cwd, "hanword.ini")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
