package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vibe-coding/getsel/pkg/clipboard"
	"github.com/vibe-coding/getsel/pkg/selection"
)

const (
	DefaultHotkey   = "ctrl+shift+x"
	DefaultSettleMs = 150
)

type Settings struct {
	TimeoutMs      uint32 `yaml:"timeout_ms"`
	PollIntervalMs uint32 `yaml:"poll_interval_ms"`
	PrintTiming    bool   `yaml:"print_timing"`
	Backend        string `yaml:"backend"` // empty picks per command
	Hotkey         string `yaml:"hotkey"`
	SettleMs       uint32 `yaml:"settle_ms"`
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		TimeoutMs:      uint32(selection.DefaultTimeout / time.Millisecond),
		PollIntervalMs: uint32(selection.DefaultPollInterval / time.Millisecond),
		Hotkey:         DefaultHotkey,
		SettleMs:       DefaultSettleMs,
	}
}

// CaptureConfig converts the settings for a capture.
func (s *Settings) CaptureConfig() (selection.Config, error) {
	backend, err := clipboard.ParseBackend(s.Backend)
	if err != nil {
		return selection.Config{}, err
	}
	return selection.Config{
		Timeout:      selection.TimeoutOf(time.Duration(s.TimeoutMs) * time.Millisecond),
		PollInterval: time.Duration(s.PollIntervalMs) * time.Millisecond,
		PrintTiming:  s.PrintTiming,
		Backend:      backend,
	}, nil
}

// Settle is how long the hotkey monitor waits before capturing.
func (s *Settings) Settle() time.Duration {
	return time.Duration(s.SettleMs) * time.Millisecond
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".getsel", "config.yaml"), nil
}

// Load reads the settings file at path. Fields missing from the file keep
// their defaults; a missing file yields Defaults().
func Load(path string) (*Settings, error) {
	s := Defaults()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
