package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config captures the console and host settings backscroll reads at startup.
type Config struct {
	MaxLines      int
	Collapse      bool
	Timestamps    bool
	FrameInterval time.Duration
	FrameRefresh  bool
	Follow        []string
	TailLines     int
	Heartbeat     string
	LogDir        string
}

const (
	defaultConfigPath    = "~/.config/backscroll/config.toml"
	defaultLogDir        = "~/.local/state/backscroll"
	defaultMaxLines      = 10
	defaultFrameInterval = 100 * time.Millisecond
	defaultTailLines     = 20
	minFrameInterval     = 16 * time.Millisecond
)

// raw mirrors the file format. Pointers tell "unset" apart from zero values.
type raw struct {
	MaxLines        *int     `toml:"max_lines" yaml:"max_lines"`
	Collapse        *bool    `toml:"collapse" yaml:"collapse"`
	Timestamps      *bool    `toml:"timestamps" yaml:"timestamps"`
	FrameIntervalMS *int     `toml:"frame_interval_ms" yaml:"frame_interval_ms"`
	FrameRefresh    *bool    `toml:"frame_refresh" yaml:"frame_refresh"`
	Follow          []string `toml:"follow" yaml:"follow"`
	TailLines       *int     `toml:"tail_lines" yaml:"tail_lines"`
	Heartbeat       string   `toml:"heartbeat" yaml:"heartbeat"`
	LogDir          string   `toml:"log_dir" yaml:"log_dir"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxLines:      defaultMaxLines,
		Collapse:      true,
		FrameInterval: defaultFrameInterval,
		TailLines:     defaultTailLines,
		LogDir:        mustExpand(defaultLogDir),
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
// Files ending in .yaml or .yml are read as YAML, everything else as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var r raw
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &r)
	default:
		err = toml.Unmarshal(bytes, &r)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.apply(r); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(r raw) error {
	if r.MaxLines != nil && *r.MaxLines > 0 {
		c.MaxLines = *r.MaxLines
	}
	if r.Collapse != nil {
		c.Collapse = *r.Collapse
	}
	if r.Timestamps != nil {
		c.Timestamps = *r.Timestamps
	}
	if r.FrameIntervalMS != nil && *r.FrameIntervalMS > 0 {
		c.FrameInterval = max(time.Duration(*r.FrameIntervalMS)*time.Millisecond, minFrameInterval)
	}
	if r.FrameRefresh != nil {
		c.FrameRefresh = *r.FrameRefresh
	}
	if r.TailLines != nil && *r.TailLines >= 0 {
		c.TailLines = *r.TailLines
	}

	for _, p := range r.Follow {
		if strings.TrimSpace(p) == "" {
			continue
		}
		c.Follow = append(c.Follow, mustExpand(p))
	}

	c.Heartbeat = strings.TrimSpace(r.Heartbeat)
	if c.Heartbeat != "" {
		if _, err := cron.ParseStandard(c.Heartbeat); err != nil {
			return fmt.Errorf("parse heartbeat %q: %w", c.Heartbeat, err)
		}
	}

	if dir := strings.TrimSpace(r.LogDir); dir != "" {
		c.LogDir = mustExpand(dir)
	}
	return nil
}

// DebugLogPath returns the path of the debug log file.
func (c Config) DebugLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/backscroll.log")
	}
	return filepath.Join(c.LogDir, "backscroll.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
