package config

import (
	"fmt"
	"os"
	"time"

	"github.com/druarnfield/careerpath/internal/chart"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Wizard WizardConfig `toml:"wizard"`
	Export ExportConfig `toml:"export"`
	Theme  ThemeConfig  `toml:"theme"`
	Limits LimitsConfig `toml:"limits"`
	Source SourceConfig `toml:"source"`
}

type WizardConfig struct {
	// Delay is the simulated analysis latency, as a Go duration string.
	Delay         string `toml:"delay"`
	RequireInput  bool   `toml:"require_input"`
	// MarkdownStyle is a glamour style name or "auto".
	MarkdownStyle string `toml:"markdown_style"`
}

type ExportConfig struct {
	Filename   string `toml:"filename"`
	Dir        string `toml:"dir"`
	ChromePath string `toml:"chrome_path"`
	Timeout    string `toml:"timeout"`
	Open       bool   `toml:"open"`
}

type ThemeConfig struct {
	Text       string `toml:"text"`
	Background string `toml:"background"`
	Grid       string `toml:"grid"`
	Accent     string `toml:"accent"`
	Fill       string `toml:"fill"`
}

type LimitsConfig struct {
	PerMinute int `toml:"per_minute"`
	PerDay    int `toml:"per_day"`
}

type SourceConfig struct {
	// File, when set, replaces the mock recommendations with a JSON or YAML file.
	File string `toml:"file"`
}

func Defaults() *Config {
	return &Config{
		Wizard: WizardConfig{Delay: "1s", MarkdownStyle: "auto"},
		Export: ExportConfig{Filename: "career-recommendations.pdf", Timeout: "60s"},
		Theme: ThemeConfig{
			Text:       "#EEEEEE",
			Background: "#222831",
			Grid:       "#31363F",
			Accent:     "#76ABAE",
			Fill:       "rgba(118, 171, 174, 0.2)",
		},
		Limits: LimitsConfig{PerMinute: 15, PerDay: 1500},
	}
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	if _, err := c.AnalysisDelay(); err != nil {
		return err
	}
	if _, err := c.ExportTimeout(); err != nil {
		return err
	}
	if c.Export.Filename == "" {
		return fmt.Errorf("export.filename must not be empty")
	}
	if err := c.ChartTheme().Validate(); err != nil {
		return err
	}
	if c.Limits.PerMinute < 0 || c.Limits.PerDay < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	return nil
}

// AnalysisDelay parses wizard.delay.
func (c *Config) AnalysisDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Wizard.Delay)
	if err != nil {
		return 0, fmt.Errorf("wizard.delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("wizard.delay: must not be negative, got %s", d)
	}
	return d, nil
}

// ExportTimeout parses export.timeout.
func (c *Config) ExportTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Export.Timeout)
	if err != nil {
		return 0, fmt.Errorf("export.timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("export.timeout: must be positive, got %s", d)
	}
	return d, nil
}

// ChartTheme converts the theme section for the chart and export packages.
func (c *Config) ChartTheme() chart.Theme {
	return chart.Theme{
		Text:       c.Theme.Text,
		Background: c.Theme.Background,
		Grid:       c.Theme.Grid,
		Accent:     c.Theme.Accent,
		Fill:       c.Theme.Fill,
	}
}
