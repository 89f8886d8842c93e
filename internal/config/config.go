// Package config loads and persists the sjrank configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/sjrtools/sjrank/internal/logging"
	"github.com/sjrtools/sjrank/internal/sjr"
)

// InputConfig describes where the yearly subject-area exports live and how
// their file names are built.
type InputConfig struct {
	Dir           string   `mapstructure:"dir"`
	SubjectAreas  []string `mapstructure:"subject_areas"`
	SourcePattern string   `mapstructure:"source_pattern"`
}

// OutputConfig describes where consolidated ranking tables are written.
type OutputConfig struct {
	Dir            string `mapstructure:"dir"`
	RankingPattern string `mapstructure:"ranking_pattern"`
}

// YearsConfig is the inclusive year span processed by default.
type YearsConfig struct {
	First int `mapstructure:"first"`
	Last  int `mapstructure:"last"`
}

// DatabaseConfig locates the optional sqlite rankings store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Years    YearsConfig    `mapstructure:"years"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  logging.Config `mapstructure:"logging"`
}

// DefaultConfig returns the configuration matching the SJR portal's export
// conventions and the three subject areas the rankings are unioned from.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir: ".",
			SubjectAreas: []string{
				"Computer Science",
				"Psychology",
				"Business, Management and Accounting",
			},
			SourcePattern: sjr.DefaultSourcePattern,
		},
		Output: OutputConfig{
			Dir:            ".",
			RankingPattern: sjr.DefaultRankingPattern,
		},
		Years:   YearsConfig{First: 1999, Last: 2024},
		Logging: logging.DefaultConfig(),
	}
}

// YearRange expands the configured span into a slice of years.
func (c *Config) YearRange() []int {
	if c.Years.Last < c.Years.First {
		return nil
	}
	years := make([]int, 0, c.Years.Last-c.Years.First+1)
	for y := c.Years.First; y <= c.Years.Last; y++ {
		years = append(years, y)
	}
	return years
}

// DatabasePath returns the configured store path, falling back to the
// default location next to the config file.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rankings.db"), nil
}

// ConfigPath returns the path to the config file (~/.config/sjrank/config.toml).
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigExists reports whether a config file is present.
func ConfigExists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to get config dir: %w", err)
	}
	return filepath.Join(base, "sjrank"), nil
}

// Load reads the config file if present, otherwise returns defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file, layering it over the defaults.
// A missing file is not an error; defaults are returned.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(c.ToTOML()), 0644)
}

// ToTOML renders the configuration as a commented TOML document.
func (c *Config) ToTOML() string {
	var sb strings.Builder

	sb.WriteString("# sjrank configuration\n\n")

	sb.WriteString("[input]\n")
	sb.WriteString(fmt.Sprintf("dir = %q\n", c.Input.Dir))
	sb.WriteString("subject_areas = [\n")
	for _, area := range c.Input.SubjectAreas {
		sb.WriteString(fmt.Sprintf("    %q,\n", area))
	}
	sb.WriteString("]\n")
	sb.WriteString(fmt.Sprintf("source_pattern = %q\n\n", c.Input.SourcePattern))

	sb.WriteString("[output]\n")
	sb.WriteString(fmt.Sprintf("dir = %q\n", c.Output.Dir))
	sb.WriteString(fmt.Sprintf("ranking_pattern = %q\n\n", c.Output.RankingPattern))

	sb.WriteString("[years]\n")
	sb.WriteString(fmt.Sprintf("first = %d\n", c.Years.First))
	sb.WriteString(fmt.Sprintf("last = %d\n\n", c.Years.Last))

	sb.WriteString("[database]\n")
	sb.WriteString(fmt.Sprintf("path = %q\n\n", c.Database.Path))

	sb.WriteString("[logging]\n")
	sb.WriteString(fmt.Sprintf("level = %q\n", c.Logging.Level))
	sb.WriteString(fmt.Sprintf("file = %q\n", c.Logging.File))
	sb.WriteString(fmt.Sprintf("max_size_mb = %d\n", c.Logging.MaxSizeMB))

	return sb.String()
}
