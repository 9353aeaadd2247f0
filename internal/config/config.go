package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName        = "rosterstats.yaml"
	DefaultTimeout         = 30 * time.Second
	DefaultStatsSheet      = "Stats"
	DefaultCharactersSheet = "Characters"
	DefaultExportPath      = "data.json"

	envPrefix      = "rosterstats"
	allyCodeDigits = 9
)

type ProjectConfig struct {
	Project string        `yaml:"project"`
	Version int           `yaml:"version"`
	Service ServiceConfig `yaml:"service"`
	Player  PlayerConfig  `yaml:"player"`
	Sink    SinkConfig    `yaml:"sink"`
	Export  ExportConfig  `yaml:"export"`
}

type ServiceConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type PlayerConfig struct {
	AllyCode string `yaml:"ally_code"`
}

type SinkConfig struct {
	DSN             string `yaml:"dsn"`
	Spreadsheet     string `yaml:"spreadsheet"`
	StatsSheet      string `yaml:"stats_sheet"`
	CharactersSheet string `yaml:"characters_sheet"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

// envOverrides are read from ROSTERSTATS_* variables and win over the file.
type envOverrides struct {
	AllyCode string `split_words:"true"`
	BaseURL  string `split_words:"true"`
	SinkDSN  string `split_words:"true"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyDefaults(&cfg)
	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg.Player.AllyCode = NormalizeAllyCode(cfg.Player.AllyCode)
	return &cfg, nil
}

func applyDefaults(cfg *ProjectConfig) {
	if cfg.Service.Timeout == 0 {
		cfg.Service.Timeout = DefaultTimeout
	}
	if strings.TrimSpace(cfg.Sink.StatsSheet) == "" {
		cfg.Sink.StatsSheet = DefaultStatsSheet
	}
	if strings.TrimSpace(cfg.Sink.CharactersSheet) == "" {
		cfg.Sink.CharactersSheet = DefaultCharactersSheet
	}
	if strings.TrimSpace(cfg.Sink.Spreadsheet) == "" {
		cfg.Sink.Spreadsheet = cfg.Project
	}
	if strings.TrimSpace(cfg.Export.Path) == "" {
		cfg.Export.Path = DefaultExportPath
	}
}

func applyEnv(cfg *ProjectConfig) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if env.AllyCode != "" {
		cfg.Player.AllyCode = env.AllyCode
	}
	if env.BaseURL != "" {
		cfg.Service.BaseURL = env.BaseURL
	}
	if env.SinkDSN != "" {
		cfg.Sink.DSN = env.SinkDSN
	}
	return nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if err := validateBaseURL(cfg.Service.BaseURL); err != nil {
		return err
	}
	if cfg.Service.Timeout < 0 {
		return fmt.Errorf("service timeout must be positive")
	}
	if err := ValidateAllyCode(cfg.Player.AllyCode); err != nil {
		return err
	}
	if err := validateDSN(cfg.Sink.DSN); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Sink.StatsSheet), strings.TrimSpace(cfg.Sink.CharactersSheet)) {
		return fmt.Errorf("stats and characters sheets must differ: %s", cfg.Sink.StatsSheet)
	}
	return nil
}

func validateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("service base_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid service base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service base_url must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("service base_url has no host")
	}
	return nil
}

func validateDSN(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return fmt.Errorf("sink dsn is required")
	}
	for _, prefix := range []string{"sqlite://", "postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return nil
		}
	}
	return fmt.Errorf("unsupported sink dsn scheme: %s", dsn)
}

// NormalizeAllyCode strips the dashes and spaces players use when sharing codes.
func NormalizeAllyCode(code string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(code))
}

func ValidateAllyCode(code string) error {
	normalized := NormalizeAllyCode(code)
	if normalized == "" {
		return fmt.Errorf("player ally_code is required")
	}
	if len(normalized) != allyCodeDigits {
		return fmt.Errorf("ally code %q must have %d digits", code, allyCodeDigits)
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return fmt.Errorf("ally code %q must be numeric", code)
		}
	}
	return nil
}
