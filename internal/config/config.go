package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "TREASURY_CAL_CONFIG"

	defaultAPIURL        = "https://www.treasurydirect.gov/TA_WS/securities/announced?format=json"
	defaultOutputPath    = "output/treasury-auctions.ics"
	defaultTimeout       = 30 * time.Second
	defaultCommitMessage = "chore: update Treasury auction calendar"
	defaultRemote        = "origin"
	defaultBranch        = "main"
	defaultAuthorName    = "treasurycal"
	defaultAuthorEmail   = "treasurycal@localhost"
)

// Config holds high-level settings required across the application.
// Every field has a working default; a YAML file is only consulted when
// the TREASURY_CAL_CONFIG environment variable names one.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Publish PublishConfig `yaml:"publish"`
}

// LoggingConfig selects the minimum log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SourceConfig describes the TreasuryDirect endpoint.
type SourceConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig describes where the generated calendar lands.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// PublishConfig describes how the calendar file is committed and pushed.
type PublishConfig struct {
	CommitMessage string `yaml:"commitMessage"`
	Remote        string `yaml:"remote"`
	Branch        string `yaml:"branch"`
	AuthorName    string `yaml:"authorName"`
	AuthorEmail   string `yaml:"authorEmail"`
}

// Load reads YAML configuration (if present) over the built-in defaults.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	return cfg
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Source.URL != "" {
		base.Source.URL = override.Source.URL
	}
	if override.Source.Timeout > 0 {
		base.Source.Timeout = override.Source.Timeout
	}

	if override.Output.Path != "" {
		base.Output.Path = override.Output.Path
	}

	if override.Publish.CommitMessage != "" {
		base.Publish.CommitMessage = override.Publish.CommitMessage
	}
	if override.Publish.Remote != "" {
		base.Publish.Remote = override.Publish.Remote
	}
	if override.Publish.Branch != "" {
		base.Publish.Branch = override.Publish.Branch
	}
	if override.Publish.AuthorName != "" {
		base.Publish.AuthorName = override.Publish.AuthorName
	}
	if override.Publish.AuthorEmail != "" {
		base.Publish.AuthorEmail = override.Publish.AuthorEmail
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Source: SourceConfig{
			URL:     defaultAPIURL,
			Timeout: defaultTimeout,
		},
		Output: OutputConfig{Path: defaultOutputPath},
		Publish: PublishConfig{
			CommitMessage: defaultCommitMessage,
			Remote:        defaultRemote,
			Branch:        defaultBranch,
			AuthorName:    defaultAuthorName,
			AuthorEmail:   defaultAuthorEmail,
		},
	}
}
