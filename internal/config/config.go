// Package config loads the optional relnotes.yaml file. Every value has a
// default, so running without a file is the common case. Octopus and GitHub
// credentials are deliberately absent: nothing in this tool contacts either.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-relnotes/internal/logging"
	"github.com/goliatone/go-relnotes/internal/output"
)

// EnvConfigPath names the environment variable consulted when no explicit
// config path is given.
const EnvConfigPath = "CONFIG_PATH"

// OutputConfig controls where the document is written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	FileName string `yaml:"file_name"`
}

// LoggerConfig mirrors logging.InitLogger parameters.
type LoggerConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ServerConfig is used by relnotes-server only.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Config models relnotes.yaml.
type Config struct {
	Output   OutputConfig `yaml:"output"`
	Logger   LoggerConfig `yaml:"logger"`
	Sanitize bool         `yaml:"sanitize"`
	Server   ServerConfig `yaml:"server"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, falling back to $CONFIG_PATH and then to defaults. A
// missing file named by $CONFIG_PATH is not an error; an explicit path that
// does not exist is.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML and applies defaults, normalisation and validation.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Output.FileName, `/\`) {
		return fmt.Errorf("output.file_name must not contain path separators")
	}
	if c.Logger.MaxSizeMB < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAgeDays < 0 {
		return fmt.Errorf("logger rotation values must be >= 0")
	}
	if c.Server.Port != "" && !strings.HasPrefix(c.Server.Port, ":") {
		return fmt.Errorf("server.port must start with ':'")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.FileName == "" {
		c.Output.FileName = output.DefaultFileName
	}
	if c.Logger.Level == "" {
		c.Logger.Level = logging.DefaultLevel
	}
	if c.Logger.MaxSizeMB == 0 {
		c.Logger.MaxSizeMB = 10
	}
	if c.Logger.MaxBackups == 0 {
		c.Logger.MaxBackups = 3
	}
	if c.Logger.MaxAgeDays == 0 {
		c.Logger.MaxAgeDays = 28
	}
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
}

func (c *Config) normalize() {
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	c.Output.FileName = strings.TrimSpace(c.Output.FileName)
	c.Logger.File = strings.TrimSpace(c.Logger.File)
	c.Logger.Level = strings.ToLower(strings.TrimSpace(c.Logger.Level))
	c.Server.Host = strings.TrimSpace(c.Server.Host)
	c.Server.Port = strings.TrimSpace(c.Server.Port)
}
