package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle              = "Contact Form"
	DefaultFirstNameMinLength = 5

	configDirName  = "contactform"
	configFileName = "config.yaml"
)

type FormConfig struct {
	Title              string `yaml:"title"`
	FirstNameMinLength int    `yaml:"first_name_min_length"`
	LogFile            string `yaml:"log_file,omitempty"`
	Debug              bool   `yaml:"debug,omitempty"`
}

// LoadFormConfig reads the YAML config at path, then applies environment
// overrides. An empty path falls back to the user config directory, where a
// missing file is not an error.
func LoadFormConfig(path string) (*FormConfig, error) {
	config := GetDefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if path != "" {
		if err := config.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *FormConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return nil
}

func (c *FormConfig) applyEnv() {
	c.Title = getEnvOrDefault("CONTACTFORM_TITLE", c.Title)
	c.FirstNameMinLength = parseIntOrDefault("CONTACTFORM_FIRST_NAME_MIN", c.FirstNameMinLength)
	c.LogFile = getEnvOrDefault("CONTACTFORM_LOG_FILE", c.LogFile)
	if IsDebugEnabled() {
		c.Debug = true
	}
}

func (c *FormConfig) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}

	if c.FirstNameMinLength < 1 {
		return fmt.Errorf("first name minimum length must be positive, got: %d", c.FirstNameMinLength)
	}

	return nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/contactform/config.yaml or the
// platform equivalent, or "" when no config directory is known
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, configFileName)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func GetDefaultConfig() *FormConfig {
	return &FormConfig{
		Title:              DefaultTitle,
		FirstNameMinLength: DefaultFirstNameMinLength,
	}
}

func IsDebugEnabled() bool {
	return os.Getenv("CONTACTFORM_DEBUG") == "true" || os.Getenv("CONTACTFORM_DEBUG") == "1"
}
