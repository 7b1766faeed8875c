// Package config loads the pagecraft.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pagecraft.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete pagecraft.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Output is the build output directory served and published by the CLI.
	Output string `json:"output,omitempty"`

	// Dev contains preview server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// DevConfig contains preview server configuration.
type DevConfig struct {
	// Host is the interface the preview server binds to.
	Host string `json:"host,omitempty"`

	// Port is the preview server port.
	Port int `json:"port,omitempty"`

	// Ignore lists glob patterns the file watcher skips.
	Ignore []string `json:"ignore,omitempty"`
}

// PublishConfig contains S3 publishing configuration.
type PublishConfig struct {
	// Bucket is the target S3 bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix uploads are placed under.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	c := &Config{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	c.configPath = path
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromWorkingDir loads pagecraft.json from the current directory,
// falling back to defaults when the file does not exist.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	path := filepath.Join(wd, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Path returns where the configuration was loaded from, empty for defaults.
func (c *Config) Path() string { return c.configPath }

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
}

func (c *Config) validate() error {
	if c.Dev.Port < 1 || c.Dev.Port > 65535 {
		return fmt.Errorf("config: dev.port %d out of range", c.Dev.Port)
	}
	return nil
}
