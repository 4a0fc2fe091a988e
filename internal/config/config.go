package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models portview.yml.
type Config struct {
	Portfolio struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		CreatedBy   string   `yaml:"created_by"`
		Sector      string   `yaml:"sector"`
		Region      string   `yaml:"region"`
		Tags        []string `yaml:"tags"`
	} `yaml:"portfolio"`
	Server struct {
		Addr     string `yaml:"addr"`
		BasePath string `yaml:"base_path"`
	} `yaml:"server"`
	Seed struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"seed"`
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config %s not found; create one with pv config init", path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// LoadOptional returns nil,nil if the config file does not exist.
func LoadOptional(workspace string) (*Config, error) {
	path := Path(workspace)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Portfolio.ID == "" {
		return fmt.Errorf("config.portfolio.id is required")
	}
	if c.Portfolio.Name == "" {
		return fmt.Errorf("config.portfolio.name is required")
	}
	for _, tag := range c.Portfolio.Tags {
		if tag == "" {
			return fmt.Errorf("config.portfolio.tags contains an empty tag")
		}
	}
	if c.Server.BasePath != "" && c.Server.BasePath[0] != '/' {
		return fmt.Errorf("config.server.base_path must start with /")
	}
	return nil
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "portview.yml")
}

// GenerateDefault returns default config YAML.
func GenerateDefault(portfolioID string) string {
	return fmt.Sprintf(defaultTemplate, portfolioID)
}

// Default returns the default Config struct for a portfolio.
func Default(portfolioID string) *Config {
	var cfg Config
	cfg.Portfolio.ID = portfolioID
	_ = yaml.NewDecoder(bytes.NewBufferString(fmt.Sprintf(defaultTemplate, portfolioID))).Decode(&cfg)
	return &cfg
}

// FromYAML parses and validates config from raw YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}

const defaultTemplate = `portfolio:
  id: %s
  name: "Sustainable City Transformation"
  description: "Comprehensive urban sustainability initiative"
  created_by: "portfolio-admin"
  sector: "Urban Development"
  region: "Metro Area"
  tags: [sustainability, urban-planning, climate-action]

server:
  addr: ":8080"
  base_path: /v0

seed:
  enabled: true
`
