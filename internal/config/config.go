// Package config loads the optional YAML config file.
//
// Every value has a default, and command line flags override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/micahco/dduwash/internal/bayerr"
	"github.com/micahco/dduwash/internal/descriptor"
	"github.com/micahco/dduwash/internal/jq"
	"github.com/micahco/dduwash/internal/schedule"
	"github.com/micahco/dduwash/internal/store"
	"github.com/micahco/dduwash/lib-bay"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is the kind of errors from Load and Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	LabelsLocalized = "localized"
	LabelsPlain     = "plain"
)

type Config struct {
	API    APIConfig    `yaml:"api"`
	Page   string       `yaml:"page"`
	Labels string       `yaml:"labels"`
	Server ServerConfig `yaml:"server"`
}

type APIConfig struct {
	// Origin is the base URL for a relative Endpoint.
	Origin   string `yaml:"origin"`
	Endpoint string `yaml:"endpoint"`

	// JQ reshapes the response body, for example ".bays" for an enveloped list.
	JQ string `yaml:"jq"`
}

type ServerConfig struct {
	Port    int           `yaml:"port"`
	Refresh string        `yaml:"refresh"`
	MaxAge  time.Duration `yaml:"max_age"`
}

// Default returns the config without any file.
func Default() Config {
	return Config{
		API: APIConfig{
			Endpoint: "/api",
		},
		Labels: LabelsLocalized,
		Server: ServerConfig{
			Port:    9000,
			Refresh: "1m",
			MaxAge:  store.DefaultMaxAge,
		},
	}
}

// Load reads the config file at path over the defaults.
// Unknown keys are errors.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, bayerr.New(ErrInvalidConfig, err, "failed to open config file")
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a config over the defaults.
func Parse(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, bayerr.New(ErrInvalidConfig, err, "failed to read config file")
	}

	cfg := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, bayerr.New(ErrInvalidConfig, err, "failed to parse config file")
	}

	return cfg, nil
}

// Validate checks every value, and reports all problems at once.
func (c Config) Validate() error {
	lb := bayerr.ListBuilder{What: ErrInvalidConfig}

	if c.API.Endpoint == "" {
		lb.Pushf("api.endpoint: required")
	} else if _, err := bay.ResolveEndpoint(c.API.Origin, c.API.Endpoint); err != nil {
		lb.Pushf("api.endpoint: %s", err)
	}

	if _, err := jq.Parse(c.API.JQ); err != nil {
		lb.Pushf("api.jq: %s", err)
	}

	if c.Labels != LabelsLocalized && c.Labels != LabelsPlain {
		lb.Pushf("labels: must be %q or %q but got %q", LabelsLocalized, LabelsPlain, c.Labels)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		lb.Pushf("server.port: out of range: %d", c.Server.Port)
	}

	if _, err := schedule.Parse(c.Server.Refresh); err != nil {
		lb.Pushf("server.refresh: %s", err)
	}

	if c.Server.MaxAge < 0 {
		lb.Pushf("server.max_age: must not be negative: %s", c.Server.MaxAge)
	}

	return lb.Build()
}

// Table returns the descriptor table for Labels.
func (c Config) Table() descriptor.Table {
	if c.Labels == LabelsPlain {
		return descriptor.Plain
	}
	return descriptor.Localized
}

// Client makes the API client.
func (c Config) Client() (*bay.Client, error) {
	client, err := bay.NewClient(c.API.Origin, c.API.Endpoint)
	if err != nil {
		return nil, err
	}

	if c.API.JQ != "" {
		q, err := jq.Parse(c.API.JQ)
		if err != nil {
			return nil, bayerr.New(ErrInvalidConfig, err, "api.jq")
		}
		client.Transformer = q
	}

	return client, nil
}

// Schedule returns the parsed refresh schedule.
func (c Config) Schedule() (schedule.Schedule, error) {
	s, err := schedule.Parse(c.Server.Refresh)
	if err != nil {
		return nil, fmt.Errorf("server.refresh: %w", err)
	}
	return s, nil
}
