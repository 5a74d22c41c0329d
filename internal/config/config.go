// Package config provides configuration management for nodesim.
//
// Configuration covers the shape of generated networks and ambient settings
// (logging); the topology itself is never persisted.
//
// Config file locations (priority order):
//  1. $NODESIM_CONFIG
//  2. ./nodesim.yaml
//  3. ~/.config/nodesim/config.yaml
//  4. /etc/nodesim/config.yaml
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Version  int    `yaml:"version"`
	LogLevel string `yaml:"log_level"`

	// CSI is the default customer identifier attached to new networks.
	CSI string `yaml:"csi"`

	Defaults  Defaults  `yaml:"defaults"`
	Placement Placement `yaml:"placement"`
}

// Defaults holds the per-level fan-out and timing used when a request leaves
// a value unset.
type Defaults struct {
	HeartbeatSeconds int `yaml:"heartbeat_seconds"`
	HubsPerNetwork   int `yaml:"hubs_per_network"`
	APsPerHub        int `yaml:"aps_per_hub"`
	RTsPerAP         int `yaml:"rts_per_ap"`
}

// Placement controls where generated RTs land relative to their AP.
type Placement struct {
	// MaxDiffDeg bounds the lat/lon jitter, in degrees, applied to each RT
	// around its AP's position.
	MaxDiffDeg float64 `yaml:"max_diff_deg"`
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the defaults used when no config file exists.
// The fan-out mirrors the largest expected deployment shape: 32 APs per hub,
// 64 RTs per AP.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		LogLevel: "info",
		CSI:      "CBNG001",
		Defaults: Defaults{
			HeartbeatSeconds: 30,
			HubsPerNetwork:   1,
			APsPerHub:        32,
			RTsPerAP:         64,
		},
		Placement: Placement{MaxDiffDeg: 0.4},
	}
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.CSI == "" {
		c.CSI = def.CSI
	}
	if c.Defaults.HeartbeatSeconds == 0 {
		c.Defaults.HeartbeatSeconds = def.Defaults.HeartbeatSeconds
	}
	if c.Defaults.HubsPerNetwork == 0 {
		c.Defaults.HubsPerNetwork = def.Defaults.HubsPerNetwork
	}
	if c.Defaults.APsPerHub == 0 {
		c.Defaults.APsPerHub = def.Defaults.APsPerHub
	}
	if c.Defaults.RTsPerAP == 0 {
		c.Defaults.RTsPerAP = def.Defaults.RTsPerAP
	}
	if c.Placement.MaxDiffDeg == 0 {
		c.Placement.MaxDiffDeg = def.Placement.MaxDiffDeg
	}
}
