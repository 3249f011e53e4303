package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
	"github.com/carlosrabelo/fastiron/platform"
)

// DefaultTimeout applies when neither the device nor the globals set one
const DefaultTimeout = 60 * time.Second

// Config defines the global configuration
type Config struct {
	Platform          string                  `yaml:"platform"`
	Transport         string                  `yaml:"transport"`
	Username          string                  `yaml:"username"`
	Password          string                  `yaml:"password"`
	Secret            string                  `yaml:"secret"`
	Timeout           time.Duration           `yaml:"timeout"`
	Port              int                     `yaml:"port"`
	GlobalDelayFactor float64                 `yaml:"global_delay_factor"`
	Devices           []entities.DeviceConfig `yaml:"devices"`
}

func validatePlatform(name string) error {
	if !platform.IsKnown(name) {
		return fmt.Errorf("platform %s is invalid, must be one of %s or '%s'",
			name, strings.Join(platform.Available(), ", "), platform.AutoDetect)
	}
	return nil
}

func validateTransport(transport string) error {
	if transport != "telnet" && transport != "ssh" {
		return fmt.Errorf("transport %s is invalid, must be 'telnet' or 'ssh'", transport)
	}
	return nil
}

// secondsTimeouts rewrites integer `timeout` values ("timeout: 60") as
// seconds so they decode into time.Duration next to strings like "90s".
func secondsTimeouts(node *yaml.Node) {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == "timeout" && value.Kind == yaml.ScalarNode && value.Tag == "!!int" {
				value.Value += "s"
				value.Tag = "!!str"
			}
		}
	}
	for _, child := range node.Content {
		secondsTimeouts(child)
	}
}

// Load reads, merges and validates the device inventory from a YAML file
func Load(yamlFile string, verbosityLevel int) (*Config, error) {
	data, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", yamlFile, err)
	}
	return Parse(data, verbosityLevel)
}

// Parse merges and validates an inventory document
func Parse(data []byte, verbosityLevel int) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	secondsTimeouts(&doc)
	var cfg Config
	if err := doc.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	log := logging.Logger.WithField("component", "config")

	cfg.Platform = strings.ToLower(strings.TrimSpace(cfg.Platform))
	if cfg.Platform == "" {
		cfg.Platform = "fastiron"
	}
	if err := validatePlatform(cfg.Platform); err != nil {
		return nil, err
	}

	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	if cfg.Transport == "" {
		cfg.Transport = "ssh"
	}
	if err := validateTransport(cfg.Transport); err != nil {
		return nil, err
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("global timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.GlobalDelayFactor == 0 {
		cfg.GlobalDelayFactor = 1
	}
	if cfg.GlobalDelayFactor < 1 {
		return nil, fmt.Errorf("global global_delay_factor must be at least 1, got %v", cfg.GlobalDelayFactor)
	}

	log.Debugf("global values: platform=%s transport=%s timeout=%s", cfg.Platform, cfg.Transport, cfg.Timeout)

	if len(cfg.Devices) == 0 {
		return nil, fmt.Errorf("no devices defined in the YAML configuration")
	}

	seen := make(map[string]bool, len(cfg.Devices))
	for i, dev := range cfg.Devices {
		dev.Target = strings.TrimSpace(dev.Target)
		if dev.Target == "" {
			return nil, fmt.Errorf("target is required for device %d", i)
		}
		if seen[dev.Target] {
			return nil, fmt.Errorf("device %s is defined more than once", dev.Target)
		}
		seen[dev.Target] = true
		devLog := log.WithField("device", dev.Target)

		dev.Transport = strings.ToLower(strings.TrimSpace(dev.Transport))
		if dev.Transport == "" {
			dev.Transport = cfg.Transport
			devLog.Debugf("no transport defined, using global %s", cfg.Transport)
		}
		if err := validateTransport(dev.Transport); err != nil {
			return nil, fmt.Errorf("invalid transport for device %s: %w", dev.Target, err)
		}

		dev.Platform = strings.ToLower(strings.TrimSpace(dev.Platform))
		if dev.Platform == "" {
			dev.Platform = cfg.Platform
			devLog.Debugf("no platform defined, using global %s", cfg.Platform)
		}
		if err := validatePlatform(dev.Platform); err != nil {
			return nil, fmt.Errorf("invalid platform for device %s: %w", dev.Target, err)
		}

		if dev.Username == "" {
			dev.Username = cfg.Username
		}
		if dev.Username == "" {
			return nil, fmt.Errorf("username is required for device %s", dev.Target)
		}
		if dev.Password == "" {
			dev.Password = cfg.Password
		}
		if dev.Secret == "" {
			dev.Secret = cfg.Secret
		}
		if dev.Port == 0 {
			dev.Port = cfg.Port
		}
		if dev.Port < 0 || dev.Port > 65535 {
			return nil, fmt.Errorf("port %d is invalid for device %s", dev.Port, dev.Target)
		}

		if dev.Timeout < 0 {
			return nil, fmt.Errorf("timeout must be positive for device %s, got %s", dev.Target, dev.Timeout)
		}
		if dev.Timeout == 0 {
			dev.Timeout = cfg.Timeout
		}
		if dev.GlobalDelayFactor == 0 {
			dev.GlobalDelayFactor = cfg.GlobalDelayFactor
		}
		if dev.GlobalDelayFactor < 1 {
			return nil, fmt.Errorf("global_delay_factor must be at least 1 for device %s, got %v", dev.Target, dev.GlobalDelayFactor)
		}
		if dev.AltHostKeys && dev.AltKeyFile == "" {
			return nil, fmt.Errorf("alt_key_file is required when alt_host_keys is set for device %s", dev.Target)
		}

		dev.VerbosityLevel = verbosityLevel
		devLog.Debugf("final configuration: platform=%s transport=%s port=%d timeout=%s",
			dev.Platform, dev.Transport, dev.DefaultPort(), dev.Timeout)

		cfg.Devices[i] = dev
	}

	return &cfg, nil
}

// Device returns the inventory entry for target
func (c *Config) Device(target string) (entities.DeviceConfig, error) {
	for _, dev := range c.Devices {
		if dev.Target == target {
			return dev, nil
		}
	}
	return entities.DeviceConfig{}, fmt.Errorf("device %s not found in configuration", target)
}
