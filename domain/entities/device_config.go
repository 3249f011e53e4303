package entities

import "time"

// DeviceConfig defines the connection settings for a single device
type DeviceConfig struct {
	Target            string        `yaml:"target"`
	Platform          string        `yaml:"platform"`
	Transport         string        `yaml:"transport"`
	Port              int           `yaml:"port"`
	Username          string        `yaml:"username"`
	Password          string        `yaml:"password"`
	Secret            string        `yaml:"secret"`
	Timeout           time.Duration `yaml:"timeout"`
	SSHStrict         bool          `yaml:"ssh_strict"`
	SystemHostKeys    bool          `yaml:"system_host_keys"`
	AltHostKeys       bool          `yaml:"alt_host_keys"`
	AltKeyFile        string        `yaml:"alt_key_file"`
	UseKeys           bool          `yaml:"use_keys"`
	KeyFile           string        `yaml:"key_file"`
	AllowAgent        bool          `yaml:"allow_agent"`
	GlobalDelayFactor float64       `yaml:"global_delay_factor"`
	VerbosityLevel    int           `yaml:"-"`
}

// IsDebugEnabled returns true if debug logs are enabled
func (dc DeviceConfig) IsDebugEnabled() bool {
	return dc.VerbosityLevel == 1 || dc.VerbosityLevel == 3
}

// IsRawOutputEnabled returns true if raw device output is enabled
func (dc DeviceConfig) IsRawOutputEnabled() bool {
	return dc.VerbosityLevel == 2 || dc.VerbosityLevel == 3
}

// DefaultPort returns the well-known port for the configured transport
// unless an explicit port is set.
func (dc DeviceConfig) DefaultPort() int {
	if dc.Port > 0 {
		return dc.Port
	}
	if dc.Transport == "telnet" {
		return 23
	}
	return 22
}

// ReadTimeout returns the per-command timeout scaled by the delay factor.
func (dc DeviceConfig) ReadTimeout() time.Duration {
	timeout := dc.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if dc.GlobalDelayFactor > 1 {
		timeout = time.Duration(float64(timeout) * dc.GlobalDelayFactor)
	}
	return timeout
}
