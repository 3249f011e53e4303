package entities

import (
	"testing"
	"time"
)

func TestDeviceConfig_IsDebugEnabled(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		expected       bool
	}{
		{name: "verbosity level 0", verbosityLevel: 0, expected: false},
		{name: "verbosity level 1", verbosityLevel: 1, expected: true},
		{name: "verbosity level 2", verbosityLevel: 2, expected: false},
		{name: "verbosity level 3", verbosityLevel: 3, expected: true},
		{name: "verbosity level 4", verbosityLevel: 4, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DeviceConfig{VerbosityLevel: tt.verbosityLevel}
			if result := config.IsDebugEnabled(); result != tt.expected {
				t.Errorf("IsDebugEnabled() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_IsRawOutputEnabled(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		expected       bool
	}{
		{name: "verbosity level 0", verbosityLevel: 0, expected: false},
		{name: "verbosity level 1", verbosityLevel: 1, expected: false},
		{name: "verbosity level 2", verbosityLevel: 2, expected: true},
		{name: "verbosity level 3", verbosityLevel: 3, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DeviceConfig{VerbosityLevel: tt.verbosityLevel}
			if result := config.IsRawOutputEnabled(); result != tt.expected {
				t.Errorf("IsRawOutputEnabled() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_DefaultPort(t *testing.T) {
	tests := []struct {
		name     string
		config   DeviceConfig
		expected int
	}{
		{name: "ssh default", config: DeviceConfig{Transport: "ssh"}, expected: 22},
		{name: "telnet default", config: DeviceConfig{Transport: "telnet"}, expected: 23},
		{name: "empty transport", config: DeviceConfig{}, expected: 22},
		{name: "explicit port", config: DeviceConfig{Transport: "telnet", Port: 2323}, expected: 2323},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.DefaultPort(); got != tt.expected {
				t.Errorf("DefaultPort() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDeviceConfig_ReadTimeout(t *testing.T) {
	tests := []struct {
		name     string
		config   DeviceConfig
		expected time.Duration
	}{
		{name: "zero falls back", config: DeviceConfig{}, expected: 60 * time.Second},
		{name: "explicit", config: DeviceConfig{Timeout: 10 * time.Second}, expected: 10 * time.Second},
		{name: "delay factor scales", config: DeviceConfig{Timeout: 10 * time.Second, GlobalDelayFactor: 2}, expected: 20 * time.Second},
		{name: "factor below one ignored", config: DeviceConfig{Timeout: 10 * time.Second, GlobalDelayFactor: 0.5}, expected: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.ReadTimeout(); got != tt.expected {
				t.Errorf("ReadTimeout() = %v, want %v", got, tt.expected)
			}
		})
	}
}
