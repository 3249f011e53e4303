package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestValidatePlatform(t *testing.T) {
	tests := []struct {
		name      string
		platform  string
		expectErr bool
	}{
		{name: "valid fastiron", platform: "fastiron"},
		{name: "valid alias", platform: "brocade"},
		{name: "valid auto", platform: "auto"},
		{name: "invalid platform", platform: "ios", expectErr: true},
		{name: "empty platform", platform: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePlatform(tt.platform)
			if (err != nil) != tt.expectErr {
				t.Errorf("validatePlatform(%q) error = %v, expectErr %v", tt.platform, err, tt.expectErr)
			}
		})
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
transport: ssh
username: admin
password: password
secret: enable
timeout: 30s
devices:
  - target: 192.168.1.1
  - target: 192.168.1.2
    platform: ICX
    transport: TELNET
    username: operator
    password: other
    global_delay_factor: 2
  - target: 192.168.1.3
    ssh_strict: true
    alt_host_keys: true
    alt_key_file: /etc/fastiron/known_hosts
`)
	cfg, err := Load(path, 1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []entities.DeviceConfig{
		{
			Target: "192.168.1.1", Platform: "fastiron", Transport: "ssh",
			Username: "admin", Password: "password", Secret: "enable",
			Timeout: 30 * time.Second, GlobalDelayFactor: 1, VerbosityLevel: 1,
		},
		{
			Target: "192.168.1.2", Platform: "icx", Transport: "telnet",
			Username: "operator", Password: "other", Secret: "enable",
			Timeout: 30 * time.Second, GlobalDelayFactor: 2, VerbosityLevel: 1,
		},
		{
			Target: "192.168.1.3", Platform: "fastiron", Transport: "ssh",
			Username: "admin", Password: "password", Secret: "enable",
			Timeout: 30 * time.Second, GlobalDelayFactor: 1, VerbosityLevel: 1,
			SSHStrict: true, AltHostKeys: true, AltKeyFile: "/etc/fastiron/known_hosts",
		},
	}
	if diff := cmp.Diff(want, cfg.Devices); diff != "" {
		t.Errorf("devices mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
username: admin
devices:
  - target: sw1
`)
	cfg, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	dev := cfg.Devices[0]
	if dev.Platform != "fastiron" || dev.Transport != "ssh" || dev.Timeout != DefaultTimeout || dev.GlobalDelayFactor != 1 {
		t.Errorf("unexpected defaults: %+v", dev)
	}
	if dev.DefaultPort() != 22 {
		t.Errorf("DefaultPort() = %d, want 22", dev.DefaultPort())
	}
}

func TestParse_TimeoutSeconds(t *testing.T) {
	cfg, err := Parse([]byte(`
timeout: 60
username: admin
devices:
  - target: sw1
  - target: sw2
    timeout: 90s
  - target: sw3
    timeout: 5
`), 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []time.Duration{60 * time.Second, 90 * time.Second, 5 * time.Second}
	for i, dev := range cfg.Devices {
		if dev.Timeout != want[i] {
			t.Errorf("device %s timeout = %s, want %s", dev.Target, dev.Timeout, want[i])
		}
	}

	if _, err := Parse([]byte("timeout: -5\nusername: a\ndevices:\n  - target: sw1\n"), 0); err == nil {
		t.Error("expected error for negative integer timeout")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "bad transport",
			content: "transport: http\nusername: a\ndevices:\n  - target: sw1\n",
			wantMsg: "transport http is invalid",
		},
		{
			name:    "bad device platform",
			content: "username: a\ndevices:\n  - target: sw1\n    platform: ios\n",
			wantMsg: "invalid platform for device sw1",
		},
		{
			name:    "missing target",
			content: "username: a\ndevices:\n  - platform: fastiron\n",
			wantMsg: "target is required for device 0",
		},
		{
			name:    "missing username",
			content: "devices:\n  - target: sw1\n",
			wantMsg: "username is required for device sw1",
		},
		{
			name:    "negative timeout",
			content: "username: a\ntimeout: -5s\ndevices:\n  - target: sw1\n",
			wantMsg: "global timeout must be positive",
		},
		{
			name:    "delay factor below one",
			content: "username: a\ndevices:\n  - target: sw1\n    global_delay_factor: 0.5\n",
			wantMsg: "global_delay_factor must be at least 1 for device sw1",
		},
		{
			name:    "duplicate device",
			content: "username: a\ndevices:\n  - target: sw1\n  - target: sw1\n",
			wantMsg: "defined more than once",
		},
		{
			name:    "alt host keys without file",
			content: "username: a\ndevices:\n  - target: sw1\n    alt_host_keys: true\n",
			wantMsg: "alt_key_file is required",
		},
		{
			name:    "no devices",
			content: "username: a\n",
			wantMsg: "no devices defined",
		},
		{
			name:    "malformed yaml",
			content: "devices: [",
			wantMsg: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), 0)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), 0); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestConfig_Device(t *testing.T) {
	cfg := &Config{Devices: []entities.DeviceConfig{{Target: "sw1"}, {Target: "sw2", Platform: "icx"}}}
	dev, err := cfg.Device("sw2")
	if err != nil {
		t.Fatalf("Device() error = %v", err)
	}
	if dev.Platform != "icx" {
		t.Errorf("Device() = %+v", dev)
	}
	if _, err := cfg.Device("sw3"); err == nil {
		t.Error("Device() expected error for unknown target")
	}
}
