package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
)

// MockTransportClient implements the transport.Client interface for testing
type MockTransportClient struct {
	connected    bool
	connectError error
	executedCmds []string
	cmdResponses map[string]string
}

func (m *MockTransportClient) Connect() error {
	if m.connectError != nil {
		return m.connectError
	}
	m.connected = true
	return nil
}

func (m *MockTransportClient) Disconnect() {
	m.connected = false
}

func (m *MockTransportClient) ExecuteCommand(cmd string) (string, error) {
	m.executedCmds = append(m.executedCmds, cmd)
	if resp, exists := m.cmdResponses[cmd]; exists {
		return resp, nil
	}
	return "Invalid input -> " + cmd, nil
}

func (m *MockTransportClient) IsConnected() bool {
	return m.connected
}

func newMockFastIron(extra map[string]string) *MockTransportClient {
	responses := map[string]string{
		"show version | include SW: Version": "  SW: Version 08.0.30eT213",
	}
	for cmd, resp := range extra {
		responses[cmd] = resp
	}
	return &MockTransportClient{cmdResponses: responses}
}

func testConfig(platform string) entities.DeviceConfig {
	return entities.DeviceConfig{
		Target:    "192.168.1.1",
		Platform:  platform,
		Transport: "ssh",
		Username:  "admin",
		Password:  "password",
	}
}

func TestNewStateApplicationService(t *testing.T) {
	service := NewStateApplicationService(testConfig("fastiron"), &MockTransportClient{})
	if service == nil {
		t.Fatal("NewStateApplicationService() returned nil")
	}
	if service.repo == nil {
		t.Fatal("StateApplicationService.repo is nil")
	}
}

func TestStateApplicationService_Collect(t *testing.T) {
	for _, platform := range []string{"fastiron", "icx", "auto", ""} {
		t.Run(platform, func(t *testing.T) {
			client := newMockFastIron(map[string]string{
				"show arp": "h\nh\nh\n1  10.0.0.1  1122.3344.5566  Dynamic  120  1/1  Valid",
			})
			service := NewStateApplicationService(testConfig(platform), client)

			snap, err := service.Collect([]string{"arp"})
			if err != nil {
				t.Fatalf("Collect() error = %v", err)
			}
			want := []entities.ArpEntry{{Interface: "1/1", MAC: "11:22:33:44:55:66", IP: "10.0.0.1", Age: 120}}
			if diff := cmp.Diff(want, snap.ArpTable); diff != "" {
				t.Errorf("ArpTable mismatch (-want +got):\n%s", diff)
			}
			if client.connected {
				t.Error("session left open after Collect()")
			}
		})
	}
}

func TestStateApplicationService_UnknownPlatform(t *testing.T) {
	client := newMockFastIron(nil)
	service := NewStateApplicationService(testConfig("ios"), client)
	if _, err := service.Collect(nil); err == nil {
		t.Fatal("Collect() expected error for unknown platform")
	}
	if len(client.executedCmds) != 0 {
		t.Errorf("commands sent for unknown platform: %v", client.executedCmds)
	}
}

func TestStateApplicationService_CLI(t *testing.T) {
	client := newMockFastIron(map[string]string{"show clock": "10:00:00"})
	service := NewStateApplicationService(testConfig("fastiron"), client)

	got, err := service.CLI([]string{"show clock"})
	if err != nil {
		t.Fatalf("CLI() error = %v", err)
	}
	if got["show clock"] != "10:00:00" {
		t.Errorf("CLI() = %v", got)
	}

	_, err = service.CLI([]string{"show bogus"})
	if !errors.Is(err, ports.ErrCommandRejected) {
		t.Errorf("CLI() error = %v, want ErrCommandRejected", err)
	}
}

func TestStateApplicationService_GetConfig(t *testing.T) {
	client := newMockFastIron(map[string]string{"show running-config": "hostname sw1"})
	service := NewStateApplicationService(testConfig("fastiron"), client)

	got, err := service.GetConfig("running")
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}
	if got.Running != "hostname sw1" {
		t.Errorf("GetConfig() = %+v", got)
	}
}

func TestStateApplicationService_Merge(t *testing.T) {
	tests := []struct {
		name      string
		commit    bool
		wantWrite bool
	}{
		{name: "dry run", commit: false},
		{name: "commit", commit: true, wantWrite: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockFastIron(map[string]string{
				"configure terminal": "",
				"hostname sw2":       "",
				"end":                "",
				"write memory":       "",
			})
			service := NewStateApplicationService(testConfig("fastiron"), client)

			diff, err := service.Merge("", "hostname sw2", tt.commit)
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if diff != "+ hostname sw2\n" {
				t.Errorf("Merge() diff = %q", diff)
			}
			wrote := false
			for _, cmd := range client.executedCmds {
				if cmd == "write memory" {
					wrote = true
				}
			}
			if wrote != tt.wantWrite {
				t.Errorf("write memory sent = %v, want %v", wrote, tt.wantWrite)
			}
		})
	}
}

func TestStateApplicationService_MergeArgumentsCheckedBeforeConnect(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		config   string
	}{
		{name: "neither"},
		{name: "both", filename: "candidate.cfg", config: "hostname sw2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockTransportClient{connectError: errors.New("connection refused")}
			service := NewStateApplicationService(testConfig("fastiron"), client)
			if _, err := service.Merge(tt.filename, tt.config, false); !errors.Is(err, ports.ErrConfig) {
				t.Errorf("Merge() error = %v, want ErrConfig", err)
			}
			if len(client.executedCmds) != 0 {
				t.Errorf("commands sent = %v, want none", client.executedCmds)
			}
		})
	}
}

func TestStateApplicationService_ConnectError(t *testing.T) {
	client := &MockTransportClient{connectError: errors.New("connection refused")}
	service := NewStateApplicationService(testConfig("fastiron"), client)
	if _, err := service.CLI([]string{"show clock"}); !errors.Is(err, ports.ErrConnection) {
		t.Errorf("CLI() error = %v, want ErrConnection", err)
	}
}
