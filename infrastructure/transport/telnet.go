package transport

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ziutek/telnet"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
)

// TelnetClient manages a Telnet connection to a device
type TelnetClient struct {
	conn         *telnet.Conn
	config       entities.DeviceConfig
	authSequence []entities.AuthPrompt
	log          *logrus.Entry
}

// NewTelnetClient creates a new Telnet client with the given configuration
func NewTelnetClient(cfg entities.DeviceConfig) *TelnetClient {
	return &TelnetClient{config: cfg, log: logging.WithDevice(cfg.Target)}
}

// SetAuthSequence configures the authentication sequence for this client
func (tc *TelnetClient) SetAuthSequence(prompts []entities.AuthPrompt) {
	tc.authSequence = prompts
}

// DefaultAuthSequence is the FastIron telnet login dialogue. Both steps are
// optional since switches without `enable telnet authentication` open
// straight to the exec prompt.
func DefaultAuthSequence(cfg entities.DeviceConfig) []entities.AuthPrompt {
	return []entities.AuthPrompt{
		{WaitFor: PromptLogin, SendCmd: cfg.Username + "\n", Optional: true},
		{WaitFor: PromptPassword, SendCmd: cfg.Password + "\n", Optional: true},
	}
}

// Connect establishes a Telnet connection, logs in and enters privileged mode
func (tc *TelnetClient) Connect() error {
	if tc.conn != nil {
		return nil
	}
	timeout := tc.config.ReadTimeout()
	addr := net.JoinHostPort(tc.config.Target, strconv.Itoa(tc.config.DefaultPort()))
	conn, err := telnet.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return ports.NewConnectionError(tc.config.Target, err)
	}
	tc.conn = conn
	tc.log.Debug("connected via telnet")

	prompts := tc.authSequence
	if len(prompts) == 0 {
		prompts = DefaultAuthSequence(tc.config)
	}
	var initial string
	for _, p := range prompts {
		patterns := []string{p.WaitFor}
		if p.Optional {
			patterns = append(patterns, PromptPrivileged, PromptEnable)
		}
		output, err := tc.readUntilAny(patterns, timeout)
		if err != nil {
			tc.Disconnect()
			return ports.NewConnectionError(tc.config.Target, fmt.Errorf("failed to wait for %s: %w, output: %s", p.WaitFor, err, output))
		}
		if matched, _ := matchPrompt(output, patterns); matched != p.WaitFor {
			tc.log.Debugf("no %s prompt, device is at its exec prompt", p.WaitFor)
			initial = output
			break
		}
		if p.SendCmd != "" {
			if err := tc.send(p.SendCmd); err != nil {
				tc.Disconnect()
				return ports.NewConnectionError(tc.config.Target, err)
			}
			tc.log.Debugf("answered prompt %s", p.WaitFor)
		}
	}

	if initial == "" {
		if initial, err = tc.readUntilAny([]string{PromptPrivileged, PromptEnable}, timeout); err != nil {
			tc.Disconnect()
			return ports.NewConnectionError(tc.config.Target, err)
		}
	}
	if !strings.Contains(initial, PromptPrivileged) {
		if err := elevate(tc, tc.config, timeout); err != nil {
			tc.Disconnect()
			return ports.NewConnectionError(tc.config.Target, err)
		}
	}
	if err := disablePaging(tc, timeout); err != nil {
		tc.Disconnect()
		return ports.NewConnectionError(tc.config.Target, err)
	}
	return nil
}

func (tc *TelnetClient) send(data string) error {
	if err := tc.conn.SetWriteDeadline(time.Now().Add(tc.config.ReadTimeout())); err != nil {
		return err
	}
	_, err := tc.conn.Write([]byte(data))
	return err
}

// readUntilAny reads from the Telnet connection until one of the patterns is found
func (tc *TelnetClient) readUntilAny(patterns []string, timeout time.Duration) (string, error) {
	buffer := make([]byte, BufferSize)
	var output strings.Builder
	output.Grow(BufferSize)
	deadline := time.Now().Add(timeout)
	if err := tc.conn.SetReadDeadline(deadline); err != nil {
		return "", err
	}
	for time.Now().Before(deadline) {
		n, err := tc.conn.Read(buffer)
		if n > 0 {
			output.Write(buffer[:n])
			if _, ok := matchPrompt(output.String(), patterns); ok {
				return output.String(), nil
			}
		}
		if err != nil {
			return output.String(), fmt.Errorf("read error: %w", err)
		}
		if n == 0 {
			time.Sleep(pollInterval)
		}
	}
	return output.String(), fmt.Errorf("timeout waiting for prompts %s", strings.Join(patterns, ", "))
}

// Disconnect closes the Telnet connection
func (tc *TelnetClient) Disconnect() {
	if tc.conn != nil {
		tc.conn.Close()
		tc.log.Debug("disconnected")
		tc.conn = nil
	}
}

// IsConnected reports whether a connection is open
func (tc *TelnetClient) IsConnected() bool {
	return tc.conn != nil
}

// ExecuteCommand sends a command to the device and returns its output
func (tc *TelnetClient) ExecuteCommand(cmd string) (string, error) {
	if tc.conn == nil {
		return "", ports.ErrNotOpen
	}
	tc.log.WithField("command", cmd).Debug("executing")
	if err := tc.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %w", cmd, err)
	}
	output, err := tc.readUntilAny([]string{PromptPrivileged}, tc.config.ReadTimeout())
	if err != nil {
		return "", fmt.Errorf("error executing %s: %w", cmd, err)
	}
	output = trimCommandOutput(output)
	if tc.config.IsRawOutputEnabled() {
		tc.log.WithField("command", cmd).Trace(output)
	}
	return output, nil
}
