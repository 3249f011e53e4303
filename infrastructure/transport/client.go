package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
)

const (
	BufferSize       = 4096
	PromptLogin      = "Login Name:"
	PromptUsername   = "User Name:"
	PromptPassword   = "Password:"
	PromptEnable     = ">"
	PromptPrivileged = "#"
	SkipPageDisplay  = "skip-page-display"
	pollInterval     = 100 * time.Millisecond
)

// New returns the transport client selected by cfg.Transport
func New(cfg entities.DeviceConfig) Client {
	if cfg.Transport == "telnet" {
		return NewTelnetClient(cfg)
	}
	return NewSSHClient(cfg)
}

// trimCommandOutput drops the echoed command line and the trailing prompt line
func trimCommandOutput(output string) string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.ReplaceAll(output, "\r", "")
	lines := strings.Split(output, "\n")
	if len(lines) > 1 {
		return strings.Join(lines[1:len(lines)-1], "\n")
	}
	return ""
}

// promptSession is the raw send/expect surface shared by the transports
type promptSession interface {
	send(data string) error
	readUntilAny(patterns []string, timeout time.Duration) (string, error)
}

// elevate enters privileged mode from user exec, answering the optional
// username prompt and the enable password prompt
func elevate(s promptSession, cfg entities.DeviceConfig, timeout time.Duration) error {
	logging.WithDevice(cfg.Target).Debug("elevating to privileged mode")
	if err := s.send("enable\n"); err != nil {
		return fmt.Errorf("send enable: %w", err)
	}
	output, err := s.readUntilAny([]string{PromptUsername, PromptPassword, PromptPrivileged}, timeout)
	if err != nil {
		return err
	}
	if strings.Contains(output, PromptUsername) {
		if err := s.send(cfg.Username + "\n"); err != nil {
			return fmt.Errorf("send enable username: %w", err)
		}
		if output, err = s.readUntilAny([]string{PromptPassword, PromptPrivileged}, timeout); err != nil {
			return err
		}
	}
	if strings.Contains(output, PromptPassword) {
		if err := s.send(cfg.Secret + "\n"); err != nil {
			return fmt.Errorf("send enable secret: %w", err)
		}
		if _, err := s.readUntilAny([]string{PromptPrivileged}, timeout); err != nil {
			return err
		}
	}
	return nil
}

// disablePaging turns off the --More-- pager for the rest of the session
func disablePaging(s promptSession, timeout time.Duration) error {
	if err := s.send(SkipPageDisplay + "\n"); err != nil {
		return fmt.Errorf("disable paging: %w", err)
	}
	_, err := s.readUntilAny([]string{PromptPrivileged}, timeout)
	return err
}

// matchPrompt reports which pattern the buffered output ends with. Output
// bodies can contain prompt characters ("Serial #:"), so only the tail counts.
func matchPrompt(text string, patterns []string) (string, bool) {
	tail := strings.TrimRight(text, " \t\r\n")
	for _, pattern := range patterns {
		if strings.HasSuffix(tail, pattern) {
			return pattern, true
		}
	}
	return "", false
}
