package ports

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by drivers and transports
var (
	ErrConnection         = errors.New("connection failed")
	ErrNotOpen            = errors.New("session not open")
	ErrUnsupportedVersion = errors.New("unsupported software version")
	ErrParse              = errors.New("unexpected device output")
	ErrVariantUnknown     = errors.New("device variant not resolved")
	ErrCommandRejected    = errors.New("command rejected by device")
	ErrConfig             = errors.New("invalid configuration request")
	ErrNotSupported       = errors.New("operation not supported")
)

// ConnectionError reports a failure to establish or authenticate a session
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() []error {
	return []error{ErrConnection, e.Err}
}

// NewConnectionError creates a connection error for target
func NewConnectionError(target string, err error) *ConnectionError {
	return &ConnectionError{Target: target, Err: err}
}

// CommandRejectedError names the command the device refused
type CommandRejectedError struct {
	Command string
	Output  string
}

func (e *CommandRejectedError) Error() string {
	return fmt.Sprintf("unable to execute command %q", e.Command)
}

func (e *CommandRejectedError) Unwrap() error {
	return ErrCommandRejected
}

// NewCommandRejectedError creates a rejection error for command
func NewCommandRejectedError(command, output string) *CommandRejectedError {
	return &CommandRejectedError{Command: command, Output: output}
}
