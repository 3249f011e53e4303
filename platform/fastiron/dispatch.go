package fastiron

import (
	"strings"

	"github.com/carlosrabelo/fastiron/domain/ports"
)

// invalidInputMarker is printed by FastIron when it cannot parse a command
const invalidInputMarker = "Invalid input"

// Dispatcher sends commands over a session and applies command fallback.
type Dispatcher struct {
	repo ports.SwitchRepository
}

// NewDispatcher wraps repo.
func NewDispatcher(repo ports.SwitchRepository) *Dispatcher {
	return &Dispatcher{repo: repo}
}

// Send executes cmd verbatim and returns its trimmed output.
func (d *Dispatcher) Send(cmd string) (string, error) {
	output, err := d.repo.ExecuteCommand(cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// SendFirst tries each command in order and returns the first output the
// device did not reject. When every variant is rejected the last output is
// returned unchanged; callers that need strictness check isRejected.
func (d *Dispatcher) SendFirst(cmds ...string) (string, error) {
	var output string
	for _, cmd := range cmds {
		out, err := d.Send(cmd)
		if err != nil {
			return "", err
		}
		output = out
		if !isRejected(out) {
			break
		}
	}
	return output, nil
}

func isRejected(output string) bool {
	return strings.Contains(output, invalidInputMarker)
}
