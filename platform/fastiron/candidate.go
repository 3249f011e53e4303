package fastiron

import (
	"fmt"
	"os"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
)

const (
	runningConfigCommand = "show running-config"
	startupConfigCommand = "show configuration"
	configureCommand     = "configure terminal"
	endCommand           = "end"
	writeMemoryCommand   = "write memory"
)

// GetConfig returns the requested configuration scopes. Scopes that were
// not requested are left empty.
func (d *Driver) GetConfig(scope string) (entities.ConfigSet, error) {
	if err := d.ensureOpen(); err != nil {
		return entities.ConfigSet{}, err
	}
	if scope == "" {
		scope = entities.ScopeAll
	}
	var set entities.ConfigSet
	switch scope {
	case entities.ScopeAll, entities.ScopeRunning, entities.ScopeStartup, entities.ScopeCandidate:
	default:
		return set, fmt.Errorf("%w: unknown config scope %q", ports.ErrConfig, scope)
	}

	if scope == entities.ScopeAll || scope == entities.ScopeRunning {
		running, err := d.dispatcher.Send(runningConfigCommand)
		if err != nil {
			return entities.ConfigSet{}, err
		}
		set.Running = running
	}
	if scope == entities.ScopeAll || scope == entities.ScopeStartup {
		startup, err := d.dispatcher.Send(startupConfigCommand)
		if err != nil {
			return entities.ConfigSet{}, err
		}
		set.Startup = startup
	}
	if scope == entities.ScopeAll || scope == entities.ScopeCandidate {
		set.Candidate = strings.Join(d.candidate, "\n")
	}
	return set, nil
}

// LoadMergeCandidate stages configuration lines from exactly one of a file
// or an inline string. Nothing is sent to the device until CommitConfig.
func (d *Driver) LoadMergeCandidate(filename, config string) error {
	if (filename == "") == (config == "") {
		return fmt.Errorf("%w: exactly one of filename or config must be given", ports.ErrConfig)
	}
	if err := d.ensureOpen(); err != nil {
		return err
	}
	text := config
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ports.ErrConfig, filename, err)
		}
		text = string(data)
	}
	lines := candidateLines(text)
	d.candidate = append(d.candidate, lines...)
	d.log.WithField("lines", len(lines)).Debug("staged candidate config")
	return nil
}

// CompareConfig renders the staged candidate as a diff against the
// running configuration.
func (d *Driver) CompareConfig() (string, error) {
	if err := d.ensureOpen(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, line := range d.candidate {
		b.WriteString("+ ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// DiscardConfig drops the staged candidate.
func (d *Driver) DiscardConfig() error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	d.candidate = nil
	return nil
}

// CommitConfig applies the staged candidate in configuration mode and saves
// it to startup. A rejected line aborts the commit and keeps the candidate.
func (d *Driver) CommitConfig() error {
	if err := d.ensureOpen(); err != nil {
		return err
	}
	if len(d.candidate) == 0 {
		return fmt.Errorf("%w: no candidate configuration loaded", ports.ErrConfig)
	}
	if err := d.sendChecked(configureCommand); err != nil {
		return err
	}
	for _, line := range d.candidate {
		if err := d.sendChecked(line); err != nil {
			if _, endErr := d.dispatcher.Send(endCommand); endErr != nil {
				d.log.WithError(endErr).Warn("failed to leave configuration mode")
			}
			return err
		}
	}
	if err := d.sendChecked(endCommand); err != nil {
		return err
	}
	if err := d.sendChecked(writeMemoryCommand); err != nil {
		return err
	}
	d.log.WithField("lines", len(d.candidate)).Info("committed candidate config")
	d.candidate = nil
	return nil
}

func (d *Driver) sendChecked(cmd string) error {
	output, err := d.dispatcher.Send(cmd)
	if err != nil {
		return err
	}
	if isRejected(output) {
		return ports.NewCommandRejectedError(cmd, output)
	}
	return nil
}

// candidateLines drops blank lines and "!" separators.
func candidateLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "!" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return lines
}
