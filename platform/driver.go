package platform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
	"github.com/carlosrabelo/fastiron/platform/fastiron"
)

// AutoDetect is the platform name that selects a driver by probing the device.
const AutoDetect = "auto"

// Factory builds a driver bound to a session.
type Factory func(repo ports.SwitchRepository, cfg entities.DeviceConfig) ports.NetworkDriver

type registration struct {
	name    string
	aliases []string
	factory Factory
}

var registry = []registration{
	{
		name:    "fastiron",
		aliases: []string{"brocade", "icx", "ruckus"},
		factory: func(repo ports.SwitchRepository, cfg entities.DeviceConfig) ports.NetworkDriver {
			return fastiron.New(repo, cfg)
		},
	},
}

// Get returns the driver factory for a platform name or one of its aliases.
func Get(name string) (Factory, error) {
	normalized := normalizeName(name)
	for _, r := range registry {
		if r.name == normalized {
			return r.factory, nil
		}
		for _, alias := range r.aliases {
			if alias == normalized {
				return r.factory, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown switch platform: %s", name)
}

// Available returns the canonical names of all registered platforms.
func Available() []string {
	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.name)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name resolves to a registered platform or is
// the auto-detect keyword.
func IsKnown(name string) bool {
	if normalizeName(name) == AutoDetect {
		return true
	}
	_, err := Get(name)
	return err == nil
}

// Detect opens the session with each registered driver in turn and returns
// the first one whose version probe accepts the device. The returned driver
// is open.
func Detect(repo ports.SwitchRepository, cfg entities.DeviceConfig) (ports.NetworkDriver, error) {
	var lastErr error
	for _, r := range registry {
		driver := r.factory(repo, cfg)
		err := driver.Open()
		if err == nil {
			return driver, nil
		}
		if errors.Is(err, ports.ErrConnection) {
			return nil, err
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("unable to detect switch platform: %w", lastErr)
	}
	return nil, errors.New("unable to detect switch platform")
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
