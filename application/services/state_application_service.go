package services

import (
	"fmt"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
	"github.com/carlosrabelo/fastiron/domain/services"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
	"github.com/carlosrabelo/fastiron/infrastructure/transport"
	"github.com/carlosrabelo/fastiron/platform"
)

// StateApplicationService wires a transport session to a platform driver
// and runs one operation per call
type StateApplicationService struct {
	config entities.DeviceConfig
	repo   ports.SwitchRepository
}

// NewStateApplicationService creates a new instance of the state application service
func NewStateApplicationService(deviceConfig entities.DeviceConfig, transportClient transport.Client) *StateApplicationService {
	return &StateApplicationService{
		config: deviceConfig,
		repo:   transport.NewSwitchAdapter(transportClient),
	}
}

// driver resolves the configured platform. Auto-detection returns an
// already open driver.
func (s *StateApplicationService) driver() (ports.NetworkDriver, error) {
	if s.config.Platform == "" || s.config.Platform == platform.AutoDetect {
		driver, err := platform.Detect(s.repo, s.config)
		if err == nil && s.config.IsDebugEnabled() {
			logging.WithDevice(s.config.Target).Debugf("platform auto-detected as %T", driver)
		}
		return driver, err
	}
	factory, err := platform.Get(s.config.Platform)
	if err != nil {
		return nil, err
	}
	return factory(s.repo, s.config), nil
}

// withDriver opens a driver, runs fn and closes the driver
func (s *StateApplicationService) withDriver(fn func(ports.NetworkDriver) error) error {
	driver, err := s.driver()
	if err != nil {
		return err
	}
	if err := driver.Open(); err != nil {
		return err
	}
	defer driver.Close()
	return fn(driver)
}

// Collect gathers the requested snapshot sections
func (s *StateApplicationService) Collect(sections []string) (entities.Snapshot, error) {
	driver, err := s.driver()
	if err != nil {
		return entities.Snapshot{Target: s.config.Target}, err
	}
	return services.NewStateService(driver, s.config.Target).Collect(sections)
}

// CLI runs raw commands on the device
func (s *StateApplicationService) CLI(commands []string) (map[string]string, error) {
	var result map[string]string
	err := s.withDriver(func(d ports.NetworkDriver) error {
		var err error
		result, err = d.CLI(commands)
		return err
	})
	return result, err
}

// GetConfig retrieves the configuration for scope
func (s *StateApplicationService) GetConfig(scope string) (entities.ConfigSet, error) {
	var result entities.ConfigSet
	err := s.withDriver(func(d ports.NetworkDriver) error {
		var err error
		result, err = d.GetConfig(scope)
		return err
	})
	return result, err
}

// Merge stages a candidate from filename or config and returns its diff.
// The candidate is committed when commit is true, discarded otherwise.
func (s *StateApplicationService) Merge(filename, config string, commit bool) (string, error) {
	if (filename == "") == (config == "") {
		return "", fmt.Errorf("%w: exactly one of filename or config must be given", ports.ErrConfig)
	}
	var diff string
	err := s.withDriver(func(d ports.NetworkDriver) error {
		if err := d.LoadMergeCandidate(filename, config); err != nil {
			return err
		}
		var err error
		if diff, err = d.CompareConfig(); err != nil {
			return err
		}
		if commit {
			return d.CommitConfig()
		}
		return d.DiscardConfig()
	})
	return diff, err
}
