package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
)

// Snapshot sections accepted by Collect.
const (
	SectionFacts      = "facts"
	SectionInterfaces = "interfaces"
	SectionCounters   = "counters"
	SectionIP         = "ip"
	SectionArp        = "arp"
	SectionMAC        = "mac"
	SectionLLDP       = "lldp"
)

// AllSections is the collection order used when no section is requested.
var AllSections = []string{
	SectionFacts,
	SectionInterfaces,
	SectionCounters,
	SectionIP,
	SectionArp,
	SectionMAC,
	SectionLLDP,
}

// StateServiceImpl gathers a Snapshot from one driver session
type StateServiceImpl struct {
	driver ports.NetworkDriver
	target string
}

// NewStateService creates a state service for the device reached through driver
func NewStateService(driver ports.NetworkDriver, target string) *StateServiceImpl {
	return &StateServiceImpl{driver: driver, target: target}
}

type collector func(d ports.NetworkDriver, snap *entities.Snapshot) error

var collectors = map[string]collector{
	SectionFacts: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		facts, err := d.GetFacts()
		if err == nil {
			snap.Facts = &facts
		}
		return err
	},
	SectionInterfaces: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		var err error
		snap.Interfaces, err = d.GetInterfaces()
		return err
	},
	SectionCounters: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		var err error
		snap.Counters, err = d.GetInterfacesCounters()
		return err
	},
	SectionIP: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		var err error
		snap.InterfaceIP, err = d.GetInterfacesIP()
		return err
	},
	SectionArp: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		var err error
		snap.ArpTable, err = d.GetArpTable()
		return err
	},
	SectionMAC: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		var err error
		snap.MACTable, err = d.GetMACAddressTable()
		return err
	},
	SectionLLDP: func(d ports.NetworkDriver, snap *entities.Snapshot) error {
		_, err := d.GetLLDPNeighbors()
		return err
	},
}

// Collect opens the driver, runs the requested sections in order and closes
// the driver again. Sections the platform does not implement are listed in
// Snapshot.Unsupported instead of failing the run.
func (s *StateServiceImpl) Collect(sections []string) (entities.Snapshot, error) {
	if len(sections) == 0 {
		sections = AllSections
	}
	for _, section := range sections {
		if _, ok := collectors[strings.ToLower(section)]; !ok {
			return entities.Snapshot{}, fmt.Errorf("unknown section %q", section)
		}
	}

	snap := entities.Snapshot{Target: s.target}
	if err := s.driver.Open(); err != nil {
		return snap, err
	}
	defer s.driver.Close()

	for _, section := range sections {
		section = strings.ToLower(section)
		log := logging.WithOperation(s.target, section)
		err := collectors[section](s.driver, &snap)
		if errors.Is(err, ports.ErrNotSupported) {
			log.Debug("section not supported")
			snap.Unsupported = append(snap.Unsupported, section)
			continue
		}
		if err != nil {
			return snap, fmt.Errorf("collect %s: %w", section, err)
		}
		log.Debug("section collected")
	}
	return snap, nil
}
