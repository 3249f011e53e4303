package fastiron

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/sirupsen/logrus"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
)

const driverName = "fastiron"

const (
	arpCommand      = "show arp"
	macTableCommand = "show mac-address"
	showVersion     = "show version"
	hostnameCommand = "show running-config | include hostname"
)

// Driver implements ports.NetworkDriver for Brocade/Ruckus FastIron switches.
// A Driver owns one session and is not safe for concurrent use.
type Driver struct {
	repo       ports.SwitchRepository
	config     entities.DeviceConfig
	dispatcher *Dispatcher
	variant    DeviceVariant
	candidate  []string
	log        *logrus.Entry
}

// New creates a FastIron driver on top of repo.
func New(repo ports.SwitchRepository, cfg entities.DeviceConfig) *Driver {
	return &Driver{
		repo:       repo,
		config:     cfg,
		dispatcher: NewDispatcher(repo),
		log:        logging.WithDevice(cfg.Target),
	}
}

// Name returns the canonical platform identifier.
func (d *Driver) Name() string {
	return driverName
}

// Variant returns the device variant resolved by Open.
func (d *Driver) Variant() DeviceVariant {
	return d.variant
}

// Open connects the session and resolves the device variant. Calling Open
// on an open driver does nothing.
func (d *Driver) Open() error {
	if d.variant != VariantUnknown && d.repo.IsConnected() {
		return nil
	}
	if !d.repo.IsConnected() {
		if err := d.repo.Connect(); err != nil {
			if errors.Is(err, ports.ErrConnection) {
				return err
			}
			return ports.NewConnectionError(d.config.Target, err)
		}
	}
	variant, err := probeVersion(d.dispatcher)
	if err != nil {
		d.repo.Disconnect()
		return err
	}
	d.variant = variant
	d.log.WithField("variant", variant).Debug("session open")
	return nil
}

// Close releases the session. It is safe to call on a closed driver.
func (d *Driver) Close() {
	if d.repo.IsConnected() {
		d.repo.Disconnect()
	}
	d.variant = VariantUnknown
}

// IsAlive reports whether the session is usable.
func (d *Driver) IsAlive() bool {
	return d.repo.IsConnected()
}

func (d *Driver) ensureOpen() error {
	if d.variant == VariantUnknown {
		return ports.ErrNotOpen
	}
	return nil
}

// CLI runs operator-supplied commands. Any command the device rejects
// fails the whole call.
func (d *Driver) CLI(commands []string) (map[string]string, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	results := make(map[string]string, len(commands))
	for _, cmd := range commands {
		output, err := d.dispatcher.Send(cmd)
		if err != nil {
			return nil, err
		}
		if isRejected(output) {
			return nil, ports.NewCommandRejectedError(cmd, output)
		}
		results[cmd] = output
	}
	return results, nil
}

// GetFacts returns device identity and the list of interfaces.
func (d *Driver) GetFacts() (entities.Facts, error) {
	if err := d.ensureOpen(); err != nil {
		return entities.Facts{}, err
	}
	version, err := d.dispatcher.Send(showVersion)
	if err != nil {
		return entities.Facts{}, err
	}
	hostname, err := d.dispatcher.Send(hostnameCommand)
	if err != nil {
		return entities.Facts{}, err
	}
	facts := parseFacts(version, hostname)

	rows, err := d.briefRows()
	if err != nil {
		return entities.Facts{}, err
	}
	facts.InterfaceList = make([]string, 0, len(rows))
	for _, row := range rows {
		facts.InterfaceList = append(facts.InterfaceList, row.Port.Name())
	}
	sort.SliceStable(facts.InterfaceList, func(i, j int) bool {
		return natural.Less(facts.InterfaceList[i], facts.InterfaceList[j])
	})
	return facts, nil
}

// GetArpTable returns the valid entries of the ARP cache.
func (d *Driver) GetArpTable() ([]entities.ArpEntry, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	output, err := d.dispatcher.Send(arpCommand)
	if err != nil {
		return nil, err
	}
	entries, err := parseArpTable(output, d.variant)
	if err != nil {
		return nil, err
	}
	d.log.WithField("entries", len(entries)).Debug("parsed arp table")
	return entries, nil
}

// GetInterfaces returns the state of every recognized port keyed by name.
func (d *Driver) GetInterfaces() (map[string]entities.Interface, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := d.briefRows()
	if err != nil {
		return nil, err
	}
	interfaces := make(map[string]entities.Interface, len(rows))
	for _, row := range rows {
		detail, err := d.interfaceDetail(row.Port)
		if err != nil {
			return nil, err
		}
		iface := buildInterface(row, parseInterfaceDetail(detail))
		interfaces[iface.Name] = iface
	}
	d.log.WithField("interfaces", len(interfaces)).Debug("parsed interfaces")
	return interfaces, nil
}

// GetInterfacesCounters returns traffic counters for ports that report any.
func (d *Driver) GetInterfacesCounters() (map[string]entities.InterfaceCounters, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := d.briefRows()
	if err != nil {
		return nil, err
	}
	counters := make(map[string]entities.InterfaceCounters, len(rows))
	for _, row := range rows {
		detail, err := d.interfaceDetail(row.Port)
		if err != nil {
			return nil, err
		}
		if c := parseInterfaceCounters(detail); len(c) > 0 {
			counters[row.Port.Name()] = c
		}
	}
	return counters, nil
}

// GetInterfacesIP returns the addresses configured on each interface.
func (d *Driver) GetInterfacesIP() (entities.InterfaceIP, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	output, err := d.dispatcher.SendFirst("show running-config interface", runningConfigCommand)
	if err != nil {
		return nil, err
	}
	return parseInterfacesIP(output), nil
}

// GetMACAddressTable returns the learned forwarding entries.
func (d *Driver) GetMACAddressTable() ([]entities.MACEntry, error) {
	if err := d.ensureOpen(); err != nil {
		return nil, err
	}
	output, err := d.dispatcher.Send(macTableCommand)
	if err != nil {
		return nil, err
	}
	entries, err := parseMACTable(output, d.variant)
	if err != nil {
		return nil, err
	}
	d.log.WithField("entries", len(entries)).Debug("parsed mac table")
	return entries, nil
}

// GetLLDPNeighbors is not implemented for FastIron.
func (d *Driver) GetLLDPNeighbors() (map[string][]ports.LLDPNeighbor, error) {
	return nil, notSupported("get_lldp_neighbors")
}

// GetEnvironment is not implemented for FastIron.
func (d *Driver) GetEnvironment() (map[string]any, error) {
	return nil, notSupported("get_environment")
}

// GetNTPStats is not implemented for FastIron.
func (d *Driver) GetNTPStats() ([]map[string]any, error) {
	return nil, notSupported("get_ntp_stats")
}

// GetRouteTo is not implemented for FastIron.
func (d *Driver) GetRouteTo(destination, protocol string) (map[string]any, error) {
	return nil, notSupported("get_route_to")
}

func notSupported(operation string) error {
	return fmt.Errorf("%w: %s on %s", ports.ErrNotSupported, operation, driverName)
}

func (d *Driver) briefRows() ([]briefRow, error) {
	output, err := d.dispatcher.SendFirst(d.variant.briefCommands()...)
	if err != nil {
		return nil, err
	}
	return parseInterfacesBrief(output), nil
}

// interfaceDetail fetches the per-port report; a rejected command yields
// an empty report so the port keeps its brief-only state.
func (d *Driver) interfaceDetail(port Port) (string, error) {
	output, err := d.dispatcher.Send(port.DetailCommand())
	if err != nil {
		return "", err
	}
	if isRejected(output) {
		d.log.WithField("port", port.Name()).Debug("interface detail rejected")
		return "", nil
	}
	return output, nil
}
