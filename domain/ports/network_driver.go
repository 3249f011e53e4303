package ports

import "github.com/carlosrabelo/fastiron/domain/entities"

// NetworkDriver is the vendor-neutral operation surface a platform driver
// fulfills. Optional operations a platform cannot serve return an error
// wrapping ErrNotSupported.
type NetworkDriver interface {
	Open() error
	Close()
	IsAlive() bool

	CLI(commands []string) (map[string]string, error)
	GetConfig(scope string) (entities.ConfigSet, error)
	LoadMergeCandidate(filename, config string) error
	CompareConfig() (string, error)
	DiscardConfig() error
	CommitConfig() error

	GetFacts() (entities.Facts, error)
	GetArpTable() ([]entities.ArpEntry, error)
	GetInterfaces() (map[string]entities.Interface, error)
	GetInterfacesCounters() (map[string]entities.InterfaceCounters, error)
	GetInterfacesIP() (entities.InterfaceIP, error)
	GetMACAddressTable() ([]entities.MACEntry, error)

	GetLLDPNeighbors() (map[string][]LLDPNeighbor, error)
	GetEnvironment() (map[string]any, error)
	GetNTPStats() ([]map[string]any, error)
	GetRouteTo(destination, protocol string) (map[string]any, error)
}

// LLDPNeighbor is a neighbor reported on a local port.
type LLDPNeighbor struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	Port     string `json:"port" yaml:"port"`
}
