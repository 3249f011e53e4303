package entities

// Snapshot aggregates the state collected from one device in a single run.
// Sections that were not requested or are not supported stay nil.
type Snapshot struct {
	Target      string                       `json:"target" yaml:"target"`
	Facts       *Facts                       `json:"facts,omitempty" yaml:"facts,omitempty"`
	Interfaces  map[string]Interface         `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Counters    map[string]InterfaceCounters `json:"counters,omitempty" yaml:"counters,omitempty"`
	InterfaceIP InterfaceIP                  `json:"interfaces_ip,omitempty" yaml:"interfaces_ip,omitempty"`
	ArpTable    []ArpEntry                   `json:"arp_table,omitempty" yaml:"arp_table,omitempty"`
	MACTable    []MACEntry                   `json:"mac_address_table,omitempty" yaml:"mac_address_table,omitempty"`
	Unsupported []string                     `json:"unsupported,omitempty" yaml:"unsupported,omitempty"`
}
