package entities

// Interface describes the operational state of one port.
type Interface struct {
	Name        string  `json:"-" yaml:"-"`
	IsUp        bool    `json:"is_up" yaml:"is_up"`
	IsEnabled   bool    `json:"is_enabled" yaml:"is_enabled"`
	Description string  `json:"description" yaml:"description"`
	LastFlapped float64 `json:"last_flapped" yaml:"last_flapped"` // seconds, -1 when not tracked
	Speed       int     `json:"speed" yaml:"speed"`               // Mbps
	MACAddress  string  `json:"mac_address,omitempty" yaml:"mac_address,omitempty"`
}

// InterfaceCounters maps counter names to values for a single port.
// Counters the device does not report are absent from the map.
type InterfaceCounters map[string]uint64

// Counter names reported in InterfaceCounters.
const (
	CounterRxOctets           = "rx_octets"
	CounterTxOctets           = "tx_octets"
	CounterRxUnicastPackets   = "rx_unicast_packets"
	CounterTxUnicastPackets   = "tx_unicast_packets"
	CounterRxMulticastPackets = "rx_multicast_packets"
	CounterTxMulticastPackets = "tx_multicast_packets"
	CounterRxBroadcastPackets = "rx_broadcast_packets"
	CounterTxBroadcastPackets = "tx_broadcast_packets"
	CounterRxDiscards         = "rx_discards"
	CounterTxDiscards         = "tx_discards"
	CounterRxErrors           = "rx_errors"
	CounterTxErrors           = "tx_errors"
)
