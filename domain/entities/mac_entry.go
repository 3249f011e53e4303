package entities

// MACEntry is one learned entry of the switch forwarding table.
type MACEntry struct {
	MAC       string  `json:"mac" yaml:"mac"`
	Interface string  `json:"interface" yaml:"interface"`
	VLAN      int     `json:"vlan" yaml:"vlan"`
	Static    bool    `json:"static" yaml:"static"`
	Active    bool    `json:"active" yaml:"active"`
	Moves     int     `json:"moves" yaml:"moves"`
	LastMove  float64 `json:"last_move" yaml:"last_move"`
}
