package entities

// ArpEntry is one resolved row of the device ARP cache.
type ArpEntry struct {
	Interface string  `json:"interface" yaml:"interface"`
	MAC       string  `json:"mac" yaml:"mac"`
	IP        string  `json:"ip" yaml:"ip"`
	Age       float64 `json:"age" yaml:"age"` // seconds, -1 when unknown
}
