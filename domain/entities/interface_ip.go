package entities

// Address families used as keys of InterfaceIP.
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// PrefixInfo holds the prefix length of a configured address.
type PrefixInfo struct {
	PrefixLength int `json:"prefix_length" yaml:"prefix_length"`
}

// InterfaceIP maps port -> address family -> address -> prefix information.
type InterfaceIP map[string]map[string]map[string]PrefixInfo

// Add records an address under port and family, creating the nested maps
// on demand.
func (ip InterfaceIP) Add(port, family, address string, prefixLength int) {
	families, ok := ip[port]
	if !ok {
		families = make(map[string]map[string]PrefixInfo)
		ip[port] = families
	}
	addrs, ok := families[family]
	if !ok {
		addrs = make(map[string]PrefixInfo)
		families[family] = addrs
	}
	addrs[address] = PrefixInfo{PrefixLength: prefixLength}
}
