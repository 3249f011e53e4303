package fastiron

import (
	"regexp"
	"strings"
)

// PortKind classifies an interface token.
type PortKind int

const (
	PortUnknown PortKind = iota
	PortPhysical
	PortVirtual
	PortLoopback
	PortManagement
)

var (
	physicalPortRe = regexp.MustCompile(`^\d+/\d+(?:/\d+)?$`)
	logicalPortRe  = regexp.MustCompile(`(?i)^(ve|lb|loopback|mgmt|management)\s*(\d+)$`)

	logicalKinds = map[string]PortKind{
		"ve":         PortVirtual,
		"lb":         PortLoopback,
		"loopback":   PortLoopback,
		"mgmt":       PortManagement,
		"management": PortManagement,
	}
	kindKeywords = map[PortKind]string{
		PortPhysical:   "ethernet",
		PortVirtual:    "ve",
		PortLoopback:   "loopback",
		PortManagement: "management",
	}
)

// Port is a classified interface.
type Port struct {
	Kind PortKind
	ID   string
}

// classifyPort recognizes physical ports (1/1, 1/1/1) and the logical
// prefixes ve, lb and mgmt; anything else is reported as not a port.
func classifyPort(token string) (Port, bool) {
	token = strings.TrimSpace(token)
	if physicalPortRe.MatchString(token) {
		return Port{Kind: PortPhysical, ID: token}, true
	}
	if match := logicalPortRe.FindStringSubmatch(token); match != nil {
		return Port{Kind: logicalKinds[strings.ToLower(match[1])], ID: match[2]}, true
	}
	return Port{}, false
}

// portName normalizes a port token from a table row. Tokens that are not
// ports are returned unchanged.
func portName(token string) string {
	if port, ok := classifyPort(token); ok {
		return port.Name()
	}
	return token
}

// classifyHeader resolves an "interface <type> <id>" configuration header.
func classifyHeader(kind, id string) (Port, bool) {
	if strings.EqualFold(kind, "ethernet") {
		return classifyPort(id)
	}
	return classifyPort(kind + id)
}

// Name is the normalized port name used as record key: the numeric form
// for physical ports, "<keyword> <id>" for logical ones.
func (p Port) Name() string {
	if p.Kind == PortPhysical {
		return p.ID
	}
	return kindKeywords[p.Kind] + " " + p.ID
}

// DetailCommand is the per-interface show command for the port.
func (p Port) DetailCommand() string {
	return "show interfaces " + kindKeywords[p.Kind] + " " + p.ID
}
