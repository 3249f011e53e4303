package fastiron

import (
	"net"
	"net/netip"
	"regexp"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

var (
	interfaceHeaderRe = regexp.MustCompile(`^interface\s+(\S+)\s+(\S+)`)
	ipv4AddressRe     = regexp.MustCompile(`^\s+ip address\s+(\S+)(?:\s+(\d+\.\d+\.\d+\.\d+))?`)
	ipv6AddressRe     = regexp.MustCompile(`^\s+ipv6 address\s+(\S+)`)
)

// portContext is the interface the configuration scan is currently inside.
// The zero value means no interface header has been seen yet.
type portContext struct {
	name   string
	active bool
}

// parseInterfacesIP folds over configuration text attributing indented
// "ip address" and "ipv6 address" lines to the most recent
// "interface <type> <id>" header. Address lines outside any interface
// are ignored.
func parseInterfacesIP(raw string) entities.InterfaceIP {
	result := make(entities.InterfaceIP)
	var ctx portContext
	for _, line := range strings.Split(raw, "\n") {
		ctx = scanConfigLine(ctx, strings.TrimRight(line, "\r"), result)
	}
	return result
}

// scanConfigLine is one step of the fold: it returns the context for the
// next line and records any address attributed to the current context.
func scanConfigLine(ctx portContext, line string, out entities.InterfaceIP) portContext {
	if match := interfaceHeaderRe.FindStringSubmatch(line); match != nil {
		name := match[1] + " " + match[2]
		if port, ok := classifyHeader(match[1], match[2]); ok {
			name = port.Name()
		}
		return portContext{name: name, active: true}
	}
	if !ctx.active {
		return ctx
	}
	if match := ipv4AddressRe.FindStringSubmatch(line); match != nil {
		if addr, length, ok := parseIPv4(match[1], match[2]); ok {
			out.Add(ctx.name, entities.FamilyIPv4, addr, length)
		}
		return ctx
	}
	if match := ipv6AddressRe.FindStringSubmatch(line); match != nil {
		if prefix, err := netip.ParsePrefix(match[1]); err == nil && prefix.Addr().Is6() {
			out.Add(ctx.name, entities.FamilyIPv6, prefix.Addr().String(), prefix.Bits())
		}
	}
	return ctx
}

// parseIPv4 accepts "10.0.0.1/24" or "10.0.0.1" with a dotted netmask.
func parseIPv4(address, mask string) (string, int, bool) {
	if strings.Contains(address, "/") {
		prefix, err := netip.ParsePrefix(address)
		if err != nil || !prefix.Addr().Is4() {
			return "", 0, false
		}
		return prefix.Addr().String(), prefix.Bits(), true
	}
	addr, err := netip.ParseAddr(address)
	if err != nil || !addr.Is4() || mask == "" {
		return "", 0, false
	}
	maskIP := net.ParseIP(mask).To4()
	if maskIP == nil {
		return "", 0, false
	}
	ones, bits := net.IPMask(maskIP).Size()
	if bits == 0 {
		return "", 0, false
	}
	return addr.String(), ones, true
}
