package fastiron

import (
	"strconv"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

// parseArpTable reads `show arp` rows:
//
//	No.  IP Address  MAC Address     Type     Age  Port   Status
//	1    10.0.0.1    1122.3344.5566  Dynamic  120  1/1/1  Valid
//
// Ports are normalized like interface keys (mgmt1 becomes "management 1").
// The header is 2 lines on 7.x and 3 lines on 8.x. Rows without exactly
// 7 fields, rows not in Valid status and rows whose age is neither a
// number nor None are dropped.
func parseArpTable(raw string, variant DeviceVariant) ([]entities.ArpEntry, error) {
	skip, err := variant.arpHeaderLines()
	if err != nil {
		return nil, err
	}
	entries := make([]entities.ArpEntry, 0)
	lines := strings.Split(raw, "\n")
	if len(lines) <= skip {
		return entries, nil
	}
	for _, line := range lines[skip:] {
		fields := strings.Fields(line)
		if len(fields) != 7 {
			continue
		}
		address, mac, age, iface, status := fields[1], fields[2], fields[4], fields[5], fields[6]
		if status != "Valid" {
			continue
		}
		ageSeconds, ok := parseArpAge(age)
		if !ok {
			continue
		}
		canonical, ok := canonicalMAC(mac)
		if !ok {
			continue
		}
		entries = append(entries, entities.ArpEntry{
			Interface: portName(iface),
			MAC:       canonical,
			IP:        address,
			Age:       ageSeconds,
		})
	}
	return entries, nil
}

func parseArpAge(age string) (float64, bool) {
	if age == "None" {
		return unknownValue, true
	}
	value, err := strconv.ParseFloat(age, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
