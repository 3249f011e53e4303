package fastiron

import (
	"strconv"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

// parseMACTable reads `show mac-address` rows. 8.x prints
// "MAC Port Type VLAN"; 7.x adds an Index column before VLAN.
func parseMACTable(raw string, variant DeviceVariant) ([]entities.MACEntry, error) {
	width, err := variant.macTableFields()
	if err != nil {
		return nil, err
	}
	entries := make([]entities.MACEntry, 0)
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) != width {
			continue
		}
		mac, ok := canonicalMAC(fields[0])
		if !ok || strings.Contains(fields[0], "None") {
			continue
		}
		vlan, err := strconv.Atoi(fields[width-1])
		if err != nil {
			continue
		}
		entries = append(entries, entities.MACEntry{
			MAC:       mac,
			Interface: portName(fields[1]),
			VLAN:      vlan,
			Static:    strings.EqualFold(fields[2], "Static"),
			Active:    true,
			Moves:     unknownValue,
			LastMove:  unknownValue,
		})
	}
	return entries, nil
}
