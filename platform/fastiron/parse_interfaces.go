package fastiron

import (
	"regexp"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

var (
	dottedMACRe    = regexp.MustCompile(`^[0-9A-Fa-f]{4}\.[0-9A-Fa-f]{4}\.[0-9A-Fa-f]{4}$`)
	detailHeaderRe = regexp.MustCompile(`(?mi)^\s*\S+ is (up|down|disabled|administratively down)`)
	portFlapRe     = regexp.MustCompile(`(?m)Port (?:up|down) for (.+)$`)
	actualSpeedRe  = regexp.MustCompile(`actual ([0-9.]+[A-Za-z](?:bit)?)\b`)
	hwAddressRe    = regexp.MustCompile(`address is ([0-9A-Fa-f]{4}\.[0-9A-Fa-f]{4}\.[0-9A-Fa-f]{4})`)
	portNameRe     = regexp.MustCompile(`(?m)^\s*Port name is (.*)$`)
)

// briefRow is one data row of `show interfaces brief`.
type briefRow struct {
	Port      Port
	IsUp      bool
	IsEnabled bool
	Speed     string
	MAC       string
}

// parseInterfacesBrief reads rows like
//
//	Port   Link    State   Dupl Speed Trunk Tag Pvid Pri MAC             Name
//	1/1/1  Up      Forward Full 1G    None  No  1    0   cc4e.246d.2c18  uplink
//
// Only rows whose first column is a recognized port are kept.
func parseInterfacesBrief(raw string) []briefRow {
	rows := make([]briefRow, 0)
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		port, ok := classifyPort(fields[0])
		if !ok {
			continue
		}
		link, state := fields[1], fields[2]
		row := briefRow{
			Port:      port,
			IsUp:      strings.EqualFold(link, "Up"),
			IsEnabled: !isDisabledState(link) && !isDisabledState(state),
		}
		if len(fields) > 4 {
			row.Speed = fields[4]
		}
		for _, field := range fields[3:] {
			if dottedMACRe.MatchString(field) {
				row.MAC, _ = canonicalMAC(field)
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isDisabledState(text string) bool {
	return strings.HasPrefix(strings.ToLower(text), "disable")
}

// interfaceDetail holds what `show interfaces <port>` adds to a brief row.
// Speed is the raw "actual" token, empty when the report has none.
type interfaceDetail struct {
	HasHeader   bool
	IsEnabled   bool
	Description string
	LastFlapped float64
	Speed       string
	MAC         string
}

// parseInterfaceDetail extracts state, flap time, speed, MAC and port name
// from a per-interface report.
func parseInterfaceDetail(raw string) interfaceDetail {
	detail := interfaceDetail{
		IsEnabled:   true,
		LastFlapped: unknownValue,
	}
	if match := detailHeaderRe.FindStringSubmatch(raw); match != nil {
		detail.HasHeader = true
		state := strings.ToLower(match[1])
		detail.IsEnabled = state != "disabled" && state != "administratively down"
	}
	if match := portFlapRe.FindStringSubmatch(raw); match != nil {
		detail.LastFlapped = parseDuration(match[1])
	}
	if match := actualSpeedRe.FindStringSubmatch(raw); match != nil {
		detail.Speed = match[1]
	}
	if match := hwAddressRe.FindStringSubmatch(raw); match != nil {
		detail.MAC, _ = canonicalMAC(match[1])
	}
	if match := portNameRe.FindStringSubmatch(raw); match != nil {
		detail.Description = strings.TrimSpace(match[1])
	}
	return detail
}

// buildInterface merges a brief row with its detail report. The detail
// speed wins over the brief Speed column.
func buildInterface(row briefRow, detail interfaceDetail) entities.Interface {
	iface := entities.Interface{
		Name:        row.Port.Name(),
		IsUp:        row.IsUp,
		IsEnabled:   row.IsEnabled && detail.IsEnabled,
		Description: detail.Description,
		LastFlapped: detail.LastFlapped,
		Speed:       parseSpeed(row.Speed),
		MACAddress:  row.MAC,
	}
	if detail.Speed != "" {
		iface.Speed = parseSpeed(detail.Speed)
	}
	if iface.MACAddress == "" {
		iface.MACAddress = detail.MAC
	}
	return iface
}
