package fastiron

import (
	"regexp"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/entities"
)

const vendorName = "Brocade"

var (
	swVersionRe = regexp.MustCompile(`SW: Version (\S+)`)
	hwModelRe   = regexp.MustCompile(`(?m)HW: (.+)$`)
	serialRe    = regexp.MustCompile(`Serial\s*#:\s*(\S+)`)
	uptimeRe    = regexp.MustCompile(`(?m)uptime is (.+)$`)
	hostnameRe  = regexp.MustCompile(`(?m)^hostname (\S+)`)
)

// parseFacts reads identity fields from `show version` and the hostname
// line of the running configuration.
func parseFacts(version, config string) entities.Facts {
	facts := entities.Facts{Vendor: vendorName, Uptime: unknownValue}
	if match := swVersionRe.FindStringSubmatch(version); match != nil {
		facts.OSVersion = match[1]
	}
	if match := hwModelRe.FindStringSubmatch(version); match != nil {
		fields := strings.Fields(match[1])
		if len(fields) > 0 {
			facts.Model = fields[len(fields)-1]
		}
	}
	if match := serialRe.FindStringSubmatch(version); match != nil {
		facts.SerialNumber = match[1]
	}
	if match := uptimeRe.FindStringSubmatch(version); match != nil {
		facts.Uptime = parseDuration(match[1])
	}
	if match := hostnameRe.FindStringSubmatch(config); match != nil {
		facts.Hostname = match[1]
	}
	return facts
}
