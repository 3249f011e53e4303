package fastiron

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	zeroMAC      = "00:00:00:00:00:00"
	defaultSpeed = 1000
	unknownValue = -1
)

var (
	daysRe    = regexp.MustCompile(`(\d+)\s*day`)
	hoursRe   = regexp.MustCompile(`(\d+)\s*hour`)
	minutesRe = regexp.MustCompile(`(\d+)\s*minute`)
	secondsRe = regexp.MustCompile(`(\d+)\s*second`)
	macPlain  = regexp.MustCompile(`^[0-9a-f]{12}$`)
)

// parseDuration converts "632 days 18 hours 20 minutes 40 seconds" (or the
// "day(s)" spelling) to seconds. Units are optional. A total of zero means
// the device did not report a value and yields -1.
func parseDuration(text string) float64 {
	total := durationUnit(daysRe, text)*86400 +
		durationUnit(hoursRe, text)*3600 +
		durationUnit(minutesRe, text)*60 +
		durationUnit(secondsRe, text)
	if total == 0 {
		return unknownValue
	}
	return float64(total)
}

func durationUnit(re *regexp.Regexp, text string) int64 {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return 0
	}
	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// parseSpeed converts a token such as "100M", "10G", "100Mbit" or
// "10Gbit" to Mbps. The unit is the trailing letters: one letter or a
// letter followed by "bit". An "M" unit returns the prefix, any other unit
// the prefix times 1000. Anything unparsable is 1000.
func parseSpeed(token string) int {
	token = strings.TrimSpace(token)
	cut := len(token)
	for cut > 0 && isLetter(token[cut-1]) {
		cut--
	}
	prefix, unit := token[:cut], token[cut:]
	if len(unit) != 1 && !(len(unit) == 4 && unit[1:] == "bit") {
		return defaultSpeed
	}
	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil || value < 0 {
		return defaultSpeed
	}
	if unit[0] == 'M' {
		return int(value)
	}
	return int(value * 1000)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// canonicalMAC returns the lower-case colon-separated form of a MAC given
// in dotted (aabb.ccdd.eeff), colon, dash or plain hex notation. The
// placeholder "None" maps to the all-zero MAC.
func canonicalMAC(raw string) (string, bool) {
	if strings.Contains(raw, "None") {
		return zeroMAC, true
	}
	plain := strings.ToLower(strings.NewReplacer(".", "", ":", "", "-", "").Replace(strings.TrimSpace(raw)))
	if !macPlain.MatchString(plain) {
		return "", false
	}
	return formatPlainMac(plain), true
}

func formatPlainMac(mac string) string {
	var builder strings.Builder
	for i := 0; i < len(mac); i += 2 {
		if i > 0 {
			builder.WriteByte(':')
		}
		builder.WriteString(mac[i : i+2])
	}
	return builder.String()
}
