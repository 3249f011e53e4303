package fastiron

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carlosrabelo/fastiron/domain/ports"
)

const versionCommand = "show version | include SW: Version"

// probeVersion asks the device for its software version and resolves the variant.
func probeVersion(d *Dispatcher) (DeviceVariant, error) {
	output, err := d.Send(versionCommand)
	if err != nil {
		return VariantUnknown, err
	}
	return parseVersion(output)
}

// parseVersion reads the major release from a line like
// "SW: Version 08.0.30eT213".
func parseVersion(output string) (DeviceVariant, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	fields := strings.Fields(lines[0])
	if len(fields) < 3 {
		return VariantUnknown, fmt.Errorf("%w: version banner %q", ports.ErrParse, lines[0])
	}
	majorToken, _, _ := strings.Cut(fields[2], ".")
	major, err := strconv.Atoi(majorToken)
	if err != nil {
		return VariantUnknown, fmt.Errorf("%w: version token %q", ports.ErrParse, fields[2])
	}
	variant, ok := variantFromMajor(major)
	if !ok {
		return VariantUnknown, fmt.Errorf("%w: %d", ports.ErrUnsupportedVersion, major)
	}
	return variant, nil
}
