package fastiron

import (
	"fmt"

	"github.com/carlosrabelo/fastiron/domain/ports"
)

// DeviceVariant is the FastIron major release family. Output layout of
// several show commands differs between families.
type DeviceVariant int

const (
	VariantUnknown DeviceVariant = iota
	V7
	V8
)

func (v DeviceVariant) String() string {
	switch v {
	case V7:
		return "7"
	case V8:
		return "8"
	default:
		return "unknown"
	}
}

// variantFromMajor maps a major software version to its variant
func variantFromMajor(major int) (DeviceVariant, bool) {
	switch major {
	case 7:
		return V7, true
	case 8:
		return V8, true
	default:
		return VariantUnknown, false
	}
}

// arpHeaderLines is the number of lines preceding data rows in `show arp`
func (v DeviceVariant) arpHeaderLines() (int, error) {
	switch v {
	case V7:
		return 2, nil
	case V8:
		return 3, nil
	default:
		return 0, errVariant(v)
	}
}

// macTableFields is the number of columns of a `show mac-address` data row
func (v DeviceVariant) macTableFields() (int, error) {
	switch v {
	case V7:
		return 5, nil
	case V8:
		return 4, nil
	default:
		return 0, errVariant(v)
	}
}

// briefCommands lists the interface summary commands to try, best first
func (v DeviceVariant) briefCommands() []string {
	if v == V8 {
		return []string{"show interfaces brief wide", "show interfaces brief"}
	}
	return []string{"show interfaces brief"}
}

func errVariant(v DeviceVariant) error {
	return fmt.Errorf("%w: %s", ports.ErrVariantUnknown, v)
}
