package protocol

import "fmt"

// DeviceInfo contains the chip's identity.
// Returned by the `I` command.
type DeviceInfo struct {
	// Device is the chip family name, e.g. "RTD"
	Device string

	// Firmware is the firmware version string, e.g. "2.01"
	Firmware string
}

// String returns the human rendering, e.g. "RTD,2.01".
func (d DeviceInfo) String() string { return d.Device + "," + d.Firmware }

// Wire returns the wire rendering, e.g. "?I,RTD,2.01".
func (d DeviceInfo) Wire() string { return "?I," + d.Device + "," + d.Firmware }

// RestartReason is the reason the chip last restarted.
type RestartReason int

const (
	// PoweredOff means the chip was powered off (wire letter P)
	PoweredOff RestartReason = iota

	// SoftwareReset means a software reset occurred (wire letter S)
	SoftwareReset

	// BrownOut means a brown-out reset occurred (wire letter B)
	BrownOut

	// Watchdog means the watchdog fired (wire letter W)
	Watchdog

	// Unknown means the chip could not determine the reason (wire letter U)
	Unknown
)

// Letter returns the one-letter wire encoding.
func (r RestartReason) Letter() string {
	switch r {
	case PoweredOff:
		return "P"
	case SoftwareReset:
		return "S"
	case BrownOut:
		return "B"
	case Watchdog:
		return "W"
	default:
		return "U"
	}
}

// String returns the human rendering, e.g. "powered-off".
func (r RestartReason) String() string {
	switch r {
	case PoweredOff:
		return "powered-off"
	case SoftwareReset:
		return "software-reset"
	case BrownOut:
		return "brown-out"
	case Watchdog:
		return "watchdog"
	default:
		return "unknown"
	}
}

// DeviceStatus contains restart reason and supply voltage.
// Returned by the `STATUS` command.
type DeviceStatus struct {
	// RestartReason is why the chip last restarted
	RestartReason RestartReason

	// VccVoltage is the VCC supply voltage in volts
	VccVoltage float64
}

// String returns the human rendering, e.g. "powered-off,3.150".
func (d DeviceStatus) String() string {
	return fmt.Sprintf("%s,%.3f", d.RestartReason, d.VccVoltage)
}

// Wire returns the wire rendering, e.g. "?STATUS,P,3.150".
func (d DeviceStatus) Wire() string {
	return fmt.Sprintf("?STATUS,%s,%.3f", d.RestartReason.Letter(), d.VccVoltage)
}

// Exported is one line of a streamed calibration export: either a data
// fragment of 1 to MaxExportLen characters, or the terminal *DONE marker.
// Returned by the `EXPORT` command.
type Exported struct {
	// Data is the export fragment; empty when Done is set
	Data string

	// Done marks the end of the export stream
	Done bool
}

// String returns the human rendering: the fragment, or "DONE".
func (e Exported) String() string {
	if e.Done {
		return "DONE"
	}
	return e.Data
}

// Wire returns the wire rendering: the fragment, or "*DONE".
func (e Exported) Wire() string {
	if e.Done {
		return "*DONE"
	}
	return e.Data
}

// ExportedInfo describes the size of a calibration export.
// Returned by the `EXPORT,?` command.
type ExportedInfo struct {
	// Lines is the number of export fragments to expect
	Lines uint16

	// TotalBytes is the total export size in bytes
	TotalBytes uint16
}

// String returns the human rendering, e.g. "10,120".
func (e ExportedInfo) String() string { return fmt.Sprintf("%d,%d", e.Lines, e.TotalBytes) }

// Wire returns the wire rendering, e.g. "?EXPORT,10,120".
func (e ExportedInfo) Wire() string { return fmt.Sprintf("?EXPORT,%d,%d", e.Lines, e.TotalBytes) }

// ProtocolLockStatus is the state of the I2C protocol lock.
// Returned by the `PLOCK,?` command.
type ProtocolLockStatus int

const (
	// ProtocolLockOff means both I2C and UART may issue commands
	ProtocolLockOff ProtocolLockStatus = iota

	// ProtocolLockOn means only the current interface may issue commands
	ProtocolLockOn
)

// String returns "on" or "off".
func (p ProtocolLockStatus) String() string {
	if p == ProtocolLockOn {
		return "on"
	}
	return "off"
}

// Wire returns the wire rendering, "?PLOCK,1" or "?PLOCK,0".
func (p ProtocolLockStatus) Wire() string {
	if p == ProtocolLockOn {
		return "?PLOCK,1"
	}
	return "?PLOCK,0"
}

// LedStatus is the state of the status LED.
// Returned by the `L,?` command.
type LedStatus int

const (
	// LedStatusOff means the status LED is disabled
	LedStatusOff LedStatus = iota

	// LedStatusOn means the status LED is enabled
	LedStatusOn
)

// String returns "on" or "off".
func (l LedStatus) String() string {
	if l == LedStatusOn {
		return "on"
	}
	return "off"
}

// Wire returns the wire rendering, "?L,1" or "?L,0".
func (l LedStatus) Wire() string {
	if l == LedStatusOn {
		return "?L,1"
	}
	return "?L,0"
}
