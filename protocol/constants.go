package protocol

import "strconv"

// ResponseCode is the first byte of every EZO reply buffer.
type ResponseCode byte

// Response codes per the Atlas Scientific EZO datasheets.
const (
	// Success indicates the command was executed and any payload follows
	Success ResponseCode = 0x01

	// DeviceError indicates the chip rejected the command
	DeviceError ResponseCode = 0x02

	// Pending indicates the chip has not finished computing the response
	Pending ResponseCode = 0xFE

	// NoDataExpected indicates a data read was issued for a command that
	// yields no payload
	NoDataExpected ResponseCode = 0xFF

	// UnknownError stands in for every other status byte. Compliant
	// hardware never sends it, but it must still decode to something.
	UnknownError ResponseCode = 0x00
)

// Wire limits.
const (
	// MaxCommandLen is the longest ASCII command the chips accept
	MaxCommandLen = 40

	// DefaultReplySize is the default reply buffer size in bytes:
	// status(1) + payload(40) + nul terminator(1). Chip families with
	// larger payloads override it via the engine options.
	DefaultReplySize = 42

	// MaxExportLen is the longest calibration export/import fragment
	MaxExportLen = 12
)

// BpsRate is a baud rate accepted by the BAUD command when switching the
// chip to UART mode.
type BpsRate uint32

// The eight rates the chips support. No other value is valid on the wire.
const (
	Bps300    BpsRate = 300
	Bps1200   BpsRate = 1200
	Bps2400   BpsRate = 2400
	Bps9600   BpsRate = 9600
	Bps19200  BpsRate = 19200
	Bps38400  BpsRate = 38400
	Bps57600  BpsRate = 57600
	Bps115200 BpsRate = 115200
)

// String returns the decimal rendering used on the wire, e.g. "9600".
func (b BpsRate) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

// ParseBpsRate parses a decimal baud rate token. Anything outside the
// eight supported rates fails with ErrBpsRateParse.
func ParseBpsRate(s string) (BpsRate, error) {
	switch s {
	case "300":
		return Bps300, nil
	case "1200":
		return Bps1200, nil
	case "2400":
		return Bps2400, nil
	case "9600":
		return Bps9600, nil
	case "19200":
		return Bps19200, nil
	case "38400":
		return Bps38400, nil
	case "57600":
		return Bps57600, nil
	case "115200":
		return Bps115200, nil
	default:
		return 0, &Error{Kind: ErrBpsRateParse, Op: s}
	}
}
