package protocol

import (
	"strconv"
	"strings"
)

// The typed response parsers accept the decoded payload of a Success reply
// and apply a strict grammar: the leading tag is case-sensitive and the
// comma-separated field count must match exactly. Every failure, including
// numeric conversion, is ErrResponseParse.

// ParseDeviceInfo parses the `I` command response.
//
// Payload format:
//
//	?I,<device>,<firmware>
//
// Both fields must be non-empty.
func ParseDeviceInfo(response string) (*DeviceInfo, error) {
	rest, ok := strings.CutPrefix(response, "?I,")
	if !ok {
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	fields := strings.Split(rest, ",")
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	return &DeviceInfo{Device: fields[0], Firmware: fields[1]}, nil
}

// ParseDeviceStatus parses the `STATUS` command response.
//
// Payload format:
//
//	?STATUS,<P|S|B|W|U>,<voltage>
func ParseDeviceStatus(response string) (*DeviceStatus, error) {
	rest, ok := strings.CutPrefix(response, "?STATUS,")
	if !ok {
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	fields := strings.Split(rest, ",")
	if len(fields) != 2 {
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	var reason RestartReason
	switch fields[0] {
	case "P":
		reason = PoweredOff
	case "S":
		reason = SoftwareReset
	case "B":
		reason = BrownOut
	case "W":
		reason = Watchdog
	case "U":
		reason = Unknown
	default:
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	voltage, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, &Error{Kind: ErrResponseParse, Op: response, Err: err}
	}

	return &DeviceStatus{RestartReason: reason, VccVoltage: voltage}, nil
}

// ParseExported parses one line of the `EXPORT` command response stream.
//
// A payload starting with `*` must be exactly the `*DONE` sentinel; any
// other `*`-prefixed string is rejected rather than treated as literal
// export data. Everything else is a data fragment and must be 1 to
// MaxExportLen characters; character set is not validated beyond length.
// Firmware behavior for the rejected cases is unconfirmed, so this
// asymmetry is preserved as-is.
func ParseExported(response string) (Exported, error) {
	if strings.HasPrefix(response, "*") {
		if response == "*DONE" {
			return Exported{Done: true}, nil
		}
		return Exported{}, &Error{Kind: ErrResponseParse, Op: response}
	}

	if len(response) == 0 || len(response) > MaxExportLen {
		return Exported{}, &Error{Kind: ErrResponseParse, Op: response}
	}
	return Exported{Data: response}, nil
}

// ParseExportedInfo parses the `EXPORT,?` command response.
//
// Payload format:
//
//	?EXPORT,<lines>,<total_bytes>
//
// Both fields are unsigned 16-bit integers.
func ParseExportedInfo(response string) (*ExportedInfo, error) {
	rest, ok := strings.CutPrefix(response, "?EXPORT,")
	if !ok {
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	fields := strings.Split(rest, ",")
	if len(fields) != 2 {
		return nil, &Error{Kind: ErrResponseParse, Op: response}
	}

	lines, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return nil, &Error{Kind: ErrResponseParse, Op: response, Err: err}
	}

	totalBytes, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return nil, &Error{Kind: ErrResponseParse, Op: response, Err: err}
	}

	return &ExportedInfo{Lines: uint16(lines), TotalBytes: uint16(totalBytes)}, nil
}

// ParseProtocolLockStatus parses the `PLOCK,?` command response.
//
// Payload format:
//
//	?PLOCK,<0|1>
func ParseProtocolLockStatus(response string) (ProtocolLockStatus, error) {
	rest, ok := strings.CutPrefix(response, "?PLOCK,")
	if !ok {
		return 0, &Error{Kind: ErrResponseParse, Op: response}
	}

	switch rest {
	case "1":
		return ProtocolLockOn, nil
	case "0":
		return ProtocolLockOff, nil
	default:
		return 0, &Error{Kind: ErrResponseParse, Op: response}
	}
}

// ParseLedStatus parses the `L,?` command response.
//
// Payload format:
//
//	?L,<0|1>
func ParseLedStatus(response string) (LedStatus, error) {
	rest, ok := strings.CutPrefix(response, "?L,")
	if !ok {
		return 0, &Error{Kind: ErrResponseParse, Op: response}
	}

	switch rest {
	case "1":
		return LedStatusOn, nil
	case "0":
		return LedStatusOff, nil
	default:
		return 0, &Error{Kind: ErrResponseParse, Op: response}
	}
}
