// Package protocol implements the ASCII command protocol shared by the
// Atlas Scientific EZO family of I2C sensor chips (pH, EC, RTD, etc.).
//
// # Protocol Overview
//
// The host writes a short uppercase ASCII command to the chip, waits a
// chip-specific settle delay, then reads a fixed-size reply buffer:
//
//	Command: ASCII verb, optionally with comma-separated arguments
//	Reply:   [STATUS][PAYLOAD...][NUL][undefined...]
//
// Where STATUS is one byte (see ResponseCode) and PAYLOAD, present only on
// Success, is a nul-terminated ASCII/UTF-8 string. The hardware interface
// occasionally sets the high bit of payload bytes; Sanitize corrects this
// before the payload is interpreted.
//
// # Commands
//
// Commands are built with the constructor functions and rendered with
// String or Bytes:
//
//	cmd := protocol.Baud(protocol.Bps9600) // "BAUD,9600"
//	cmd := protocol.Status()               // "STATUS"
//	cmd, err := protocol.Import("3F1A")    // "IMPORT,3F1A"
//
// ParseCommand turns any case variant of a valid wire string back into the
// same command value:
//
//	cmd, err := protocol.ParseCommand("plock,?")
//
// # Responses
//
// DecodeReply validates a raw reply buffer and extracts the payload:
//
//	code, payload, err := protocol.DecodeReply(buf)
//
// Then the Parse* functions apply the command-specific grammar:
//
//	info, err := protocol.ParseDeviceInfo(payload)   // ?I,RTD,2.01
//	st, err := protocol.ParseDeviceStatus(payload)   // ?STATUS,P,3.15
//
// # Error Handling
//
// Every failure is a *Error carrying an ErrorKind; match on the kind with
// IsKind to distinguish transient conditions (ErrPendingResponse) from
// caller bugs (ErrNoDataExpectedResponse) and bus faults (ErrI2CRead):
//
//	if protocol.IsKind(err, protocol.ErrPendingResponse) {
//	    // chip not ready, re-read after more delay
//	}
package protocol
