package protocol

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the protocol engine can produce.
// Kinds are never flattened into a generic failure: callers can always
// distinguish "retry the read later" (ErrPendingResponse) from "fix your
// input" (ErrCommandParse) from "bus fault" (ErrI2CRead).
type ErrorKind int

const (
	// ErrCommandParse means command text did not match any wire command
	ErrCommandParse ErrorKind = iota + 1

	// ErrBaudParse means a BAUD command was malformed
	ErrBaudParse

	// ErrBpsRateParse means a BAUD rate token was not one of the eight
	// supported rates
	ErrBpsRateParse

	// ErrUnwritableCommand means the command could not be written even
	// after the single built-in retry
	ErrUnwritableCommand

	// ErrI2CRead means the reply buffer could not be read from the bus
	ErrI2CRead

	// ErrMalformedResponse means the reply had no nul terminator, was not
	// valid UTF-8, or carried an unrecognized status byte
	ErrMalformedResponse

	// ErrResponseParse means the decoded payload did not match the
	// expected typed grammar
	ErrResponseParse

	// ErrPendingResponse means the chip has not finished computing;
	// re-read after more delay
	ErrPendingResponse

	// ErrDeviceErrorResponse means the chip explicitly rejected the command
	ErrDeviceErrorResponse

	// ErrNoDataExpectedResponse means a data read was issued for a
	// command that yields no payload
	ErrNoDataExpectedResponse
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrCommandParse:
		return "command parse"
	case ErrBaudParse:
		return "baud command parse"
	case ErrBpsRateParse:
		return "bps rate parse"
	case ErrUnwritableCommand:
		return "command could not be written"
	case ErrI2CRead:
		return "i2c read"
	case ErrMalformedResponse:
		return "malformed response"
	case ErrResponseParse:
		return "response parse"
	case ErrPendingResponse:
		return "response pending"
	case ErrDeviceErrorResponse:
		return "device error response"
	case ErrNoDataExpectedResponse:
		return "no data expected"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is the error type returned by every layer of the engine. Kind is
// always set; Op names the command or token involved when known; Err holds
// the wrapped low-level cause when one exists.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the low-level cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) a protocol Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
