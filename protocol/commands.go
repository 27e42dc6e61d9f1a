package protocol

import (
	"strconv"
	"strings"
	"time"
)

// CommandKind enumerates the closed set of wire commands shared by the EZO
// chip family.
type CommandKind int

const (
	// CmdBaud requests switching the chip to UART mode at a given rate
	CmdBaud CommandKind = iota

	// CmdCalibrationClear clears the current calibration
	CmdCalibrationClear

	// CmdDeviceAddress changes the chip's I2C address
	CmdDeviceAddress

	// CmdDeviceInformation queries device name and firmware version
	CmdDeviceInformation

	// CmdExport streams one line of the calibration export
	CmdExport

	// CmdExportInfo queries the size of the calibration export
	CmdExportInfo

	// CmdFactory performs a factory reset
	CmdFactory

	// CmdFind blinks the white LED to locate the chip
	CmdFind

	// CmdImport loads one line of a calibration export
	CmdImport

	// CmdLedOff disables the status LED
	CmdLedOff

	// CmdLedOn enables the status LED
	CmdLedOn

	// CmdLedState queries the status LED
	CmdLedState

	// CmdProtocolLockDisable disables the I2C protocol lock
	CmdProtocolLockDisable

	// CmdProtocolLockEnable enables the I2C protocol lock
	CmdProtocolLockEnable

	// CmdProtocolLockState queries the I2C protocol lock
	CmdProtocolLockState

	// CmdSleep puts the chip into low-power sleep
	CmdSleep

	// CmdStatus queries restart reason and VCC voltage
	CmdStatus
)

// ResponseShape declares what a command's reply buffer holds.
type ResponseShape int

const (
	// ShapeNone means the command yields no readable reply
	ShapeNone ResponseShape = iota

	// ShapeAck means the reply is a bare status byte
	ShapeAck

	// ShapeTyped means the reply carries a payload for a typed parser
	ShapeTyped
)

// processingDelay is the settle time the chips need after commands that
// trigger chip-side computation. Commands that reset or detach the chip
// (BAUD, FACTORY, SLEEP) have no delay because nothing is read back.
const processingDelay = 300 * time.Millisecond

// descriptor is the per-kind entry of the command table: the static wire
// string (empty for commands rendered from an argument), the settle delay,
// and the expected response shape.
type descriptor struct {
	wire  string
	delay time.Duration
	shape ResponseShape
}

var descriptors = map[CommandKind]descriptor{
	CmdBaud:                {delay: 0, shape: ShapeNone},
	CmdCalibrationClear:    {wire: "CAL,CLEAR", delay: processingDelay, shape: ShapeAck},
	CmdDeviceAddress:       {delay: processingDelay, shape: ShapeNone},
	CmdDeviceInformation:   {wire: "I", delay: processingDelay, shape: ShapeTyped},
	CmdExport:              {wire: "EXPORT", delay: processingDelay, shape: ShapeTyped},
	CmdExportInfo:          {wire: "EXPORT,?", delay: processingDelay, shape: ShapeTyped},
	CmdFactory:             {wire: "FACTORY", delay: 0, shape: ShapeNone},
	CmdFind:                {wire: "F", delay: processingDelay, shape: ShapeNone},
	CmdImport:              {delay: processingDelay, shape: ShapeAck},
	CmdLedOff:              {wire: "L,0", delay: processingDelay, shape: ShapeAck},
	CmdLedOn:               {wire: "L,1", delay: processingDelay, shape: ShapeAck},
	CmdLedState:            {wire: "L,?", delay: processingDelay, shape: ShapeTyped},
	CmdProtocolLockDisable: {wire: "PLOCK,0", delay: processingDelay, shape: ShapeAck},
	CmdProtocolLockEnable:  {wire: "PLOCK,1", delay: processingDelay, shape: ShapeAck},
	CmdProtocolLockState:   {wire: "PLOCK,?", delay: processingDelay, shape: ShapeTyped},
	CmdSleep:               {wire: "SLEEP", delay: 0, shape: ShapeNone},
	CmdStatus:              {wire: "STATUS", delay: processingDelay, shape: ShapeTyped},
}

// Command is one logical EZO command: a kind plus its typed argument, if
// any. Commands are immutable values; two commands are equal iff they
// render to the same wire string.
type Command struct {
	kind CommandKind
	rate BpsRate
	addr uint16
	data string
}

// Baud builds the `BAUD,<rate>` command. The chip switches to UART mode
// immediately; nothing is read back.
func Baud(rate BpsRate) Command { return Command{kind: CmdBaud, rate: rate} }

// CalibrationClear builds the `CAL,CLEAR` command.
func CalibrationClear() Command { return Command{kind: CmdCalibrationClear} }

// DeviceAddress builds the `I2C,<addr>` command. The chip reboots on the
// new address; nothing is read back. The argument is sent as-is, the chip
// itself rejects addresses it cannot use.
func DeviceAddress(addr uint16) Command { return Command{kind: CmdDeviceAddress, addr: addr} }

// DeviceInformation builds the `I` command.
func DeviceInformation() Command { return Command{kind: CmdDeviceInformation} }

// Export builds the `EXPORT` command.
func Export() Command { return Command{kind: CmdExport} }

// ExportInfo builds the `EXPORT,?` command.
func ExportInfo() Command { return Command{kind: CmdExportInfo} }

// Factory builds the `FACTORY` command.
func Factory() Command { return Command{kind: CmdFactory} }

// Find builds the `F` command.
func Find() Command { return Command{kind: CmdFind} }

// Import builds the `IMPORT,<data>` command. The fragment is uppercased to
// the canonical form and must be 1 to MaxExportLen characters with no
// comma; anything else fails with ErrCommandParse.
func Import(data string) (Command, error) {
	d := strings.ToUpper(data)
	if len(d) == 0 || len(d) > MaxExportLen || strings.Contains(d, ",") {
		return Command{}, &Error{Kind: ErrCommandParse, Op: "IMPORT," + data}
	}
	return Command{kind: CmdImport, data: d}, nil
}

// LedOff builds the `L,0` command.
func LedOff() Command { return Command{kind: CmdLedOff} }

// LedOn builds the `L,1` command.
func LedOn() Command { return Command{kind: CmdLedOn} }

// LedState builds the `L,?` command.
func LedState() Command { return Command{kind: CmdLedState} }

// ProtocolLockDisable builds the `PLOCK,0` command.
func ProtocolLockDisable() Command { return Command{kind: CmdProtocolLockDisable} }

// ProtocolLockEnable builds the `PLOCK,1` command.
func ProtocolLockEnable() Command { return Command{kind: CmdProtocolLockEnable} }

// ProtocolLockState builds the `PLOCK,?` command.
func ProtocolLockState() Command { return Command{kind: CmdProtocolLockState} }

// Sleep builds the `SLEEP` command.
func Sleep() Command { return Command{kind: CmdSleep} }

// Status builds the `STATUS` command.
func Status() Command { return Command{kind: CmdStatus} }

// Kind returns the command's kind.
func (c Command) Kind() CommandKind { return c.kind }

// Delay returns the settle time the chip needs before its reply is ready.
func (c Command) Delay() time.Duration { return descriptors[c.kind].delay }

// Shape returns the expected response shape.
func (c Command) Shape() ResponseShape { return descriptors[c.kind].shape }

// String returns the canonical uppercase wire string.
func (c Command) String() string {
	switch c.kind {
	case CmdBaud:
		return "BAUD," + c.rate.String()
	case CmdDeviceAddress:
		return "I2C," + strconv.FormatUint(uint64(c.addr), 10)
	case CmdImport:
		return "IMPORT," + c.data
	default:
		return descriptors[c.kind].wire
	}
}

// Bytes returns the wire string as the ASCII bytes written to the bus.
func (c Command) Bytes() []byte { return []byte(c.String()) }

// ParseCommand parses a wire string into a Command. Input is
// case-insensitive; the parsed command renders back to the canonical
// uppercase form, so ParseCommand(cmd.String()) == cmd for every valid
// command. Unknown or malformed text fails with ErrCommandParse, except
// for BAUD malformations which fail with ErrBaudParse or ErrBpsRateParse.
func ParseCommand(s string) (Command, error) {
	if len(s) == 0 || len(s) > MaxCommandLen {
		return Command{}, &Error{Kind: ErrCommandParse, Op: s}
	}
	supper := strings.ToUpper(s)

	switch supper {
	case "CAL,CLEAR":
		return CalibrationClear(), nil
	case "I":
		return DeviceInformation(), nil
	case "EXPORT":
		return Export(), nil
	case "EXPORT,?":
		return ExportInfo(), nil
	case "FACTORY":
		return Factory(), nil
	case "F":
		return Find(), nil
	case "L,0":
		return LedOff(), nil
	case "L,1":
		return LedOn(), nil
	case "L,?":
		return LedState(), nil
	case "PLOCK,0":
		return ProtocolLockDisable(), nil
	case "PLOCK,1":
		return ProtocolLockEnable(), nil
	case "PLOCK,?":
		return ProtocolLockState(), nil
	case "SLEEP":
		return Sleep(), nil
	case "STATUS":
		return Status(), nil
	}

	switch {
	case strings.HasPrefix(supper, "BAUD,"):
		return parseBaud(supper[len("BAUD,"):])
	case strings.HasPrefix(supper, "I2C,"):
		return parseDeviceAddress(supper[len("I2C,"):])
	case strings.HasPrefix(supper, "IMPORT,"):
		return Import(supper[len("IMPORT,"):])
	}

	return Command{}, &Error{Kind: ErrCommandParse, Op: s}
}

func parseBaud(rest string) (Command, error) {
	fields := strings.Split(rest, ",")
	if len(fields) != 1 {
		return Command{}, &Error{Kind: ErrBaudParse, Op: "BAUD," + rest}
	}
	rate, err := ParseBpsRate(fields[0])
	if err != nil {
		return Command{}, err
	}
	return Baud(rate), nil
}

func parseDeviceAddress(rest string) (Command, error) {
	fields := strings.Split(rest, ",")
	if len(fields) != 1 {
		return Command{}, &Error{Kind: ErrCommandParse, Op: "I2C," + rest}
	}
	addr, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return Command{}, &Error{Kind: ErrCommandParse, Op: "I2C," + rest, Err: err}
	}
	return DeviceAddress(uint16(addr)), nil
}
