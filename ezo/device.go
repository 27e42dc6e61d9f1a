package ezo

import (
	"strings"

	"github.com/saibatizoku/go-ezo/protocol"
)

// Transport carries raw bytes to and from one EZO chip. Write sends a
// complete command frame; Read fills p with a reply buffer. Implementations
// wrap an I2C bus (see OpenI2C) or a test double.
type Transport interface {
	// Write sends a complete command frame to the chip
	Write(p []byte) error

	// Read fills p with a reply buffer from the chip
	Read(p []byte) error
}

// Device drives a single EZO chip over a Transport. It owns the command
// cadence: write with one retry, blocking settle delay, fixed-size read.
//
// Device is safe for concurrent use after initialization as long as the
// underlying Transport is.
type Device struct {
	tr     Transport
	config Config
}

// New creates a Device over the given transport.
//
// Example:
//
//	tr, _ := ezo.OpenI2C("/dev/i2c-1", 0x66)
//	dev := ezo.New(tr,
//	    ezo.WithReplySize(42),
//	    ezo.WithLogger(myLogger),
//	)
func New(tr Transport, opts ...Option) *Device {
	if tr == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		tr:     tr,
		config: cfg,
	}
}

// Run executes one command end to end: write the frame, wait the command's
// settle delay, then read and decode the reply if the command produces one.
// The returned string is the decoded payload; commands with no reply and
// bare acknowledgements return "".
func (d *Device) Run(cmd protocol.Command) (string, error) {
	if err := d.write(cmd); err != nil {
		return "", err
	}

	if delay := cmd.Delay(); delay > 0 {
		d.config.Sleep(delay)
	}

	switch cmd.Shape() {
	case protocol.ShapeNone:
		return "", nil
	default:
		return d.readReply(cmd)
	}
}

// write sends the command frame, retrying once after the configured backoff.
func (d *Device) write(cmd protocol.Command) error {
	frame := cmd.Bytes()

	err := d.tr.Write(frame)
	if err == nil {
		return nil
	}

	d.logDebug("write failed, retrying", "command", cmd.String(), "error", err)
	d.config.Sleep(d.config.WriteBackoff)

	if err = d.tr.Write(frame); err != nil {
		d.logError("write failed after retry", "command", cmd.String(), "error", err)
		return &protocol.Error{Kind: protocol.ErrUnwritableCommand, Op: cmd.String(), Err: err}
	}
	return nil
}

// readReply reads a fixed-size reply buffer and decodes its payload.
func (d *Device) readReply(cmd protocol.Command) (string, error) {
	buf := make([]byte, d.config.ReplySize)
	if err := d.tr.Read(buf); err != nil {
		return "", &protocol.Error{Kind: protocol.ErrI2CRead, Op: cmd.String(), Err: err}
	}

	code, payload, err := protocol.DecodeReply(buf)
	if err != nil {
		d.logDebug("reply not usable", "command", cmd.String(), "code", byte(code), "error", err)
		return "", err
	}

	d.logDebug("reply decoded", "command", cmd.String(), "payload", payload)
	return payload, nil
}

// Info queries the chip's device type and firmware version.
func (d *Device) Info() (*protocol.DeviceInfo, error) {
	payload, err := d.Run(protocol.DeviceInformation())
	if err != nil {
		return nil, err
	}
	return protocol.ParseDeviceInfo(payload)
}

// Status queries the chip's restart reason and supply voltage.
func (d *Device) Status() (*protocol.DeviceStatus, error) {
	payload, err := d.Run(protocol.Status())
	if err != nil {
		return nil, err
	}
	return protocol.ParseDeviceStatus(payload)
}

// Export reads the next line of the calibration export stream.
func (d *Device) Export() (protocol.Exported, error) {
	payload, err := d.Run(protocol.Export())
	if err != nil {
		return protocol.Exported{}, err
	}
	return protocol.ParseExported(payload)
}

// ExportInfo queries how many export lines and bytes to expect.
func (d *Device) ExportInfo() (*protocol.ExportedInfo, error) {
	payload, err := d.Run(protocol.ExportInfo())
	if err != nil {
		return nil, err
	}
	return protocol.ParseExportedInfo(payload)
}

// ExportAll drains the whole calibration export: it asks the chip for the
// line count, then issues EXPORT until the done marker arrives, returning
// the data fragments in order. A stream that runs past the advertised line
// count without a done marker fails with ErrResponseParse.
func (d *Device) ExportAll() ([]string, error) {
	info, err := d.ExportInfo()
	if err != nil {
		return nil, err
	}
	d.logDebug("export starting", "lines", info.Lines, "total_bytes", info.TotalBytes)

	lines := make([]string, 0, info.Lines)
	for i := uint16(0); i <= info.Lines; i++ {
		exp, err := d.Export()
		if err != nil {
			return nil, err
		}
		if exp.Done {
			d.logInfo("export complete", "lines", len(lines))
			return lines, nil
		}
		lines = append(lines, exp.Data)
	}

	return nil, &protocol.Error{
		Kind: protocol.ErrResponseParse,
		Op:   strings.Join(lines, ""),
	}
}

// ImportAll writes a full calibration string previously assembled from
// ExportAll, splitting it into fragments the chip accepts.
func (d *Device) ImportAll(calibration string) error {
	for len(calibration) > 0 {
		n := len(calibration)
		if n > protocol.MaxExportLen {
			n = protocol.MaxExportLen
		}
		if err := d.Import(calibration[:n]); err != nil {
			return err
		}
		calibration = calibration[n:]
	}
	return nil
}

// Import writes one calibration fragment of 1 to 12 characters.
func (d *Device) Import(fragment string) error {
	cmd, err := protocol.Import(fragment)
	if err != nil {
		return err
	}
	_, err = d.Run(cmd)
	return err
}

// LedOn enables the status LED.
func (d *Device) LedOn() error {
	_, err := d.Run(protocol.LedOn())
	return err
}

// LedOff disables the status LED.
func (d *Device) LedOff() error {
	_, err := d.Run(protocol.LedOff())
	return err
}

// LedState queries whether the status LED is enabled.
func (d *Device) LedState() (protocol.LedStatus, error) {
	payload, err := d.Run(protocol.LedState())
	if err != nil {
		return 0, err
	}
	return protocol.ParseLedStatus(payload)
}

// ProtocolLockEnable locks the chip to its current interface.
func (d *Device) ProtocolLockEnable() error {
	_, err := d.Run(protocol.ProtocolLockEnable())
	return err
}

// ProtocolLockDisable unlocks the chip's interface.
func (d *Device) ProtocolLockDisable() error {
	_, err := d.Run(protocol.ProtocolLockDisable())
	return err
}

// ProtocolLockState queries the protocol lock.
func (d *Device) ProtocolLockState() (protocol.ProtocolLockStatus, error) {
	payload, err := d.Run(protocol.ProtocolLockState())
	if err != nil {
		return 0, err
	}
	return protocol.ParseProtocolLockStatus(payload)
}

// Find makes the chip blink its LED so it can be located on a crowded bus.
func (d *Device) Find() error {
	_, err := d.Run(protocol.Find())
	return err
}

// ClearCalibration erases the chip's calibration data.
func (d *Device) ClearCalibration() error {
	_, err := d.Run(protocol.CalibrationClear())
	return err
}

// Factory resets the chip to factory defaults. The chip reboots and sends
// no reply.
func (d *Device) Factory() error {
	_, err := d.Run(protocol.Factory())
	return err
}

// Sleep puts the chip into its low-power state. Any subsequent command
// wakes it.
func (d *Device) Sleep() error {
	_, err := d.Run(protocol.Sleep())
	return err
}

// SetBaud switches the chip to UART mode at the given rate. The chip leaves
// the I2C bus immediately and sends no reply.
func (d *Device) SetBaud(rate protocol.BpsRate) error {
	_, err := d.Run(protocol.Baud(rate))
	return err
}

// SetAddress changes the chip's I2C address. The chip resets and sends no
// reply; subsequent commands need a Transport opened at the new address.
func (d *Device) SetAddress(addr uint16) error {
	_, err := d.Run(protocol.DeviceAddress(addr))
	return err
}
