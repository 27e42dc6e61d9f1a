// Package ezo drives Atlas Scientific EZO sensor chips over I2C.
//
// # Basic Usage
//
//	tr, err := ezo.OpenI2C("/dev/i2c-1", 0x66)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tr.Close()
//
//	dev := ezo.New(tr)
//
//	info, err := dev.Info()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("chip %s firmware %s\n", info.Device, info.Firmware)
//
// # Command Cadence
//
// Every command follows the same cadence: the frame is written (with one
// automatic retry after a short backoff), the engine blocks for the
// command's settle delay, then a fixed-size reply buffer is read and
// decoded. Run exposes this for arbitrary commands; the typed methods
// (Info, Status, LedOn, ExportAll, ...) wrap Run and the matching response
// parser.
//
// # Custom Transports
//
// Device only needs a Transport, so tests and simulations can stand in for
// the bus:
//
//	type loopback struct{ reply []byte }
//	func (l *loopback) Write(p []byte) error { ... }
//	func (l *loopback) Read(p []byte) error  { copy(p, l.reply); return nil }
//
//	dev := ezo.New(&loopback{}, ezo.WithSleepFunc(func(time.Duration) {}))
//
// # Error Handling
//
// All failures carry a protocol.ErrorKind; match with protocol.IsKind:
//
//	st, err := dev.Status()
//	if protocol.IsKind(err, protocol.ErrPendingResponse) {
//	    // chip still computing, read again after a longer delay
//	}
package ezo
