package ezo

import (
	"fmt"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2CTransport is a Transport backed by a periph.io I2C bus.
type I2CTransport struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// OpenI2C opens the named I2C bus and returns a Transport addressing the
// chip at addr. An empty name selects the first available bus.
//
// Example:
//
//	tr, err := ezo.OpenI2C("/dev/i2c-1", 0x66)
//	if err != nil {
//	    return err
//	}
//	defer tr.Close()
//	dev := ezo.New(tr)
func OpenI2C(name string, addr uint16) (*I2CTransport, error) {
	if _, err := driverreg.Init(); err != nil {
		return nil, fmt.Errorf("init i2c drivers: %w", err)
	}

	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", name, err)
	}

	return &I2CTransport{
		bus: bus,
		dev: &i2c.Dev{Addr: addr, Bus: bus},
	}, nil
}

// Write sends a command frame to the chip.
func (t *I2CTransport) Write(p []byte) error {
	return t.dev.Tx(p, nil)
}

// Read fills p with a reply buffer from the chip.
func (t *I2CTransport) Read(p []byte) error {
	return t.dev.Tx(nil, p)
}

// Close releases the underlying bus.
func (t *I2CTransport) Close() error {
	return t.bus.Close()
}
