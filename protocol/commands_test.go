package protocol

import (
	"strings"
	"testing"
	"time"
)

func TestCommandRoundTrip(t *testing.T) {
	imp, err := Import("ABCDEF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		cmd   Command
		wire  string
		delay time.Duration
		shape ResponseShape
	}{
		{name: "baud", cmd: Baud(Bps300), wire: "BAUD,300", delay: 0, shape: ShapeNone},
		{name: "calibration clear", cmd: CalibrationClear(), wire: "CAL,CLEAR", delay: 300 * time.Millisecond, shape: ShapeAck},
		{name: "device address", cmd: DeviceAddress(88), wire: "I2C,88", delay: 300 * time.Millisecond, shape: ShapeNone},
		{name: "device information", cmd: DeviceInformation(), wire: "I", delay: 300 * time.Millisecond, shape: ShapeTyped},
		{name: "export", cmd: Export(), wire: "EXPORT", delay: 300 * time.Millisecond, shape: ShapeTyped},
		{name: "export info", cmd: ExportInfo(), wire: "EXPORT,?", delay: 300 * time.Millisecond, shape: ShapeTyped},
		{name: "factory", cmd: Factory(), wire: "FACTORY", delay: 0, shape: ShapeNone},
		{name: "find", cmd: Find(), wire: "F", delay: 300 * time.Millisecond, shape: ShapeNone},
		{name: "import", cmd: imp, wire: "IMPORT,ABCDEF", delay: 300 * time.Millisecond, shape: ShapeAck},
		{name: "led off", cmd: LedOff(), wire: "L,0", delay: 300 * time.Millisecond, shape: ShapeAck},
		{name: "led on", cmd: LedOn(), wire: "L,1", delay: 300 * time.Millisecond, shape: ShapeAck},
		{name: "led state", cmd: LedState(), wire: "L,?", delay: 300 * time.Millisecond, shape: ShapeTyped},
		{name: "plock disable", cmd: ProtocolLockDisable(), wire: "PLOCK,0", delay: 300 * time.Millisecond, shape: ShapeAck},
		{name: "plock enable", cmd: ProtocolLockEnable(), wire: "PLOCK,1", delay: 300 * time.Millisecond, shape: ShapeAck},
		{name: "plock state", cmd: ProtocolLockState(), wire: "PLOCK,?", delay: 300 * time.Millisecond, shape: ShapeTyped},
		{name: "sleep", cmd: Sleep(), wire: "SLEEP", delay: 0, shape: ShapeNone},
		{name: "status", cmd: Status(), wire: "STATUS", delay: 300 * time.Millisecond, shape: ShapeTyped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.wire {
				t.Errorf("String() = %q, want %q", got, tt.wire)
			}
			if got := tt.cmd.Delay(); got != tt.delay {
				t.Errorf("Delay() = %v, want %v", got, tt.delay)
			}
			if got := tt.cmd.Shape(); got != tt.shape {
				t.Errorf("Shape() = %v, want %v", got, tt.shape)
			}

			// Canonical form parses back to the same value.
			parsed, err := ParseCommand(tt.wire)
			if err != nil {
				t.Fatalf("ParseCommand(%q): %v", tt.wire, err)
			}
			if parsed != tt.cmd {
				t.Errorf("ParseCommand(%q) = %v, want %v", tt.wire, parsed, tt.cmd)
			}

			// Parsing is case-normalizing.
			lower := strings.ToLower(tt.wire)
			parsed, err = ParseCommand(lower)
			if err != nil {
				t.Fatalf("ParseCommand(%q): %v", lower, err)
			}
			if parsed != tt.cmd {
				t.Errorf("ParseCommand(%q) = %v, want %v", lower, parsed, tt.cmd)
			}
		})
	}
}

func TestBaudAllRates(t *testing.T) {
	rates := []BpsRate{Bps300, Bps1200, Bps2400, Bps9600, Bps19200, Bps38400, Bps57600, Bps115200}

	for _, rate := range rates {
		t.Run(rate.String(), func(t *testing.T) {
			cmd := Baud(rate)
			wire := "BAUD," + rate.String()
			if cmd.String() != wire {
				t.Errorf("String() = %q, want %q", cmd.String(), wire)
			}

			parsed, err := ParseCommand(wire)
			if err != nil {
				t.Fatalf("ParseCommand(%q): %v", wire, err)
			}
			if parsed != cmd {
				t.Errorf("ParseCommand(%q) = %v, want %v", wire, parsed, cmd)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind ErrorKind
	}{
		{name: "empty", in: "", kind: ErrCommandParse},
		{name: "unknown verb", in: "BOGUS", kind: ErrCommandParse},
		{name: "overlong", in: strings.Repeat("A", MaxCommandLen+1), kind: ErrCommandParse},
		{name: "bad baud rate", in: "BAUD,301", kind: ErrBpsRateParse},
		{name: "baud trailing field", in: "BAUD,300,300", kind: ErrBaudParse},
		{name: "baud empty rate", in: "BAUD,", kind: ErrBpsRateParse},
		{name: "address empty", in: "I2C,", kind: ErrCommandParse},
		{name: "address not a number", in: "I2C,1a21.43", kind: ErrCommandParse},
		{name: "address trailing field", in: "I2C,88,88", kind: ErrCommandParse},
		{name: "import empty", in: "IMPORT,", kind: ErrCommandParse},
		{name: "import too long", in: "IMPORT,ABCDEFGHIJKLM", kind: ErrCommandParse},
		{name: "import trailing field", in: "IMPORT,AB,CD", kind: ErrCommandParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.in)
			if err == nil {
				t.Fatalf("ParseCommand(%q) succeeded, want %v", tt.in, tt.kind)
			}
			if !IsKind(err, tt.kind) {
				t.Errorf("ParseCommand(%q) = %v, want kind %v", tt.in, err, tt.kind)
			}
		})
	}
}

func TestImportValidation(t *testing.T) {
	cmd, err := Import("abcdef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.String() != "IMPORT,ABCDEF" {
		t.Errorf("String() = %q, want %q", cmd.String(), "IMPORT,ABCDEF")
	}

	// 12 characters is the maximum fragment.
	if _, err := Import("123456abcdef"); err != nil {
		t.Errorf("12-char fragment rejected: %v", err)
	}

	for _, bad := range []string{"", "1234567890123", "AB,CD"} {
		if _, err := Import(bad); !IsKind(err, ErrCommandParse) {
			t.Errorf("Import(%q) = %v, want kind %v", bad, err, ErrCommandParse)
		}
	}
}

func TestParseDeviceAddressValues(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{in: "i2c,1", want: DeviceAddress(1)},
		{in: "I2C,123", want: DeviceAddress(123)},
		{in: "I2C,65535", want: DeviceAddress(65535)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			if err != nil {
				t.Fatalf("ParseCommand(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseCommand("I2C,65536"); !IsKind(err, ErrCommandParse) {
		t.Errorf("out-of-range address = %v, want kind %v", err, ErrCommandParse)
	}
}
