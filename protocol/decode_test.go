package protocol

import (
	"bytes"
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Run("clears high bits", func(t *testing.T) {
		buf := []byte{0x3F, 0x49, 0xAC, 0x70, 0xC8, 0xAC, 0x31, 0x2E, 0x39, 0x38}
		Sanitize(buf)
		if got := string(buf); got != "?I,pH,1.98" {
			t.Errorf("Sanitize = %q, want %q", got, "?I,pH,1.98")
		}
	})

	t.Run("leaves clean ascii alone", func(t *testing.T) {
		buf := []byte("?STATUS,P,3.15")
		want := append([]byte(nil), buf...)
		Sanitize(buf)
		if !bytes.Equal(buf, want) {
			t.Errorf("Sanitize changed clean input: %q", buf)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		buf := []byte{0xC1, 0xF2, 0x80}
		Sanitize(buf)
		once := append([]byte(nil), buf...)
		Sanitize(buf)
		if !bytes.Equal(buf, once) {
			t.Errorf("second Sanitize changed output: %q vs %q", buf, once)
		}
	})

	t.Run("empty", func(t *testing.T) {
		Sanitize(nil)
	})
}

func TestResponseCodeOf(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := ResponseCodeOf(byte(b))
		var want ResponseCode
		switch byte(b) {
		case 0x01:
			want = Success
		case 0x02:
			want = DeviceError
		case 0xFE:
			want = Pending
		case 0xFF:
			want = NoDataExpected
		default:
			want = UnknownError
		}
		if got != want {
			t.Errorf("ResponseCodeOf(%#02x) = %v, want %v", b, got, want)
		}
	}
}

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		code    ResponseCode
		payload string
		kind    ErrorKind
		wantErr bool
	}{
		{
			name:    "success with payload",
			buf:     []byte{0x01, '?', 'I', ',', 'R', 'T', 'D', ',', '2', '.', '0', '1', 0x00},
			code:    Success,
			payload: "?I,RTD,2.01",
		},
		{
			name:    "success empty payload",
			buf:     []byte{0x01, 0x00},
			code:    Success,
			payload: "",
		},
		{
			name:    "high bits flipped",
			buf:     []byte{0x01, 0x3F, 0x49, 0xAC, 0x70, 0xC8, 0xAC, 0x31, 0x2E, 0x39, 0x38, 0x00},
			code:    Success,
			payload: "?I,pH,1.98",
		},
		{
			name:    "bytes past the terminator are ignored",
			buf:     []byte{0x01, 'O', 'K', 0x00, 0xDE, 0xAD, 0xBE, 0xEF},
			code:    Success,
			payload: "OK",
		},
		{
			name:    "missing terminator",
			buf:     []byte{0x01, 'O', 'K'},
			code:    Success,
			kind:    ErrMalformedResponse,
			wantErr: true,
		},
		{
			name:    "embedded nul after sanitize",
			buf:     []byte{0x01, 'A', 0x80, 'B', 0x00},
			code:    Success,
			kind:    ErrMalformedResponse,
			wantErr: true,
		},
		{
			name:    "pending",
			buf:     []byte{0xFE},
			code:    Pending,
			kind:    ErrPendingResponse,
			wantErr: true,
		},
		{
			name:    "device error",
			buf:     []byte{0x02},
			code:    DeviceError,
			kind:    ErrDeviceErrorResponse,
			wantErr: true,
		},
		{
			name:    "no data expected",
			buf:     []byte{0xFF},
			code:    NoDataExpected,
			kind:    ErrNoDataExpectedResponse,
			wantErr: true,
		},
		{
			name:    "unknown status byte",
			buf:     []byte{0x42, 'O', 'K', 0x00},
			code:    UnknownError,
			kind:    ErrMalformedResponse,
			wantErr: true,
		},
		{
			name:    "empty buffer",
			buf:     nil,
			code:    UnknownError,
			kind:    ErrMalformedResponse,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, payload, err := DecodeReply(tt.buf)
			if code != tt.code {
				t.Errorf("code = %v, want %v", code, tt.code)
			}
			if tt.wantErr {
				if !IsKind(err, tt.kind) {
					t.Fatalf("DecodeReply = %v, want kind %v", err, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload != tt.payload {
				t.Errorf("payload = %q, want %q", payload, tt.payload)
			}
		})
	}
}

func TestDecodeReplyDoesNotMutateInput(t *testing.T) {
	buf := []byte{0x01, 0xC1, 0xC2, 0x00}
	orig := append([]byte(nil), buf...)

	_, payload, err := DecodeReply(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != "AB" {
		t.Errorf("payload = %q, want %q", payload, "AB")
	}
	if !bytes.Equal(buf, orig) {
		t.Errorf("DecodeReply mutated the input buffer: %v", buf)
	}
}
