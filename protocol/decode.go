package protocol

import (
	"bytes"
	"unicode/utf8"
)

// ResponseCodeOf maps a status byte to its ResponseCode. The mapping is
// total: 0x01, 0x02, 0xFE and 0xFF map to their named codes, every other
// byte maps to UnknownError.
func ResponseCodeOf(b byte) ResponseCode {
	switch ResponseCode(b) {
	case Success, DeviceError, Pending, NoDataExpected:
		return ResponseCode(b)
	default:
		return UnknownError
	}
}

// DecodeReply validates a raw reply buffer and decodes its payload. The
// first byte determines the ResponseCode; on Success the remaining bytes
// must contain a nul terminator, and the prefix before it is sanitized and
// returned as a UTF-8 string (terminator excluded).
//
// Every non-Success code yields its corresponding error kind; a missing
// terminator, an embedded nul after sanitization, invalid UTF-8, or an
// unrecognized status byte all yield ErrMalformedResponse. DecodeReply is a
// pure function of the buffer; it never touches the bus.
func DecodeReply(buf []byte) (ResponseCode, string, error) {
	if len(buf) == 0 {
		return UnknownError, "", &Error{Kind: ErrMalformedResponse}
	}

	code := ResponseCodeOf(buf[0])
	switch code {
	case Success:
		payload := buf[1:]
		end := bytes.IndexByte(payload, 0)
		if end < 0 {
			return code, "", &Error{Kind: ErrMalformedResponse}
		}

		data := make([]byte, end)
		copy(data, payload[:end])
		Sanitize(data)

		if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
			return code, "", &Error{Kind: ErrMalformedResponse}
		}
		return code, string(data), nil

	case Pending:
		return code, "", &Error{Kind: ErrPendingResponse}

	case DeviceError:
		return code, "", &Error{Kind: ErrDeviceErrorResponse}

	case NoDataExpected:
		return code, "", &Error{Kind: ErrNoDataExpectedResponse}

	default:
		return code, "", &Error{Kind: ErrMalformedResponse}
	}
}
