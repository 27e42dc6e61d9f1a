package protocol

// Sanitize clears bit 7 of every byte in p, in place. The hardware
// interface occasionally sets the high bit spuriously on the bus; clearing
// it is lossless for the 7-bit ASCII alphabet this protocol uses.
//
// Sanitize is idempotent and a no-op on already-clean 7-bit data.
func Sanitize(p []byte) {
	for i := range p {
		p[i] &= 0x7F
	}
}
