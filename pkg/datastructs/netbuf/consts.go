package netbuf

const (
	// defaultPrependSize is the reserved region before the content zone,
	// sized for a small framing header (length or type prefix).
	defaultPrependSize = 8

	// defaultBufferSize is the default initial content capacity for a new Buffer.
	defaultBufferSize = 1024

	// minReadSize is the minimum writable space guaranteed before each
	// read from an io.Reader.
	minReadSize = 512

	// growThreshold is the capacity above which growth switches from
	// doubling to 25% steps.
	growThreshold = 4 * 1024
)
