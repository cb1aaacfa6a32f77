package netbuf

import (
	"github.com/huynhanx03/go-netbuf/pkg/datastructs/netbuf"
	"github.com/huynhanx03/go-netbuf/pkg/pool/internal/calibrated"
	"github.com/huynhanx03/go-netbuf/pkg/utils"
)

var defaultPool = calibrated.New(
	// newFunc: create Buffer with the given content capacity
	func(size int) *netbuf.Buffer {
		return netbuf.New(size)
	},
	// sizeFunc: bucket by capacity, rounded down so a bucket never
	// promises more than its buffers hold (capacity includes the
	// prepend reserve and rarely lands on a bucket boundary)
	func(b *netbuf.Buffer) int {
		if b.Cap() < calibrated.MinSize {
			return 0
		}
		return utils.FloorToPowerOfTwo(b.Cap())
	},
	// resetFunc: drop content before pooling
	func(b *netbuf.Buffer) {
		b.RetrieveAll()
	},
)

// Get returns an empty buffer from the default pool.
func Get() *netbuf.Buffer {
	return defaultPool.Get(int(defaultPool.DefaultSize()))
}

// GetSize returns an empty buffer with capacity of at least the given size.
func GetSize(size int) *netbuf.Buffer {
	return defaultPool.Get(size)
}

// Put returns a buffer to the default pool. Released buffers are
// dropped.
func Put(b *netbuf.Buffer) {
	defaultPool.Put(b)
}

// DefaultSize returns the calibrated default size.
func DefaultSize() uint64 {
	return defaultPool.DefaultSize()
}

// MaxSize returns the calibrated max size (95th percentile).
func MaxSize() uint64 {
	return defaultPool.MaxSize()
}

// GetStats returns allocation counts per bucket.
func GetStats() [calibrated.Steps]uint64 {
	return defaultPool.GetStats()
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	return calibrated.BucketSize(i)
}
