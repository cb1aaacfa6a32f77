package calibrated

import (
	"sort"
	"sync"
	"sync/atomic"
)

const (
	MinBitSize = 6  // 64 bytes (CPU cache line)
	Steps      = 20 // 64B to 32MB

	MinSize = 1 << MinBitSize
	MaxSize = 1 << (MinBitSize + Steps - 1)

	CalibrateThreshold = 42000
	Percentile95       = 0.95
)

// Pool is a generic pool with power-of-two size buckets. It tracks how
// often each bucket is used and periodically recalibrates the maximum
// size it is willing to retain, so one oversized burst does not pin
// large items in memory forever.
type Pool[T any] struct {
	putCalls    [Steps]uint64
	calibrating uint64
	defaultSize uint64
	maxSize     uint64
	buckets     [Steps]sync.Pool
	newFunc     func(size int) T
	sizeFunc    func(T) int
	resetFunc   func(T)
}

// New creates a calibrated pool. newFunc builds a fresh item of the
// given size, sizeFunc reports an item's size for bucketing, and
// resetFunc (optional) clears an item before it re-enters the pool.
func New[T any](newFunc func(size int) T, sizeFunc func(T) int, resetFunc func(T)) *Pool[T] {
	p := &Pool[T]{
		newFunc:   newFunc,
		sizeFunc:  sizeFunc,
		resetFunc: resetFunc,
	}
	for i := range p.buckets {
		size := MinSize << i
		p.buckets[i].New = func() any {
			return newFunc(size)
		}
	}
	return p
}

// Get returns an item of at least the given size.
func (p *Pool[T]) Get(size int) T {
	if size <= 0 {
		size = MinSize
	}

	idx := SizeToIndex(size)
	if idx >= Steps {
		return p.newFunc(size)
	}

	return p.buckets[idx].Get().(T)
}

// Put returns an item to the pool. Items larger than the calibrated
// maximum are dropped for the garbage collector.
func (p *Pool[T]) Put(item T) {
	size := p.sizeFunc(item)
	if size == 0 {
		return
	}

	idx := SizeToIndex(size)
	if idx >= Steps {
		return
	}

	if atomic.AddUint64(&p.putCalls[idx], 1) > CalibrateThreshold {
		p.calibrate()
	}

	max := int(atomic.LoadUint64(&p.maxSize))
	if max > 0 && size > max {
		return
	}

	if p.resetFunc != nil {
		p.resetFunc(item)
	}
	p.buckets[idx].Put(item)
}

type bucketUsage struct {
	calls uint64
	size  uint64
}

// calibrate snapshots per-bucket usage and derives the default size
// (most used bucket) and the max retained size (95th percentile of
// traffic). Only one goroutine calibrates at a time.
func (p *Pool[T]) calibrate() {
	if !atomic.CompareAndSwapUint64(&p.calibrating, 0, 1) {
		return
	}
	defer atomic.StoreUint64(&p.calibrating, 0)

	usage := make([]bucketUsage, 0, Steps)
	var total uint64
	for i := 0; i < Steps; i++ {
		calls := atomic.SwapUint64(&p.putCalls[i], 0)
		total += calls
		usage = append(usage, bucketUsage{calls: calls, size: MinSize << i})
	}
	sort.Slice(usage, func(i, j int) bool {
		return usage[i].calls > usage[j].calls
	})

	defaultSize := usage[0].size
	maxSize := defaultSize
	threshold := uint64(float64(total) * Percentile95)

	var sum uint64
	for _, u := range usage {
		if sum > threshold {
			break
		}
		sum += u.calls
		if u.size > maxSize {
			maxSize = u.size
		}
	}

	atomic.StoreUint64(&p.defaultSize, defaultSize)
	atomic.StoreUint64(&p.maxSize, maxSize)
}

// DefaultSize returns the calibrated default size.
func (p *Pool[T]) DefaultSize() uint64 {
	return atomic.LoadUint64(&p.defaultSize)
}

// MaxSize returns the calibrated max size.
func (p *Pool[T]) MaxSize() uint64 {
	return atomic.LoadUint64(&p.maxSize)
}

// GetStats returns allocation counts per bucket.
func (p *Pool[T]) GetStats() [Steps]uint64 {
	var result [Steps]uint64
	for i := range p.putCalls {
		result[i] = atomic.LoadUint64(&p.putCalls[i])
	}
	return result
}

// SizeToIndex returns the bucket index for a given size.
func SizeToIndex(n int) int {
	n--
	n >>= MinBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return MinSize << i
}
