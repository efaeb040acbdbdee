package monitor

import "github.com/rileyhilliard/netmon/internal/metrics"

// DefaultHistorySize is the default number of summary values kept per metric.
const DefaultHistorySize = 60

// History keeps recent summary values per metric in ring buffers for the
// card sparklines. It lives on the Bubble Tea update loop and is not safe
// for concurrent use.
type History struct {
	size    int
	metrics map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:    size,
		metrics: make(map[string]*ringBuffer),
	}
}

// Push records every reading of a snapshot.
func (h *History) Push(snap metrics.Snapshot) {
	for _, r := range snap.Readings {
		buf, ok := h.metrics[r.Name]
		if !ok {
			buf = newRingBuffer(h.size)
			h.metrics[r.Name] = buf
		}
		buf.push(r.Value)
	}
}

// Get returns up to count of the most recent values for a metric, oldest first.
func (h *History) Get(name string, count int) []float64 {
	buf, ok := h.metrics[name]
	if !ok {
		return nil
	}
	return buf.getLast(count)
}

// Count returns how many values are stored for a metric.
func (h *History) Count(name string) int {
	buf, ok := h.metrics[name]
	if !ok {
		return 0
	}
	return buf.count
}

// Size returns the per-metric capacity.
func (h *History) Size() int {
	return h.size
}

// ClearAll removes all history.
func (h *History) ClearAll() {
	h.metrics = make(map[string]*ringBuffer)
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head is the next write position, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}

	return result
}
