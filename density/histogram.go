package density

// Histogram counts byte occurrences. Its weight is the count.
type Histogram struct {
	counts [256]uint64
	total  uint64
}

// NewHistogram returns the histogram of data.
func NewHistogram(data []byte) *Histogram {
	h := &Histogram{}
	h.Observe(data)
	return h
}

// Observe adds every byte of data to the histogram.
func (h *Histogram) Observe(data []byte) {
	for _, b := range data {
		h.counts[b]++
	}
	h.total += uint64(len(data))
}

// Count returns the number of times b was observed.
func (h *Histogram) Count(b byte) uint64 { return h.counts[b] }

// Total returns the number of observed bytes.
func (h *Histogram) Total() uint64 { return h.total }

func (h *Histogram) Weight(x int) float64 {
	if x < 0 || x >= len(h.counts) {
		return 0
	}
	return float64(h.counts[x])
}
