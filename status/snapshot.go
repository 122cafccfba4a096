package status

import (
	"strconv"
	"sync/atomic"
)

// Snapshot renders every metric as key/value text, bools first, then ints, then floats
// Each group is sorted by key
func (r *Registry) Snapshot() []Line {
	lines := make([]Line, 0, r.TotalCount())

	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		lines = append(lines, Line{Key: key, Value: strconv.FormatBool(ptr.Load())})
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, Line{Key: key, Value: strconv.FormatInt(ptr.Load(), 10)})
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, Line{Key: key, Value: strconv.FormatFloat(ptr.Load(), 'f', 3, 64)})
	})

	return lines
}
