package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry publishes loop state for logging and debugging
// The tick loop writes, any goroutine may read
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot returns every metric rendered as a string, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out[k] = strconv.FormatBool(v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out[k] = v.Load()
	})
	return out
}

// Format renders all metrics as sorted key=value pairs on one line
func (r *Registry) Format() string {
	snap := r.Snapshot()
	keys := make([]string, 0, len(snap))
	r.Bools.Range(func(k string, _ *atomic.Bool) { keys = append(keys, k) })
	r.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	r.Strings.Range(func(k string, _ *AtomicString) { keys = append(keys, k) })

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, snap[k]))
	}
	return strings.Join(parts, " ")
}
