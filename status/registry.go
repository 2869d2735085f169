package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot renders every metric as "key=value" in sorted order per type
// Used by the shutdown log line
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return out
}
