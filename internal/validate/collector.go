package validate

import "time"

// Collector accumulates check outcomes in emission order and maintains the
// running status counters. It is owned by a single Runner for the duration
// of one run; no locking is needed because execution is sequential.
//
// Recording cannot fail: the collector is pure bookkeeping plus an optional
// emit hook for live console output.
type Collector struct {
	outcomes []Outcome
	stats    Stats
	emit     func(Outcome)
}

// NewCollector creates an empty Collector. The emit hook, if non-nil, is
// invoked once per recorded outcome so a user watching a long run sees live
// progress instead of a final dump.
func NewCollector(emit func(Outcome)) *Collector {
	return &Collector{emit: emit}
}

// Record constructs an Outcome with the current timestamp, appends it, and
// updates the counters. INFO outcomes are recorded but only counted toward
// the total.
func (c *Collector) Record(category Category, name string, status Status, message, details string) {
	o := Outcome{
		Category:  category.Title(),
		Name:      name,
		Status:    status,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
	c.outcomes = append(c.outcomes, o)

	c.stats.Total++
	switch status {
	case StatusPass:
		c.stats.Passed++
	case StatusFail:
		c.stats.Failed++
	case StatusWarn:
		c.stats.Warned++
	}

	if c.emit != nil {
		c.emit(o)
	}
}

// Snapshot returns a copy of the ordered outcomes and the current counts.
// The returned slice is independent of the collector's internal state.
func (c *Collector) Snapshot() ([]Outcome, Stats) {
	out := make([]Outcome, len(c.outcomes))
	copy(out, c.outcomes)
	return out, c.stats
}
