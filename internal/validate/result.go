// Package validate implements the validation engine: the check outcome
// model, the result collector, the status classifier, the report generator,
// and the orchestrator that drives category runners.
package validate

import "time"

// Status is the outcome classification of a single check.
type Status string

const (
	// StatusPass indicates the check succeeded.
	StatusPass Status = "PASS"

	// StatusFail indicates the check found a blocking problem.
	StatusFail Status = "FAIL"

	// StatusWarn indicates a non-blocking problem or a degraded fallback.
	StatusWarn Status = "WARN"

	// StatusInfo indicates informational output, not counted toward the
	// pass/warn/fail tallies.
	StatusInfo Status = "INFO"
)

// Outcome is the immutable record produced by one diagnostic probe.
// Once recorded it is never mutated or removed.
type Outcome struct {
	// Category is the display name of the group this check belongs to.
	Category string `json:"category"`

	// Name identifies the specific probe.
	Name string `json:"name"`

	// Status classifies the outcome.
	Status Status `json:"status"`

	// Message is a short human-readable summary, always present.
	Message string `json:"message"`

	// Details is an optional extended explanation, shown in verbose mode.
	Details string `json:"details"`

	// Timestamp is the capture time.
	Timestamp time.Time `json:"timestamp"`
}

// Stats holds the running counts derived from recorded outcomes.
// INFO outcomes count toward Total only.
type Stats struct {
	Total  int
	Passed int
	Warned int
	Failed int
}

// SuccessRate returns passed/total as a percentage.
// It is defined as 0 when no checks have run.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}
