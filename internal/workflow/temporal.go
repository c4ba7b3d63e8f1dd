package workflow

import "time"

// TemporalStatus is the urgency of a deadline relative to "now". It is
// always derived, never stored: the legacy system only ever computed it in
// view columns and this port keeps that modeling.
type TemporalStatus string

const (
	StatusCurrent TemporalStatus = "vigente"
	StatusDueSoon TemporalStatus = "por_vencer"
	StatusOverdue TemporalStatus = "vencido"
)

const dueSoonWindow = 24 * time.Hour

// Classify maps a deadline and the current time to a temporal status.
// Pure: same inputs, same answer, no side effects.
func Classify(deadline, now time.Time) TemporalStatus {
	if now.After(deadline) {
		return StatusOverdue
	}
	if deadline.Sub(now) <= dueSoonWindow {
		return StatusDueSoon
	}
	return StatusCurrent
}
