package events

import "time"

const AbsenceLifecycleTopic = "hr.absence.lifecycle.v1"

const (
	AbsenceApprovedEventType = "absence_approved"
	AbsenceRejectedEventType = "absence_rejected"
)

// AbsenceResolvedEvent is emitted when a pending request leaves the pending
// state through the approval workflow.
type AbsenceResolvedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	AbsenceID  string    `json:"absence_id"`
	EmployeeID string    `json:"employee_id"`
	ResolvedBy string    `json:"resolved_by"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
