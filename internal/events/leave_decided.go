package events

import "time"

const LeaveDecidedTopic = "leave.request.decision.v1"

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	ApproverID string    `json:"approver_id"`
	LeaveType  string    `json:"leave_type"`
	TotalDays  int       `json:"total_days"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
