package events

import "time"

const EmployeeLifecycleTopic = "workforce.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	RoleID     string    `json:"role_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
