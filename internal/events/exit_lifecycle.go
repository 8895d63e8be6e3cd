package events

import "time"

const ExitLifecycleTopic = "hr.exit.lifecycle.v1"

const (
	EventExitInitiated        = "exit_initiated"
	EventExitStatusChanged    = "exit_status_changed"
	EventSettlementCalculated = "exit_settlement_calculated"
)

// ExitStatusChangedEvent is published for initiation and for every accepted
// transition. FromStatus is empty on initiation.
type ExitStatusChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ExitRequestID string    `json:"exit_request_id"`
	CompanyID     string    `json:"company_id"`
	EmployeeID    string    `json:"employee_id"`
	FromStatus    string    `json:"from_status,omitempty"`
	ToStatus      string    `json:"to_status"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type SettlementCalculatedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	ExitRequestID    string    `json:"exit_request_id"`
	CompanyID        string    `json:"company_id"`
	CalculationID    string    `json:"calculation_id"`
	NetSettlement    string    `json:"net_settlement"`
	SettlementStatus string    `json:"settlement_status"`
	OccurredAt       time.Time `json:"occurred_at"`
}
