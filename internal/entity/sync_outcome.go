package entity

import "time"

type Branch string

const (
	BranchSales   Branch = "sales"
	BranchPension Branch = "pension"
)

type SyncAction string

const (
	ActionUpdated SyncAction = "updated"
	ActionCreated SyncAction = "created"
	ActionIgnored SyncAction = "ignored"
	ActionFailed  SyncAction = "failed"
)

// SyncOutcome é o resultado de processar uma entrega do webhook.
type SyncOutcome struct {
	DeliveryID  string     `json:"delivery_id"`
	Event       string     `json:"event"`
	EventName   string     `json:"event_name"`
	Branch      Branch     `json:"branch,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	LeadID      int        `json:"lead_id,omitempty"`
	ContactID   int        `json:"contact_id,omitempty"`
	Action      SyncAction `json:"action"`
	Error       string     `json:"error,omitempty"`
	ProcessedAt time.Time  `json:"processed_at"`
}
