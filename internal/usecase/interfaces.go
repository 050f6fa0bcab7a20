package usecase

import (
	"context"

	"github.com/xavierca1/calendly-kommo/internal/entity"
	"github.com/xavierca1/calendly-kommo/internal/infra/integration/kommo"
)

// LeadSource são as duas leituras que o LeadResolver faz no CRM.
type LeadSource interface {
	ListLeadsByQueryAndPipeline(ctx context.Context, query string, pipelineID int) ([]kommo.Lead, error)
	GetContact(ctx context.Context, contactID int) (*kommo.Contact, error)
}

type CRMClient interface {
	LeadSource
	FindContactByPhone(ctx context.Context, phone string) (*kommo.Contact, error)
	CreateContact(ctx context.Context, name, phone, email string) (int, error)
	CreateLead(ctx context.Context, appt entity.Appointment, contactID int) (int, error)
	PatchLead(ctx context.Context, leadID int, appt entity.Appointment) error
}

type LeadFinder interface {
	FindLeadID(ctx context.Context, phone string, pipelineID int) (int, error)
}

type DeliveryRecorder interface {
	Record(ctx context.Context, outcome entity.SyncOutcome) error
}

type OutcomePublisher interface {
	PublishSyncOutcome(ctx context.Context, outcome entity.SyncOutcome) error
}
