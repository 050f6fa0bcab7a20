package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/calendly-kommo/internal/entity"
	"github.com/xavierca1/calendly-kommo/internal/infra/integration/kommo"
)

// MockCRMClient - Mock do cliente Kommo
type MockCRMClient struct {
	mock.Mock
}

func (m *MockCRMClient) ListLeadsByQueryAndPipeline(ctx context.Context, query string, pipelineID int) ([]kommo.Lead, error) {
	args := m.Called(ctx, query, pipelineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kommo.Lead), args.Error(1)
}

func (m *MockCRMClient) GetContact(ctx context.Context, contactID int) (*kommo.Contact, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kommo.Contact), args.Error(1)
}

func (m *MockCRMClient) FindContactByPhone(ctx context.Context, phone string) (*kommo.Contact, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kommo.Contact), args.Error(1)
}

func (m *MockCRMClient) CreateContact(ctx context.Context, name, phone, email string) (int, error) {
	args := m.Called(ctx, name, phone, email)
	return args.Int(0), args.Error(1)
}

func (m *MockCRMClient) CreateLead(ctx context.Context, appt entity.Appointment, contactID int) (int, error) {
	args := m.Called(ctx, appt, contactID)
	return args.Int(0), args.Error(1)
}

func (m *MockCRMClient) PatchLead(ctx context.Context, leadID int, appt entity.Appointment) error {
	args := m.Called(ctx, leadID, appt)
	return args.Error(0)
}

// MockLeadFinder
type MockLeadFinder struct {
	mock.Mock
}

func (m *MockLeadFinder) FindLeadID(ctx context.Context, phone string, pipelineID int) (int, error) {
	args := m.Called(ctx, phone, pipelineID)
	return args.Int(0), args.Error(1)
}

// MockDeliveryRecorder
type MockDeliveryRecorder struct {
	mock.Mock
}

func (m *MockDeliveryRecorder) Record(ctx context.Context, outcome entity.SyncOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

// MockOutcomePublisher
type MockOutcomePublisher struct {
	mock.Mock
}

func (m *MockOutcomePublisher) PublishSyncOutcome(ctx context.Context, outcome entity.SyncOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func leadWithContact(leadID, contactID int) kommo.Lead {
	lead := kommo.Lead{ID: leadID}
	if contactID != 0 {
		lead.Embedded.Contacts = []kommo.ContactRef{{ID: contactID}}
	}
	return lead
}

func contactWithPhone(id int, phone string) *kommo.Contact {
	contact := &kommo.Contact{ID: id}
	if phone != "" {
		contact.CustomFieldsValues = []kommo.CustomFieldValue{
			{FieldCode: "PHONE", Values: []kommo.FieldValue{{Value: phone}}},
		}
	}
	return contact
}
