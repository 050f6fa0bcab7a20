package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/calendly-kommo/internal/entity"
	"github.com/xavierca1/calendly-kommo/internal/infra/integration/kommo"
)

type SyncAppointmentInput struct {
	DeliveryID string
	Event      string
	Payload    *entity.WebhookPayload
}

type SyncAppointmentUseCase struct {
	CRM            CRMClient
	Finder         LeadFinder
	Pipelines      entity.Pipelines
	TimezoneOffset int
	Recorder       DeliveryRecorder
	Publisher      OutcomePublisher
}

func NewSyncAppointmentUseCase(
	crm CRMClient,
	finder LeadFinder,
	pipelines entity.Pipelines,
	timezoneOffset int,
	recorder DeliveryRecorder,
	publisher OutcomePublisher,
) *SyncAppointmentUseCase {
	return &SyncAppointmentUseCase{
		CRM:            crm,
		Finder:         finder,
		Pipelines:      pipelines,
		TimezoneOffset: timezoneOffset,
		Recorder:       recorder,
		Publisher:      publisher,
	}
}

// Execute sincroniza uma entrega do webhook com o Kommo. O resultado sempre
// volta preenchido, mesmo com erro, e é repassado ao log de entregas e à fila.
func (uc *SyncAppointmentUseCase) Execute(ctx context.Context, input SyncAppointmentInput) (*entity.SyncOutcome, error) {
	outcome := &entity.SyncOutcome{
		DeliveryID: input.DeliveryID,
		Event:      input.Event,
	}

	err := uc.sync(ctx, input.Payload, outcome)
	if err != nil {
		outcome.Action = entity.ActionFailed
		outcome.Error = err.Error()
	}
	outcome.ProcessedAt = time.Now().UTC()

	uc.report(ctx, *outcome)
	return outcome, err
}

func (uc *SyncAppointmentUseCase) sync(ctx context.Context, payload *entity.WebhookPayload, outcome *entity.SyncOutcome) error {
	if payload == nil {
		return ErrMissingPayload
	}

	eventName := payload.ScheduledEvent.Name
	outcome.EventName = eventName

	log.Printf("📅 [SYNC] Processando evento: %s", eventName)
	log.Printf("👤 [SYNC] Cliente: %s | %s", payload.Name, payload.Email)

	branch, ok := ClassifyEvent(eventName)
	if !ok {
		log.Printf("ℹ️ [SYNC] Evento não mapeado, ignorando: %q", eventName)
		outcome.Action = entity.ActionIgnored
		return nil
	}
	outcome.Branch = branch

	appt, pipelineID := uc.BuildAppointment(branch, payload)
	outcome.Phone = appt.Phone

	log.Printf("📊 [SYNC] Dados extraídos (%s): telefone=%q tema=%q link=%q data=%q asegurado=%q/%q",
		branch, appt.Phone, appt.Topic, appt.MeetingLink, appt.LocalDateTime, appt.InsuredName, appt.InsuredPhone)
	log.Printf("🔍 [SYNC] Buscando lead por telefone: %s | Funil: %d", appt.Phone, pipelineID)

	leadID, err := uc.Finder.FindLeadID(ctx, appt.Phone, pipelineID)
	switch {
	case err == nil:
		log.Printf("✅ [SYNC] Lead encontrado com ID: %d", leadID)
		if err := uc.CRM.PatchLead(ctx, leadID, appt); err != nil {
			return fmt.Errorf("erro ao atualizar lead %d: %w", leadID, err)
		}
		outcome.LeadID = leadID
		outcome.Action = entity.ActionUpdated
		return nil

	case errors.Is(err, ErrLeadNotFound):
		log.Println("⚠️ [SYNC] Não foi encontrado lead, criando um novo...")

	default:
		// A busca falhou: segue como se não houvesse lead.
		log.Printf("⚠️ [SYNC] Falha na busca de lead, criando um novo: %v", err)
	}

	contactID, err := uc.ensureContact(ctx, appt)
	if err != nil {
		return err
	}
	outcome.ContactID = contactID

	leadID, err = uc.CRM.CreateLead(ctx, appt, contactID)
	if err != nil {
		return fmt.Errorf("erro ao criar lead: %w", err)
	}
	outcome.LeadID = leadID
	outcome.Action = entity.ActionCreated
	return nil
}

// BuildAppointment extrai os campos do payload conforme o ramo do evento e
// devolve o funil onde o lead deve ser procurado.
func (uc *SyncAppointmentUseCase) BuildAppointment(branch entity.Branch, payload *entity.WebhookPayload) (entity.Appointment, int) {
	appt := entity.Appointment{
		Name:          payload.Name,
		Email:         payload.Email,
		LocalDateTime: uc.localDateTime(payload.ScheduledEvent.StartTime),
	}

	switch branch {
	case entity.BranchPension:
		// Ligação outbound: o telefone vem no location do evento.
		appt.Phone = payload.ScheduledEvent.CallLocation()
		appt.InsuredName = payload.Answer(QuestionInsuredName)
		appt.InsuredPhone = payload.Answer(QuestionInsuredPhone)
		appt.StageID = uc.Pipelines.InvestigationRejectedStageID
		return appt, uc.Pipelines.PensionPipelineID

	default:
		appt.Phone = payload.Answer(QuestionPhone)
		appt.Topic = payload.Answer(QuestionTopic)
		appt.MeetingLink = payload.ScheduledEvent.JoinURL()
		appt.StageID = uc.Pipelines.SalesAppointmentStageID
		return appt, uc.Pipelines.SalesPipelineID
	}
}

func (uc *SyncAppointmentUseCase) localDateTime(startTime string) string {
	if startTime == "" {
		return ""
	}
	stamp, err := entity.FormatLocalStamp(startTime, uc.TimezoneOffset)
	if err != nil {
		log.Printf("⚠️ [SYNC] Data do evento ignorada: %v", err)
		return ""
	}
	return stamp
}

func (uc *SyncAppointmentUseCase) ensureContact(ctx context.Context, appt entity.Appointment) (int, error) {
	log.Printf("🔍 [SYNC] Buscando contato existente com telefone: %s", appt.Phone)

	contact, err := uc.CRM.FindContactByPhone(ctx, appt.Phone)
	if err == nil {
		log.Printf("📱 [SYNC] Contato existente encontrado: %d", contact.ID)
		return contact.ID, nil
	}
	if !errors.Is(err, kommo.ErrContactNotFound) {
		log.Printf("⚠️ [SYNC] Falha na busca de contato, tentando criar: %v", err)
	}

	log.Printf("📝 [SYNC] Criando novo contato: %s", appt.ContactName())
	contactID, err := uc.CRM.CreateContact(ctx, appt.Name, appt.Phone, appt.Email)
	if err != nil {
		log.Printf("❌ [SYNC] Não foi possível criar nem encontrar o contato: %v", err)
		return 0, fmt.Errorf("%w: %w", ErrContactUnavailable, err)
	}
	return contactID, nil
}

func (uc *SyncAppointmentUseCase) report(ctx context.Context, outcome entity.SyncOutcome) {
	if uc.Recorder != nil {
		if err := uc.Recorder.Record(ctx, outcome); err != nil {
			log.Printf("⚠️ [SYNC] Falha ao gravar entrega %s: %v", outcome.DeliveryID, err)
		}
	}
	if uc.Publisher != nil {
		if err := uc.Publisher.PublishSyncOutcome(ctx, outcome); err != nil {
			log.Printf("⚠️ [SYNC] Falha ao publicar resultado %s: %v", outcome.DeliveryID, err)
		}
	}
}
