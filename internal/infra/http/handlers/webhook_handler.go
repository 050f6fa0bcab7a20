package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/xavierca1/calendly-kommo/internal/entity"
	"github.com/xavierca1/calendly-kommo/internal/infra/http/middleware"
	"github.com/xavierca1/calendly-kommo/internal/infra/worker"
	"github.com/xavierca1/calendly-kommo/internal/usecase"
)

const maxWebhookBody = 1 << 20

type AppointmentSyncer interface {
	Execute(ctx context.Context, input usecase.SyncAppointmentInput) (*entity.SyncOutcome, error)
}

type TaskRunner interface {
	Go(name string, task worker.Task)
}

type WebhookResponse struct {
	Success bool `json:"success"`
}

type CalendlyWebhookHandler struct {
	SyncUC AppointmentSyncer
	Runner TaskRunner
}

func NewCalendlyWebhookHandler(syncUC AppointmentSyncer, runner TaskRunner) *CalendlyWebhookHandler {
	return &CalendlyWebhookHandler{
		SyncUC: syncUC,
		Runner: runner,
	}
}

// Handle responde 200 {"success": true} sempre, inclusive com payload
// inválido, para o Calendly não desativar a assinatura do webhook. O sync
// só é agendado depois que a resposta foi escrita e enviada.
func (h *CalendlyWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deliveryID := uuid.NewString()

	var envelope entity.WebhookEnvelope
	err := json.NewDecoder(io.LimitReader(r.Body, maxWebhookBody)).Decode(&envelope)

	switch {
	case err != nil:
		log.Printf("❌ [CALENDLY] Payload inválido (entrega %s): %v", deliveryID, err)
		middleware.RecordWebhookReceived("invalid")
		writeSuccess(w)
		return
	case envelope.Payload == nil:
		log.Printf("❌ [CALENDLY] Webhook sem payload (entrega %s, evento %q)", deliveryID, envelope.Event)
		middleware.RecordWebhookReceived("invalid")
		writeSuccess(w)
		return
	}

	log.Printf("📩 [CALENDLY] Webhook recebido: %s (entrega %s)", envelope.Event, deliveryID)
	middleware.RecordWebhookReceived(envelope.Event)

	writeSuccess(w)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	input := usecase.SyncAppointmentInput{
		DeliveryID: deliveryID,
		Event:      envelope.Event,
		Payload:    envelope.Payload,
	}
	h.Runner.Go("sync "+deliveryID, func(ctx context.Context) error {
		outcome, err := h.SyncUC.Execute(ctx, input)
		if outcome != nil {
			middleware.RecordLeadSync(string(outcome.Branch), string(outcome.Action))
		}
		if err != nil {
			middleware.RecordIntegrationError("kommo")
			return fmt.Errorf("erro no processamento (não afeta a resposta ao Calendly): %w", err)
		}
		return nil
	})
}

func writeSuccess(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(WebhookResponse{Success: true})
}
