package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/calendly-kommo/internal/entity"
)

type LeadResolver struct {
	CRM LeadSource
}

func NewLeadResolver(crm LeadSource) *LeadResolver {
	return &LeadResolver{CRM: crm}
}

// FindLeadID devolve o primeiro lead do funil cujo contato principal tem o
// mesmo telefone normalizado. A ordem é a que o Kommo devolve.
func (r *LeadResolver) FindLeadID(ctx context.Context, phone string, pipelineID int) (int, error) {
	if entity.NormalizePhone(phone) == "" {
		return 0, ErrLeadNotFound
	}

	leads, err := r.CRM.ListLeadsByQueryAndPipeline(ctx, phone, pipelineID)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar leads no funil %d: %w", pipelineID, err)
	}
	if len(leads) == 0 {
		log.Printf("⚠️ [SYNC] Nenhum lead no funil %d para %s", pipelineID, phone)
		return 0, ErrLeadNotFound
	}

	for _, lead := range leads {
		contactID, ok := lead.PrimaryContactID()
		if !ok {
			continue
		}

		contact, err := r.CRM.GetContact(ctx, contactID)
		if err != nil {
			log.Printf("⚠️ [SYNC] Contato %d do lead %d ignorado: %v", contactID, lead.ID, err)
			continue
		}

		candidate := contact.PrimaryPhone()
		if candidate == "" {
			continue
		}
		if entity.SamePhone(candidate, phone) {
			return lead.ID, nil
		}
	}

	return 0, ErrLeadNotFound
}
