package usecase

import "github.com/xavierca1/calendly-kommo/internal/entity"

// Rótulos das perguntas configuradas nos eventos do Calendly.
const (
	QuestionPhone        = "Numero Telefonico"
	QuestionTopic        = "Tema principal de la asesoría"
	QuestionInsuredName  = "Nombre del asegurado"
	QuestionInsuredPhone = "Telefono del asegurado"
)

const (
	EventSalesDemo    = "Orientación con el Lic. Enrique Hernández 30min. DEMO"
	EventSalesPaid    = "Orientación con el Lic. Enrique Hernández 30min. $55.00"
	EventSalesSpecial = "Horario Especial. con el Lic. Enrique Hernández. $85.00"
	EventPension      = "PROBLEMAS CON EL SEGURO SOCIAL"
)

var eventBranches = map[string]entity.Branch{
	EventSalesDemo:    entity.BranchSales,
	EventSalesPaid:    entity.BranchSales,
	EventSalesSpecial: entity.BranchSales,
	EventPension:      entity.BranchPension,
}

// ClassifyEvent compara o nome do evento agendado por igualdade exata.
func ClassifyEvent(eventName string) (entity.Branch, bool) {
	branch, ok := eventBranches[eventName]
	return branch, ok
}
