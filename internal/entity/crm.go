package entity

// Pipelines guarda os funis e etapas do Kommo usados pelo sync.
type Pipelines struct {
	SalesPipelineID              int
	PensionPipelineID            int
	SalesAppointmentStageID      int
	InvestigationRejectedStageID int
	AnalysisStageID              int
}

type ContactFieldIDs struct {
	Phone int
	Email int
}

type LeadFieldIDs struct {
	AppointmentDate int
	MeetingLink     int
	Topic           int
	Phone           int
	Email           int
	Name            int
	InsuredName     int
	InsuredPhone    int
}

// CustomFieldIDs são os IDs numéricos dos campos personalizados da conta.
type CustomFieldIDs struct {
	Contact ContactFieldIDs
	Lead    LeadFieldIDs
}
