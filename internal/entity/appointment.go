package entity

// Appointment é montado uma vez por webhook e descartado depois do sync.
type Appointment struct {
	Name          string
	Email         string
	Phone         string
	Topic         string
	MeetingLink   string
	LocalDateTime string
	StageID       int
	InsuredName   string
	InsuredPhone  string
}

const UnnamedContact = "Sin nombre"

// DisplayName é o nome que o lead recebe no Kommo.
func (a Appointment) DisplayName() string {
	return "Asesoría - " + a.ContactName()
}

func (a Appointment) ContactName() string {
	if a.Name == "" {
		return UnnamedContact
	}
	return a.Name
}
