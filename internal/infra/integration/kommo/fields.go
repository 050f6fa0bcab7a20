package kommo

import "github.com/xavierca1/calendly-kommo/internal/entity"

func textField(fieldID int, value string) CustomFieldValue {
	return CustomFieldValue{
		FieldID: fieldID,
		Values:  []FieldValue{{Value: value}},
	}
}

// BuildLeadFields só inclui campos com valor; vazio nunca vai como branco.
func BuildLeadFields(appt entity.Appointment, ids entity.LeadFieldIDs) []CustomFieldValue {
	candidates := []struct {
		id    int
		value string
	}{
		{ids.AppointmentDate, appt.LocalDateTime},
		{ids.MeetingLink, appt.MeetingLink},
		{ids.Topic, appt.Topic},
		{ids.Phone, appt.Phone},
		{ids.Email, appt.Email},
		{ids.Name, appt.Name},
		{ids.InsuredName, appt.InsuredName},
		{ids.InsuredPhone, appt.InsuredPhone},
	}

	var fields []CustomFieldValue
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		fields = append(fields, textField(c.id, c.value))
	}
	return fields
}

func BuildContactFields(phone, email string, ids entity.ContactFieldIDs) []CustomFieldValue {
	fields := []CustomFieldValue{}
	if phone != "" {
		fields = append(fields, textField(ids.Phone, phone))
	}
	if email != "" {
		fields = append(fields, textField(ids.Email, email))
	}
	return fields
}
