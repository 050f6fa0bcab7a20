package entity

// WebhookEnvelope é o corpo que o Calendly envia para /webhook/calendly.
type WebhookEnvelope struct {
	Event     string          `json:"event"`
	CreatedAt string          `json:"created_at"`
	CreatedBy string          `json:"created_by"`
	Payload   *WebhookPayload `json:"payload"`
}

type WebhookPayload struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	FirstName          string           `json:"first_name,omitempty"`
	LastName           string           `json:"last_name,omitempty"`
	Timezone           string           `json:"timezone,omitempty"`
	TextReminderNumber string           `json:"text_reminder_number,omitempty"`
	QuestionsAndAnswer []QuestionAnswer `json:"questions_and_answers"`
	ScheduledEvent     ScheduledEvent   `json:"scheduled_event"`
}

type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ScheduledEvent struct {
	Name      string         `json:"name"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time,omitempty"`
	Location  *EventLocation `json:"location,omitempty"`
}

// EventLocation cobre tanto conferência (join_url) quanto ligação (location).
type EventLocation struct {
	Type     string `json:"type"`
	JoinURL  string `json:"join_url,omitempty"`
	Location string `json:"location,omitempty"`
}

// Answer devolve a resposta da primeira pergunta com o rótulo exato, ou "".
func (p *WebhookPayload) Answer(question string) string {
	for _, qa := range p.QuestionsAndAnswer {
		if qa.Question == question {
			return qa.Answer
		}
	}
	return ""
}

func (e ScheduledEvent) JoinURL() string {
	if e.Location == nil {
		return ""
	}
	return e.Location.JoinURL
}

// CallLocation é o telefone de uma ligação outbound; cai para join_url quando vazio.
func (e ScheduledEvent) CallLocation() string {
	if e.Location == nil {
		return ""
	}
	if e.Location.Location != "" {
		return e.Location.Location
	}
	return e.Location.JoinURL
}
