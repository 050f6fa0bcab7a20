package kommo

import (
	"fmt"
	"strconv"
)

const phoneFieldCode = "PHONE"

type FieldValue struct {
	Value    any    `json:"value"`
	EnumCode string `json:"enum_code,omitempty"`
}

// String devolve o valor como texto; o Kommo às vezes manda número.
func (v FieldValue) String() string {
	switch val := v.Value.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

type CustomFieldValue struct {
	FieldID   int          `json:"field_id,omitempty"`
	FieldCode string       `json:"field_code,omitempty"`
	Values    []FieldValue `json:"values"`
}

type ContactRef struct {
	ID int `json:"id"`
}

type Lead struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	StatusID   int    `json:"status_id"`
	PipelineID int    `json:"pipeline_id"`
	Embedded   struct {
		Contacts []ContactRef `json:"contacts"`
	} `json:"_embedded"`
}

// PrimaryContactID é o primeiro contato vinculado ao lead.
func (l Lead) PrimaryContactID() (int, bool) {
	if len(l.Embedded.Contacts) == 0 || l.Embedded.Contacts[0].ID == 0 {
		return 0, false
	}
	return l.Embedded.Contacts[0].ID, true
}

type Contact struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	CustomFieldsValues []CustomFieldValue `json:"custom_fields_values"`
}

// Phones devolve todos os valores do campo de código PHONE.
func (c Contact) Phones() []string {
	var phones []string
	for _, field := range c.CustomFieldsValues {
		if field.FieldCode != phoneFieldCode {
			continue
		}
		for _, v := range field.Values {
			if s := v.String(); s != "" {
				phones = append(phones, s)
			}
		}
	}
	return phones
}

// PrimaryPhone é o primeiro valor do primeiro campo PHONE.
func (c Contact) PrimaryPhone() string {
	for _, field := range c.CustomFieldsValues {
		if field.FieldCode == phoneFieldCode && len(field.Values) > 0 {
			return field.Values[0].String()
		}
	}
	return ""
}

type leadsResponse struct {
	Embedded struct {
		Leads []Lead `json:"leads"`
	} `json:"_embedded"`
}

type contactsResponse struct {
	Embedded struct {
		Contacts []Contact `json:"contacts"`
	} `json:"_embedded"`
}

type createContactRequest struct {
	Name               string             `json:"name"`
	CustomFieldsValues []CustomFieldValue `json:"custom_fields_values"`
}

type embeddedContacts struct {
	Contacts []ContactRef `json:"contacts"`
}

type createLeadRequest struct {
	Name               string             `json:"name"`
	StatusID           int                `json:"status_id"`
	Embedded           embeddedContacts   `json:"_embedded"`
	CustomFieldsValues []CustomFieldValue `json:"custom_fields_values,omitempty"`
}

type patchLeadRequest struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	StatusID           int                `json:"status_id"`
	CustomFieldsValues []CustomFieldValue `json:"custom_fields_values,omitempty"`
}
