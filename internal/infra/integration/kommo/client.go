package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/xavierca1/calendly-kommo/internal/entity"
)

type Config struct {
	BaseURL     string
	AccessToken string
	Fields      entity.CustomFieldIDs
	HTTPClient  *http.Client
}

type Client struct {
	apiToken   string
	baseURL    string
	fields     entity.CustomFieldIDs
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		apiToken:   cfg.AccessToken,
		baseURL:    cfg.BaseURL,
		fields:     cfg.Fields,
		httpClient: httpClient,
	}
}

func (c *Client) Configured() bool {
	return c.apiToken != ""
}

// ListLeadsByQueryAndPipeline busca leads (com contatos embutidos) de um único funil.
func (c *Client) ListLeadsByQueryAndPipeline(ctx context.Context, query string, pipelineID int) ([]Lead, error) {
	params := url.Values{}
	params.Set("with", "contacts")
	params.Set("query", query)
	params.Add("filter[pipeline_id][]", strconv.Itoa(pipelineID))

	var result leadsResponse
	found, err := c.do(ctx, "list_leads", http.MethodGet, "/leads?"+params.Encode(), nil, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return result.Embedded.Leads, nil
}

func (c *Client) GetContact(ctx context.Context, contactID int) (*Contact, error) {
	var contact Contact
	found, err := c.do(ctx, "get_contact", http.MethodGet, fmt.Sprintf("/contacts/%d", contactID), nil, &contact)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrContactNotFound
	}
	return &contact, nil
}

// FindContactByPhone pesquisa pelos dígitos e confirma comparando todos os telefones do contato.
func (c *Client) FindContactByPhone(ctx context.Context, phone string) (*Contact, error) {
	digits := entity.NormalizePhone(phone)
	if digits == "" {
		return nil, ErrContactNotFound
	}

	params := url.Values{}
	params.Set("query", digits)

	var result contactsResponse
	found, err := c.do(ctx, "find_contact", http.MethodGet, "/contacts?"+params.Encode(), nil, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrContactNotFound
	}

	for i := range result.Embedded.Contacts {
		contact := result.Embedded.Contacts[i]
		for _, p := range contact.Phones() {
			if entity.NormalizePhone(p) == digits {
				return &contact, nil
			}
		}
	}
	return nil, ErrContactNotFound
}

func (c *Client) CreateContact(ctx context.Context, name, phone, email string) (int, error) {
	if name == "" {
		name = entity.UnnamedContact
	}
	body := []createContactRequest{{
		Name:               name,
		CustomFieldsValues: BuildContactFields(phone, email, c.fields.Contact),
	}}

	var result contactsResponse
	if _, err := c.do(ctx, "create_contact", http.MethodPost, "/contacts", body, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) == 0 || result.Embedded.Contacts[0].ID == 0 {
		return 0, fmt.Errorf("create_contact: %w", ErrEmptyResponse)
	}

	contactID := result.Embedded.Contacts[0].ID
	log.Printf("✅ [KOMMO] Novo contato criado: %d (%s)", contactID, name)
	return contactID, nil
}

// CreateLead cria o lead já vinculado ao contato via /leads/complex.
func (c *Client) CreateLead(ctx context.Context, appt entity.Appointment, contactID int) (int, error) {
	body := []createLeadRequest{{
		Name:               appt.DisplayName(),
		StatusID:           appt.StageID,
		Embedded:           embeddedContacts{Contacts: []ContactRef{{ID: contactID}}},
		CustomFieldsValues: BuildLeadFields(appt, c.fields.Lead),
	}}

	var raw json.RawMessage
	if _, err := c.do(ctx, "create_lead", http.MethodPost, "/leads/complex", body, &raw); err != nil {
		return 0, err
	}

	leadID, err := decodeCreatedLeadID(raw)
	if err != nil {
		return 0, fmt.Errorf("create_lead: %w", err)
	}

	log.Printf("🆕 [KOMMO] Lead criado #%d para %s (etapa %d)", leadID, appt.ContactName(), appt.StageID)
	return leadID, nil
}

func (c *Client) PatchLead(ctx context.Context, leadID int, appt entity.Appointment) error {
	body := []patchLeadRequest{{
		ID:                 leadID,
		Name:               appt.DisplayName(),
		StatusID:           appt.StageID,
		CustomFieldsValues: BuildLeadFields(appt, c.fields.Lead),
	}}

	if _, err := c.do(ctx, "patch_lead", http.MethodPatch, "/leads", body, nil); err != nil {
		return err
	}

	log.Printf("✅ [KOMMO] Lead #%d atualizado (etapa %d)", leadID, appt.StageID)
	return nil
}

// decodeCreatedLeadID aceita o array de /leads/complex ou o envelope _embedded de /leads.
func decodeCreatedLeadID(raw json.RawMessage) (int, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, ErrEmptyResponse
	}

	if trimmed[0] == '[' {
		var complexResult []struct {
			ID int `json:"id"`
		}
		if err := json.Unmarshal(trimmed, &complexResult); err != nil {
			return 0, err
		}
		if len(complexResult) == 0 || complexResult[0].ID == 0 {
			return 0, ErrEmptyResponse
		}
		return complexResult[0].ID, nil
	}

	var result leadsResponse
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Leads) == 0 || result.Embedded.Leads[0].ID == 0 {
		return 0, ErrEmptyResponse
	}
	return result.Embedded.Leads[0].ID, nil
}

// do executa a chamada e decodifica o corpo em out. Retorna found=false
// quando o Kommo responde 204 (busca sem resultado).
func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) (bool, error) {
	if c.apiToken == "" {
		return false, fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("%s: erro ao serializar payload: %w", op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return false, fmt.Errorf("%s: erro ao montar requisição: %w", op, err)
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return false, nil
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return false, fmt.Errorf("%s: resposta inválida: %w", op, err)
		}
	}
	return true, nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
