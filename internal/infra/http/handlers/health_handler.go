package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type HealthHandler struct {
	DB              *sql.DB
	RabbitMQ        *amqp091.Connection
	KommoConfigured bool
	StartTime       time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	Timestamp    string            `json:"timestamp"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, rabbitMQ *amqp091.Connection, kommoConfigured bool) *HealthHandler {
	return &HealthHandler{
		DB:              db,
		RabbitMQ:        rabbitMQ,
		KommoConfigured: kommoConfigured,
		StartTime:       time.Now(),
	}
}

// Handle responde /health: 503 quando uma dependência configurada está fora.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	response := h.check(r)

	status := http.StatusOK
	if response.Status == "degraded" {
		status = http.StatusServiceUnavailable
	}
	writeHealth(w, status, response)
}

// HandleRoot responde GET / sempre com 200 e status "ok"; o detalhe das
// dependências vai junto, mas não derruba checagens de uptime.
func (h *HealthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	response := h.check(r)
	response.Status = "ok"
	writeHealth(w, http.StatusOK, response)
}

func (h *HealthHandler) check(r *http.Request) HealthResponse {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.PingContext(r.Context()); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.KommoConfigured {
		deps["kommo"] = "configured"
	} else {
		deps["kommo"] = "not configured"
	}

	status := "ok"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	return HealthResponse{
		Status:       status,
		Message:      "Servidor de webhooks Calendly -> Kommo funcionando",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}
}

func writeHealth(w http.ResponseWriter, status int, response HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
