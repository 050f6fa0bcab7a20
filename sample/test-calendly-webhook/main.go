package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/xavierca1/calendly-kommo/internal/entity"
)

// Envia um webhook de teste igual ao que o Calendly manda em invitee.created.
// EVENT_NAME troca o tipo de evento (ex: "PROBLEMAS CON EL SEGURO SOCIAL").
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	serverURL := os.Getenv("WEBHOOK_URL")
	if serverURL == "" {
		serverURL = fmt.Sprintf("http://localhost:%s/webhook/calendly", port)
	}

	envelope := mockEnvelope()
	if name := os.Getenv("EVENT_NAME"); name != "" {
		envelope.Payload.ScheduledEvent.Name = name
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		log.Fatalf("Erro ao montar payload: %v", err)
	}

	fmt.Println("🧪 Iniciando teste do webhook...")
	fmt.Printf("📡 Enviando para: %s\n", serverURL)
	fmt.Printf("   Evento: %s\n", envelope.Payload.ScheduledEvent.Name)
	fmt.Printf("   Telefone: %s\n\n", envelope.Payload.Answer("Numero Telefonico"))

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(serverURL, "application/json", bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			log.Fatalf("❌ Não foi possível conectar ao servidor. Ele está rodando na porta %s? (go run ./cmd/api)", port)
		}
		log.Fatalf("❌ Erro ao enviar webhook: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("✅ Resposta do servidor: %d\n", resp.StatusCode)
	fmt.Printf("📦 Dados: %s\n", bytes.TrimSpace(respBody))
}

func mockEnvelope() entity.WebhookEnvelope {
	return entity.WebhookEnvelope{
		Event:     "invitee.created",
		CreatedAt: "2025-11-10T01:01:41.000000Z",
		CreatedBy: "https://api.calendly.com/users/e0e46e9d-08eb-40d7-98a9-442823b730bc",
		Payload: &entity.WebhookPayload{
			Name:               "Alex Demo",
			Email:              "anoel@holos.ec",
			FirstName:          "Alex",
			LastName:           "Demo",
			Timezone:           "America/Lima",
			TextReminderNumber: "+51 923 676 740",
			QuestionsAndAnswer: []entity.QuestionAnswer{
				{Question: "Numero Telefonico", Answer: "+51 923 676 740"},
				{Question: "Aviso de SMS de TTEM", Answer: "Acepto recibir SMS de TTEM"},
				{Question: "Tema principal de la asesoría", Answer: "Poder Notarial"},
			},
			ScheduledEvent: entity.ScheduledEvent{
				Name:      "Orientación con el Lic. Enrique Hernández 30min. DEMO",
				StartTime: "2025-11-13T17:20:00.000000Z",
				EndTime:   "2025-11-13T17:50:00.000000Z",
				Location: &entity.EventLocation{
					Type:    "google_conference",
					JoinURL: "https://calendly.com/events/7bc71744-c210-40bc-bb93-b39718de5bbb/google_meet",
				},
			},
		},
	}
}
