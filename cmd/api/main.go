package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/calendly-kommo/internal/config"
	"github.com/xavierca1/calendly-kommo/internal/infra/database"
	"github.com/xavierca1/calendly-kommo/internal/infra/http/handlers"
	"github.com/xavierca1/calendly-kommo/internal/infra/integration/kommo"
	"github.com/xavierca1/calendly-kommo/internal/infra/queue"
	"github.com/xavierca1/calendly-kommo/internal/infra/worker"
	"github.com/xavierca1/calendly-kommo/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  Arquivo .env não encontrado, usando variáveis do ambiente")
	}
	cfg := config.Load()

	if !cfg.HasKommoConfig() {
		log.Println("⚠️  KOMMO_ACCESS_TOKEN não configurado: os webhooks serão aceitos mas o sync vai falhar")
	}

	// 1. Kommo
	kommoClient := kommo.NewClient(kommo.Config{
		BaseURL:     cfg.KommoBaseURL,
		AccessToken: cfg.KommoAccessToken,
		Fields:      cfg.CustomFields,
		HTTPClient:  &http.Client{Timeout: cfg.KommoHTTPTimeout},
	})

	// 2. Histórico de entregas (opcional)
	var db *sql.DB
	var recorder usecase.DeliveryRecorder
	if cfg.HasDatabase() {
		conn, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️  Postgres indisponível, seguindo sem histórico: %v", err)
		} else {
			repo := database.NewDeliveryRepository(conn)
			if err := repo.EnsureSchema(context.Background()); err != nil {
				log.Printf("⚠️  %v", err)
			}
			db = conn
			recorder = repo
			defer db.Close()
			log.Println("🗄️  Histórico de entregas ativo no Postgres")
		}
	}

	// 3. Publicação dos resultados (opcional)
	var rmqConn *amqp.Connection
	var publisher usecase.OutcomePublisher
	if cfg.HasRabbitMQ() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("⚠️  RabbitMQ indisponível, seguindo sem publicar resultados: %v", err)
		} else {
			rmqConn = rabbitMQ.Conn
			publisher = queue.NewProducer(rabbitMQ.Ch)
			defer rabbitMQ.Close()
			log.Printf("🐇 Publicando resultados no exchange %s", queue.ExchangeName)
		}
	}

	// 4. UseCases
	resolver := usecase.NewLeadResolver(kommoClient)
	syncUC := usecase.NewSyncAppointmentUseCase(
		kommoClient,
		resolver,
		cfg.Pipelines,
		cfg.TimezoneOffset,
		recorder,
		publisher,
	)

	// 5. Handlers
	runner := worker.NewBackgroundRunner(context.Background())
	webhookHandler := handlers.NewCalendlyWebhookHandler(syncUC, runner)
	healthHandler := handlers.NewHealthHandler(db, rmqConn, kommoClient.Configured())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(webhookHandler, healthHandler),
	}

	go func() {
		log.Printf("🔥 Servidor de webhooks Calendly -> Kommo rodando na porta %s", cfg.Port)
		log.Printf("📍 Webhook: http://localhost:%s/webhook/calendly", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Falha ao subir o servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Desligando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Erro ao desligar o servidor HTTP: %v", err)
	}
	if err := runner.Wait(ctx); err != nil {
		log.Printf("⚠️  Syncs em andamento não terminaram a tempo: %v", err)
	}
	log.Println("👋 Servidor encerrado")
}
