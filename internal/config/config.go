package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xavierca1/calendly-kommo/internal/entity"
)

type Config struct {
	Port string

	KommoBaseURL     string
	KommoAccessToken string
	KommoHTTPTimeout time.Duration

	// Horas somadas ao UTC para gravar a data da cita (sem horário de verão).
	TimezoneOffset int

	DatabaseURL string
	RabbitMQURL string

	ShutdownTimeout time.Duration

	Pipelines    entity.Pipelines
	CustomFields entity.CustomFieldIDs
}

// Load lê o ambiente. Funis e campos são fixos da conta do Kommo.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "3000"),
		KommoBaseURL:     strings.TrimRight(getEnv("KOMMO_BASE_URL", "https://isabelchavez.kommo.com/api/v4"), "/"),
		KommoAccessToken: getEnv("KOMMO_ACCESS_TOKEN", ""),
		KommoHTTPTimeout: getEnvAsDuration("KOMMO_HTTP_TIMEOUT", 30*time.Second),
		TimezoneOffset:   getEnvAsInt("TIMEZONE_OFFSET", -6),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RabbitMQURL:      getEnv("RABBITMQ_URL", ""),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		Pipelines:        DefaultPipelines(),
		CustomFields:     DefaultCustomFields(),
	}
}

func DefaultPipelines() entity.Pipelines {
	return entity.Pipelines{
		SalesPipelineID:              12372452,
		PensionPipelineID:            12372372,
		SalesAppointmentStageID:      95603560,
		InvestigationRejectedStageID: 95602916,
		AnalysisStageID:              95602924,
	}
}

func DefaultCustomFields() entity.CustomFieldIDs {
	return entity.CustomFieldIDs{
		Contact: entity.ContactFieldIDs{
			Phone: 817778,
			Email: 817780,
		},
		Lead: entity.LeadFieldIDs{
			AppointmentDate: 1041261,
			MeetingLink:     1041263,
			Topic:           1041079,
			Phone:           1041259,
			Email:           1041257,
			Name:            1041077,
			InsuredName:     1041676,
			InsuredPhone:    1041678,
		},
	}
}

func (c *Config) HasKommoConfig() bool {
	return c.KommoAccessToken != ""
}

func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func (c *Config) HasRabbitMQ() bool {
	return c.RabbitMQURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration aceita "30s"/"1m" ou um número puro em segundos.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
