package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/calendly-kommo/internal/entity"
)

type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Channel
}

func NewProducer(ch Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func RoutingKey(action entity.SyncAction) string {
	if action == "" {
		return RoutingKeyPrefix + "unknown"
	}
	return RoutingKeyPrefix + string(action)
}

// PublishSyncOutcome avisa os interessados sobre o resultado de uma entrega.
// A mensagem é transiente: o histórico durável fica no Postgres.
func (p *RabbitMQProducer) PublishSyncOutcome(ctx context.Context, outcome entity.SyncOutcome) error {
	body, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("erro ao converter resultado: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey(outcome.Action),
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    outcome.DeliveryID,
			Timestamp:    outcome.ProcessedAt,
			Body:         body,
			DeliveryMode: amqp.Transient,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
