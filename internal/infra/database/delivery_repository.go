package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/calendly-kommo/internal/entity"
)

const createDeliveriesTable = `
	CREATE TABLE IF NOT EXISTS webhook_deliveries (
		id           BIGSERIAL PRIMARY KEY,
		delivery_id  TEXT        NOT NULL,
		event        TEXT        NOT NULL,
		event_name   TEXT        NOT NULL,
		branch       TEXT,
		phone        TEXT,
		lead_id      BIGINT,
		contact_id   BIGINT,
		action       TEXT        NOT NULL,
		error        TEXT,
		processed_at TIMESTAMPTZ NOT NULL
	)
`

// DeliveryRepository grava o histórico de entregas do webhook. Só escreve,
// nada aqui é lido de volta para decidir o sync.
type DeliveryRepository struct {
	DB *sql.DB
}

func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, createDeliveriesTable); err != nil {
		return fmt.Errorf("erro ao criar tabela webhook_deliveries: %w", err)
	}
	return nil
}

func (r *DeliveryRepository) Record(ctx context.Context, o entity.SyncOutcome) error {
	query := `
		INSERT INTO webhook_deliveries
			(delivery_id, event, event_name, branch, phone, lead_id, contact_id, action, error, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		o.DeliveryID,
		o.Event,
		o.EventName,
		nullString(string(o.Branch)),
		nullString(o.Phone),
		nullInt(o.LeadID),
		nullInt(o.ContactID),
		string(o.Action),
		nullString(o.Error),
		o.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao registrar entrega %s: %w", o.DeliveryID, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}
