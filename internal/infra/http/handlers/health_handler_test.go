package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/calendly-kommo/internal/infra/http/handlers"
)

func TestHealthWithoutDependencies(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, nil, true)

	w := httptest.NewRecorder()
	handler.Handle(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Servidor de webhooks Calendly -> Kommo funcionando", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, "configured", resp.Dependencies["kommo"])
	assert.Equal(t, "not configured", resp.Dependencies["database"])
	assert.Equal(t, "not configured", resp.Dependencies["rabbitmq"])
}

func TestHealthDegradedWhenDatabaseDown(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))

	handler := handlers.NewHealthHandler(db, nil, false)

	w := httptest.NewRecorder()
	handler.Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Contains(t, resp.Dependencies["database"], "unhealthy")
	assert.Equal(t, "not configured", resp.Dependencies["kommo"])
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHealthDatabaseHealthy(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	dbMock.ExpectPing()

	handler := handlers.NewHealthHandler(db, nil, true)

	w := httptest.NewRecorder()
	handler.Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestNotFoundAndRecoverer(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.NotFound(w, httptest.NewRequest(http.MethodGet, "/nada", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Rota não encontrada"}`, w.Body.String())

	panicking := handlers.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	w = httptest.NewRecorder()
	panicking.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro interno do servidor"}`, w.Body.String())
}

func TestRootStaysOkWhenDependencyDown(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))

	handler := handlers.NewHealthHandler(db, nil, true)

	w := httptest.NewRecorder()
	handler.HandleRoot(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, resp.Dependencies["database"], "unhealthy")
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
