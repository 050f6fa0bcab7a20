package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/contacts/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/contacts/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/contacts/{id}", "418")))
}

func TestResponseWriterKeepsFlusher(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	var w http.ResponseWriter = rw
	f, ok := w.(http.Flusher)
	assert.True(t, ok)
	f.Flush()
	assert.True(t, rec.Flushed)
}

func TestRecordLeadSync(t *testing.T) {
	before := testutil.ToFloat64(leadSyncs.WithLabelValues("none", "ignored"))
	RecordLeadSync("", "ignored")
	assert.Equal(t, before+1, testutil.ToFloat64(leadSyncs.WithLabelValues("none", "ignored")))
}

func TestRecordWebhookReceivedKeepsLabelsBounded(t *testing.T) {
	beforeOther := testutil.ToFloat64(webhooksReceived.WithLabelValues("other"))
	beforeCreated := testutil.ToFloat64(webhooksReceived.WithLabelValues("invitee.created"))
	series := testutil.CollectAndCount(webhooksReceived)

	RecordWebhookReceived("evento-inventado-1")
	RecordWebhookReceived("evento-inventado-2")
	RecordWebhookReceived("")
	RecordWebhookReceived("invitee.created")

	assert.Equal(t, beforeOther+3, testutil.ToFloat64(webhooksReceived.WithLabelValues("other")))
	assert.Equal(t, beforeCreated+1, testutil.ToFloat64(webhooksReceived.WithLabelValues("invitee.created")))
	assert.Equal(t, series, testutil.CollectAndCount(webhooksReceived))
}
