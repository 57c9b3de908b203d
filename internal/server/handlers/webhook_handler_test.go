package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmamadou/wacloud/events"
	"github.com/bmamadou/wacloud/internal/config"
	"github.com/bmamadou/wacloud/webhook"
)

const appSecret = "test-app-secret"

func newTestRouter(emitter events.Emitter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.WhatsAppConfig{
		AppSecret:   appSecret,
		VerifyToken: "verify-me",
	}
	handler := NewWebhookHandler(cfg, emitter, nil)

	r := gin.New()
	r.GET("/webhook", handler.Verify)
	r.POST("/webhook", handler.Receive)
	return r
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerify_EchoesChallenge(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=verify-me&hub.challenge=1158201444", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1158201444", w.Body.String())
}

func TestVerify_RejectsBadToken(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerify_RejectsBadMode(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=unsubscribe&hub.verify_token=verify-me&hub.challenge=123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReceive_DispatchesTypedEvents(t *testing.T) {
	var seen []events.Event
	emitter := events.EmitterFunc(func(_ context.Context, event events.Event) error {
		seen = append(seen, event)
		return nil
	})
	r := newTestRouter(emitter)

	body := []byte(`{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"field": "messages", "value": {
			"metadata": {"phone_number_id": "PNID"},
			"messages": [{"id": "wamid.1", "from": "5511999999999", "timestamp": "1700000000", "type": "text", "text": {"body": "Hi"}}]
		}}]}]
	}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set(webhook.SignatureHeader, signBody(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, seen, 1)

	text, ok := seen[0].(events.TextReceived)
	require.True(t, ok)
	assert.Equal(t, "Hi", text.Body)
	assert.Equal(t, "5511999999999", text.FromNumber)
	assert.Equal(t, "PNID", text.PhoneNumberID)
}

func TestReceive_RejectsBadSignature(t *testing.T) {
	var called bool
	emitter := events.EmitterFunc(func(_ context.Context, _ events.Event) error {
		called = true
		return nil
	})
	r := newTestRouter(emitter)

	body := []byte(`{"entry":[]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set(webhook.SignatureHeader, "sha256=deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestReceive_RejectsMissingSignature(t *testing.T) {
	r := newTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(`{}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReceive_RejectsMalformedPayload(t *testing.T) {
	r := newTestRouter(events.NewLogEmitter(nil))

	body := []byte(`{"entry":{"not":"an array"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set(webhook.SignatureHeader, signBody(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
