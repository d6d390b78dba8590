package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sweatscore/sweatscore/config"
	"github.com/sweatscore/sweatscore/ledger"
	"github.com/sweatscore/sweatscore/utils"
)

func newWebhookRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := utils.InitLogger(config.AppConfig{LogLevel: "error"}); err != nil {
		t.Fatalf("init logger: %v", err)
	}

	// No store is needed: these requests never get past eligibility.
	svc := ledger.NewService(nil, ledger.Options{ChannelID: "C0GYM"})
	r := gin.New()
	r.POST("/api/slack/events", NewWebhookController(svc).HandleSlackEvent)
	return r
}

func TestHandleSlackEventURLVerification(t *testing.T) {
	r := newWebhookRouter(t)

	body := `{"type":"url_verification","challenge":"3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P"}`
	req := httptest.NewRequest(http.MethodPost, "/api/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["challenge"] != "3eZbrw1aBm2rZgRNFdxV2595E9CY3gmdALWMmHkvFXO7tYXAYM8P" {
		t.Errorf("challenge not echoed back, got %q", resp["challenge"])
	}
}

func TestHandleSlackEventWrongChannelAcked(t *testing.T) {
	r := newWebhookRouter(t)

	body := `{"type":"event_callback","event":{"type":"message","channel":"C0OTHER","user":"U1","ts":"1.2","files":[{"mimetype":"image/png","url_private":"https://files/a.png"}]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Ineligible events are acknowledged so Slack does not retry them.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp["ok"] {
		t.Error("expected ok ack for rejected event")
	}
}

func TestHandleSlackEventMalformedPayload(t *testing.T) {
	r := newWebhookRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/slack/events", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
