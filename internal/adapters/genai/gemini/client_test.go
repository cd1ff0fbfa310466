package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unisovet-console/internal/domain/assistant"
)

func reqFixture() assistant.GenerateRequest {
	return assistant.GenerateRequest{
		System: "Você é a Uni.",
		Turns: []assistant.Turn{
			{Role: assistant.RoleModel, Text: "Olá!"},
			{Role: assistant.RoleUser, Text: "quantos clientes temos?"},
		},
	}
}

func TestClient_GenerateContent_OK(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "Temos "}, {"text": "2 clientes."}},
				}},
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	text, err := c.GenerateContent(context.Background(), reqFixture())
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if text != "Temos 2 clientes." {
		t.Fatalf("unexpected text: %q", text)
	}

	if gotPath != "/v1beta/models/"+DefaultModel+":generateContent" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header missing, got %q", gotKey)
	}
	if gotBody.SystemInstruction == nil || gotBody.SystemInstruction.Parts[0].Text != "Você é a Uni." {
		t.Fatalf("system instruction not sent: %#v", gotBody.SystemInstruction)
	}
	if len(gotBody.Contents) != 2 || gotBody.Contents[0].Role != "model" || gotBody.Contents[1].Role != "user" {
		t.Fatalf("transcript not forwarded: %#v", gotBody.Contents)
	}
}

func TestClient_GenerateContent_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := c.GenerateContent(context.Background(), reqFixture()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_GenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.GenerateContent(context.Background(), reqFixture())
	if !errors.Is(err, ErrUpstream) || !strings.Contains(err.Error(), "empty response") {
		t.Fatalf("expected empty-response upstream error, got %v", err)
	}
}

func TestClient_GenerateContent_MissingAPIKey(t *testing.T) {
	c, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.IsConfigured() {
		t.Fatal("client without key must report unconfigured")
	}
	if _, err := c.GenerateContent(context.Background(), reqFixture()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.model != DefaultModel {
		t.Fatalf("expected default model, got %q", c.model)
	}
	if c.http.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", c.http.BaseURL)
	}
}
