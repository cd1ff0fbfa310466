package httpx

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeJSON_KeepsCause(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	// campo desconhecido
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"nome":"x"}`))
	var p payload
	err := DecodeJSON(req, &p)
	if err == nil || !strings.Contains(err.Error(), "unknown field") {
		t.Fatalf("expected unknown-field cause, got %v", err)
	}

	// tipo errado
	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":42}`))
	err = DecodeJSON(req, &p)
	if err == nil || !strings.Contains(err.Error(), "cannot unmarshal") {
		t.Fatalf("expected type-mismatch cause, got %v", err)
	}

	// json quebrado
	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))
	if err := DecodeJSON(req, &p); err == nil {
		t.Fatal("expected error for truncated json")
	}
}
