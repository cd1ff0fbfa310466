package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Helpers de resposta compartilhados pelos handlers de todos os módulos.

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// DecodeJSON decodifica o body rejeitando campos desconhecidos.
// O erro carrega a causa (campo desconhecido, tipo errado) para o cliente.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid json: %v", err)
	}
	return nil
}
