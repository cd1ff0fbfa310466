package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unisovet-console/internal/router"
)

func TestHTTP_EndToEnd_ConsoleFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Painel inicial com o dataset de demonstração
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var sum struct {
			TotalClients         int `json:"total_clients"`
			TotalPets            int `json:"total_pets"`
			UpcomingAppointments int `json:"upcoming_appointments"`
			Upcoming             []struct {
				ClientName string `json:"client_name"`
				PetName    string `json:"pet_name"`
			} `json:"upcoming"`
		}
		mustUnmarshal(t, body, &sum)
		if sum.TotalClients != 2 || sum.TotalPets != 3 || sum.UpcomingAppointments != 1 {
			t.Fatalf("unexpected dashboard summary: %+v", sum)
		}
		if len(sum.Upcoming) != 1 || sum.Upcoming[0].ClientName != "João da Silva" || sum.Upcoming[0].PetName != "Rex" {
			t.Fatalf("upcoming entry missing resolved names: %+v", sum.Upcoming)
		}
	}

	// 2) Busca no estoque resolve o nome do fornecedor e marca estoque baixo
	{
		st, body := doReq(t, ts.URL, "GET", "/inventory?q=Ração", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 inventory search, got %d body=%s", st, string(body))
		}
		var items []struct {
			Name         string `json:"name"`
			SupplierName string `json:"supplier_name"`
			LowStock     bool   `json:"low_stock"`
		}
		mustUnmarshal(t, body, &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 itens de ração, got %d body=%s", len(items), string(body))
		}
		if items[0].SupplierName != "PetFood Inc." {
			t.Fatalf("supplier name not resolved: %+v", items[0])
		}
		if !items[0].LowStock || items[1].LowStock {
			t.Fatalf("low stock flags wrong: %+v", items)
		}
	}

	// 3) Cliente novo
	clientID := createResource(t, ts.URL, "/clients", map[string]any{
		"name":    "Bruno Lima",
		"email":   "bruno@example.com",
		"phone":   "(15) 98888-7777",
		"address": "Rua das Flores, 10",
	})

	// 4) Pet com dono desconhecido é rejeitado
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"owner_id": "no-such-owner",
			"name":     "Bolt",
			"species":  "Cachorro",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown owner, got %d", st)
		}
	}

	// 5) Pet do cliente novo
	petID := createResource(t, ts.URL, "/pets", map[string]any{
		"owner_id":   clientID,
		"name":       "Bolt",
		"species":    "Cachorro",
		"breed":      "Border Collie",
		"birth_date": "2024-03-10",
	})

	// 6) Agendamento para o pet
	apptID := createResource(t, ts.URL, "/appointments", map[string]any{
		"client_id": clientID,
		"pet_id":    petID,
		"date":      time.Now().AddDate(0, 0, 3).UTC().Format(time.RFC3339),
		"reason":    "Vacina antirrábica",
		"status":    "Agendado",
	})

	// 7) O painel passa a contar o novo agendamento futuro
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d", st)
		}
		var sum struct {
			UpcomingAppointments int `json:"upcoming_appointments"`
		}
		mustUnmarshal(t, body, &sum)
		if sum.UpcomingAppointments != 2 {
			t.Fatalf("expected 2 upcoming after create, got %d", sum.UpcomingAppointments)
		}
	}

	// 8) Conclusão direto pela ação de status
	{
		st, body := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID+"/status", map[string]any{
			"status": "Concluído",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch status, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status     string `json:"status"`
			ClientName string `json:"client_name"`
			PetName    string `json:"pet_name"`
		}
		mustUnmarshal(t, body, &resp)
		if resp.Status != "Concluído" {
			t.Fatalf("status not updated: %+v", resp)
		}
		if resp.ClientName != "Bruno Lima" || resp.PetName != "Bolt" {
			t.Fatalf("names not resolved: %+v", resp)
		}
	}

	// 9) Status inválido => 400
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID+"/status", map[string]any{
			"status": "Remarcado",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", st)
		}
	}

	// 10) Exclusão é idempotente: 204 nas duas chamadas
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/appointments/"+apptID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/appointments/"+apptID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 on repeated delete, got %d", st)
		}
	}

	// 11) Atualização de id inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PUT", "/clients/no-such-id", map[string]any{
			"name":    "Fantasma",
			"email":   "ghost@example.com",
			"phone":   "(15) 90000-0000",
			"address": "Lugar nenhum",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 updating missing client, got %d", st)
		}
	}
}

func TestHTTP_Assistant_WithoutProvider(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// transcript abre com a saudação
	{
		st, body := doReq(t, ts.URL, "GET", "/assistant/messages", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 transcript, got %d", st)
		}
		var msgs []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		mustUnmarshal(t, body, &msgs)
		if len(msgs) != 1 || msgs[0].Role != "model" {
			t.Fatalf("expected greeting only, got %s", string(body))
		}
	}

	// sem Generator configurado, o envio degrada para a mensagem fixa
	{
		st, body := doReq(t, ts.URL, "POST", "/assistant/messages", map[string]any{
			"content": "quantos clientes temos?",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 send, got %d body=%s", st, string(body))
		}
		var reply struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		mustUnmarshal(t, body, &reply)
		if reply.Role != "model" || reply.Content == "" {
			t.Fatalf("expected model apology, got %s", string(body))
		}
	}

	// transcript agora tem saudação + pergunta + resposta
	{
		st, body := doReq(t, ts.URL, "GET", "/assistant/messages", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 transcript, got %d", st)
		}
		var msgs []json.RawMessage
		mustUnmarshal(t, body, &msgs)
		if len(msgs) != 3 {
			t.Fatalf("expected 3 messages, got %d body=%s", len(msgs), string(body))
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func createResource(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(b), err)
	}
}
