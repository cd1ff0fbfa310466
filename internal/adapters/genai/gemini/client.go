package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"unisovet-console/internal/domain/assistant"
	"unisovet-console/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrUpstream      = errors.New("gemini upstream error")
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

// Config do cliente da API generativa.
// APIKey normalmente vem de env var; sem key o cliente devolve
// ErrNotConfigured e o assistente degrada para a mensagem de desculpas.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  model,
	}, nil
}

// NewWithHTTP injeta o httpclient (para testes com Transport fake).
func NewWithHTTP(hc *httpclient.Client, apiKey, model string) *Client {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{http: hc, apiKey: strings.TrimSpace(apiKey), model: model}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// Formato de generateContent da API (v1beta).
type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateContent envia o transcript completo mais a system instruction e
// devolve o texto gerado. Implementa assistant.Generator.
func (c *Client) GenerateContent(ctx context.Context, req assistant.GenerateRequest) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	body := generateRequest{
		Contents: make([]content, 0, len(req.Turns)),
	}
	if strings.TrimSpace(req.System) != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.System}}}
	}
	for _, t := range req.Turns {
		body.Contents = append(body.Contents, content{
			Role:  string(t.Role),
			Parts: []part{{Text: t.Text}},
		})
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)
	headers := map[string]string{"x-goog-api-key": c.apiKey}

	var out generateResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, path, headers, body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	var b strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}
	return text, nil
}
