package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway is the provider-agnostic interface a text-generation adapter must
// implement. Swapping providers means implementing this interface and wiring
// it in main.
type Gateway interface {
	// Generate sends a prompt and returns the model's prose response.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ── Gemini Adapter ────────────────────────────────────────────────────────────

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

type geminiGateway struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiGateway returns a Gateway backed by the Gemini generateContent
// REST endpoint. An empty baseURL selects the public endpoint; tests point it
// at a local server.
func NewGeminiGateway(apiKey, model, baseURL string) Gateway {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &geminiGateway{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *geminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("stylist: provider returned %d: %s", resp.StatusCode, body)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("stylist: provider returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
