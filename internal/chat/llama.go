package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// LLaMAProvider talks to an OpenAI-style chat-completions endpoint.
// The system context is inlined as the first message because the API
// has no separate system field across all deployments we target.
type LLaMAProvider struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

func NewLLaMAProvider(apiKey, model, apiURL string) *LLaMAProvider {
	return &LLaMAProvider{
		apiKey: apiKey,
		model:  model,
		apiURL: apiURL,
		client: &http.Client{},
	}
}

func (l *LLaMAProvider) Name() string { return "llama" }

func (l *LLaMAProvider) Configured() bool {
	return l.apiKey != "" && l.apiURL != ""
}

func (l *LLaMAProvider) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	if !l.Configured() {
		return "", errors.New("missing LLAMA_API_KEY or LLAMA_API_URL")
	}

	wire := make([]map[string]string, 0, len(messages)+1)
	wire = append(wire, map[string]string{"role": "system", "content": system})
	for _, m := range messages {
		wire = append(wire, map[string]string{"role": m.Role, "content": m.Content})
	}

	payload := map[string]any{
		"model":       l.model,
		"messages":    wire,
		"temperature": 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("llama api error: " + string(raw))
	}

	return extractCompletion(raw)
}

// extractCompletion handles the response shapes seen across LLaMA
// hosting providers.
func extractCompletion(raw []byte) (string, error) {
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}

	// OpenAI-compatible shape
	if choices, ok := parsed["choices"].([]any); ok && len(choices) > 0 {
		if choice, ok := choices[0].(map[string]any); ok {
			if msg, ok := choice["message"].(map[string]any); ok {
				if txt, ok := msg["content"].(string); ok && txt != "" {
					return txt, nil
				}
			}
			if txt, ok := choice["text"].(string); ok && txt != "" {
				return txt, nil
			}
		}
	}

	if v, ok := parsed["output_text"].(string); ok && v != "" {
		return v, nil
	}

	if v, ok := parsed["generated_text"].(string); ok && v != "" {
		return v, nil
	}

	if gen, ok := parsed["generation"].(map[string]any); ok {
		if txt, ok := gen["text"].(string); ok && txt != "" {
			return txt, nil
		}
	}

	return "", errors.New("empty llama response")
}

var _ Provider = (*LLaMAProvider)(nil)
