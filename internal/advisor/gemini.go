package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// geminiRequest is the generateContent request payload.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the subset of the generateContent response we read.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiClient requests advisory reports from the Gemini generateContent
// endpoint.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	apiKey     string
	model      string
}

// NewGeminiClient creates a new Gemini advisory client.
func NewGeminiClient(httpClient *http.Client, apiKey, model string) *GeminiClient {
	return &GeminiClient{
		httpClient: httpClient,
		baseURL:    geminiBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// GenerateReport posts the summary prompt and returns the generated text.
// Callers are expected to substitute FallbackReport on any error.
func (c *GeminiClient) GenerateReport(ctx context.Context, summary Summary) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: BuildPrompt(summary)}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling report request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting report: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requesting report: unexpected status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding report response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("report response contained no candidates")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
