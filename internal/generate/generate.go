// Package generate calls the external text-generation service used to
// populate course content. The call is synchronous and attempt-once; a
// generation can legitimately run for minutes.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	URL     string
	Model   string
	Timeout time.Duration
}

type Client struct {
	url    string
	model  string
	client *http.Client
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func NewClient(cfg Config) *Client {
	url := cfg.URL
	if url == "" {
		url = "http://localhost:11434/api/generate"
	}
	model := cfg.Model
	if model == "" {
		model = "llama2"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Client{
		url:    url,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("generation response: %w", err)
	}
	return result.Response, nil
}

// BuildPrompt returns prompt verbatim when supplied, otherwise derives a
// course-outline prompt from the title and optional description.
func BuildPrompt(title, description, prompt string) string {
	if prompt != "" {
		return prompt
	}
	full := fmt.Sprintf("Create a detailed course outline and content for a course titled '%s'.", title)
	if description != "" {
		full += fmt.Sprintf(" The course is about: %s", description)
	}
	full += "\n\nPlease provide:\n1. Course overview\n2. Learning objectives\n3. Detailed course outline with modules\n4. Key concepts and topics"
	return full
}
