package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"
)

// GatewayService talks to an OpenAI-compatible chat completions API,
// used for both food recognition (vision) and nutrition estimation.
type GatewayService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewGatewayService() *GatewayService {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return &GatewayService{
		client:  &http.Client{Timeout: 60 * time.Second},
		apiKey:  os.Getenv("LLM_API_KEY"),
		baseURL: baseURL,
		model:   model,
	}
}

// Message is one chat turn. Content is either a plain string or a list
// of ContentParts for multimodal (text + image) messages.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"` // "text" | "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

func TextMessage(role, text string) Message {
	return Message{Role: role, Content: text}
}

// ImageMessage builds a user message carrying an instruction and a
// base64 data-URL image.
func ImageMessage(text, dataURL string) Message {
	return Message{
		Role: "user",
		Content: []ContentPart{
			{Type: "text", Text: text},
			{Type: "image_url", ImageURL: &ImageURL{URL: dataURL}},
		},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Messages    []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat completion request and returns the raw text
// of the first choice. Upstream failures come back as *GatewayError;
// nothing is retried here.
func (s *GatewayService) Complete(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error) {
	payload := chatRequest{
		Model:       s.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages:    messages,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", &GatewayError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GatewayError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &GatewayError{Status: resp.StatusCode, Body: string(body)}
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", &GatewayError{Status: resp.StatusCode, Err: err}
	}
	if len(cr.Choices) == 0 {
		return "", &GatewayError{Status: resp.StatusCode, Body: "no choices in response"}
	}
	return cr.Choices[0].Message.Content, nil
}
