package groq

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-care-assistant/internal/platform/httpclient"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "mixtral-8x7b-32768"

	// Parámetros fijos del producto: salidas consistentes y acotadas.
	temperature = 0.5
	maxTokens   = 500
)

// systemInstruction exige consejos específicos y con métricas, nunca genéricos.
const systemInstruction = `You are a veterinary expert specializing in precise, evidence-based pet care recommendations.
Your responses must be:
1. Highly specific with exact measurements, durations, and frequencies
2. Tailored to the exact breed, age, and health conditions
3. Based on current veterinary research
4. Formatted in clear bullet points
5. Free of generic advice

Never provide general statements - each point must include specific metrics, measurements, or actionable steps.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse es el shape mínimo que consumimos: choices[0].message.content.
type chatResponse struct {
	Choices []struct {
		Index   int         `json:"index"`
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Config arma el cliente desde env en el router. Campos vacíos => defaults.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client implementa llm.Generator contra la API chat-completions de Groq.
type Client struct {
	http   *httpclient.Client
	apiKey string
	model  string
}

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("groq: api key required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		// la generación puede tardar bastante más que un request JSON común
		timeout = 60 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}

	return &Client{
		http:   hc,
		apiKey: cfg.APIKey,
		model:  model,
	}, nil
}

// Generate envía system + user y devuelve el contenido de la primera choice.
// Todo fallo (transporte, status no-2xx, payload malformado) vuelve como error;
// el caller lo muestra y saltea los pasos dependientes (PDF, persistencia).
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var resp chatResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/chat/completions",
		map[string]string{"Authorization": "Bearer " + c.apiKey},
		req, &resp,
	)
	if err != nil {
		return "", fmt.Errorf("groq: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("groq: no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
