package titles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOllamaHost  = "http://localhost:11434"
	defaultOllamaModel = "llama3.2"

	titleSystemPrompt = "You generate concise slide titles for coding conversation summaries. " +
		"Respond with a single title of 2-6 words starting with a gerund " +
		"(e.g. \"Fixing Login Bug\", \"Adding Search Endpoint\"). " +
		"No punctuation, no quotes, no explanation."
)

// OllamaClient asks a locally running Ollama model for a title. It is an
// optional enhancement over the rule-based extraction; every failure mode
// (server down, bad status, malformed reply, out-of-range word count)
// falls back silently.
type OllamaClient struct {
	httpClient *http.Client
	host       string
	model      string
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaGenerateResponse struct {
	Model     string `json:"model"`
	CreatedAt string `json:"created_at"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
}

// NewOllamaClient creates a client for the given host and model. Empty
// arguments select the standard local server and a small default model.
func NewOllamaClient(host, model string) *OllamaClient {
	if host == "" {
		host = defaultOllamaHost
	}
	if model == "" {
		model = defaultOllamaModel
	}
	return &OllamaClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		host:       strings.TrimRight(host, "/"),
		model:      model,
	}
}

// GenerateTitle asks the model for a title for the given prompt. On any
// failure it returns the rule-based title for the same input.
func (c *OllamaClient) GenerateTitle(ctx context.Context, prompt string, turnNumber int) string {
	title, err := c.generate(ctx, prompt)
	if err != nil || !validTitle(title) {
		return GenerateTurnTitle(prompt, turnNumber)
	}
	return title
}

func (c *OllamaClient) generate(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("empty prompt")
	}
	// the model only needs the opening of long prompts
	prompt = firstChars(prompt, 500)

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		System: titleSystemPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.3,
			NumPredict:  20,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	title := strings.TrimSpace(out.Response)
	title = strings.Trim(title, "\"'.,;:!?")
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	return title, nil
}

// validTitle accepts replies of two to six words.
func validTitle(title string) bool {
	n := len(strings.Fields(title))
	return n >= 2 && n <= 6
}
