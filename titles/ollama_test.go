package titles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollamaStub(t *testing.T, response string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaGenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.NotEmpty(t, req.Model)
		assert.NotEmpty(t, req.System)

		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: response, Done: true})
	}))
}

func TestOllamaGenerateTitle(t *testing.T) {
	srv := ollamaStub(t, "Fixing Login Bug", http.StatusOK)
	defer srv.Close()

	c := NewOllamaClient(srv.URL, "test-model")
	got := c.GenerateTitle(context.Background(), "fix the login bug", 1)

	assert.Equal(t, "Fixing Login Bug", got)
}

func TestOllamaStripsWrappingPunctuation(t *testing.T) {
	srv := ollamaStub(t, `"Adding Search Endpoint."`, http.StatusOK)
	defer srv.Close()

	c := NewOllamaClient(srv.URL, "test-model")
	got := c.GenerateTitle(context.Background(), "add a search endpoint", 1)

	assert.Equal(t, "Adding Search Endpoint", got)
}

func TestOllamaFallsBackOnWordCount(t *testing.T) {
	for _, reply := range []string{
		"Refactoring",                            // one word
		"A Very Long Title With Seven Words Now", // seven words
		"",
	} {
		srv := ollamaStub(t, reply, http.StatusOK)

		c := NewOllamaClient(srv.URL, "test-model")
		got := c.GenerateTitle(context.Background(), "Refactor the parser module", 3)

		assert.Equal(t, GenerateTurnTitle("Refactor the parser module", 3), got,
			"reply %q should fall back", reply)
		srv.Close()
	}
}

func TestOllamaFallsBackOnServerError(t *testing.T) {
	srv := ollamaStub(t, "ignored", http.StatusInternalServerError)
	defer srv.Close()

	c := NewOllamaClient(srv.URL, "test-model")
	got := c.GenerateTitle(context.Background(), "Fix the login bug", 2)

	assert.Equal(t, GenerateTurnTitle("Fix the login bug", 2), got)
}

func TestOllamaFallsBackWhenUnreachable(t *testing.T) {
	c := NewOllamaClient("http://127.0.0.1:1", "test-model")
	got := c.GenerateTitle(context.Background(), "Create a login form", 4)

	assert.Equal(t, GenerateTurnTitle("Create a login form", 4), got)
}

func TestOllamaDefaults(t *testing.T) {
	c := NewOllamaClient("", "")
	assert.Equal(t, defaultOllamaHost, c.host)
	assert.Equal(t, defaultOllamaModel, c.model)
}
