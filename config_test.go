package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjpl/session-slides/truncate"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, truncate.DefaultConfig(), cfg.Truncation)
	assert.Equal(t, "", cfg.OllamaHost)
	assert.Equal(t, "llama3.2", cfg.OllamaModel)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `truncation:
  prompt_max_chars: 120
  terminal_include_errors: false
ollama:
  host: http://ollama.internal:11434
  model: mistral
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Truncation.PromptMaxChars)
	assert.False(t, cfg.Truncation.TerminalIncludeErrors)
	assert.Equal(t, "http://ollama.internal:11434", cfg.OllamaHost)
	assert.Equal(t, "mistral", cfg.OllamaModel)

	// untouched keys keep their defaults
	def := truncate.DefaultConfig()
	assert.Equal(t, def.ProseMaxSentences, cfg.Truncation.ProseMaxSentences)
	assert.Equal(t, def.CodeLongThreshold, cfg.Truncation.CodeLongThreshold)
	assert.Equal(t, def.CommentStyles, cfg.Truncation.CommentStyles)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
