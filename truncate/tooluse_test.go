package truncate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatToolUseFileTools(t *testing.T) {
	assert.Equal(t, "Reading: main.go",
		FormatToolUse("Read", map[string]any{"file_path": "/src/cmd/main.go"}))
	assert.Equal(t, "Writing: notes.md",
		FormatToolUse("write_file", map[string]any{"path": "notes.md"}))
	assert.Equal(t, "Editing: config.yaml",
		FormatToolUse("Edit", map[string]any{"file_path": "deploy/config.yaml"}))
	assert.Equal(t, "Reading file", FormatToolUse("Read", nil))
}

func TestFormatToolUseShellTruncation(t *testing.T) {
	long := strings.Repeat("x", 60)
	got := FormatToolUse("Bash", map[string]any{"command": long})

	assert.Equal(t, "Running: "+strings.Repeat("x", 47)+"...", got)

	short := "ls -la"
	assert.Equal(t, "Running: ls -la", FormatToolUse("Bash", map[string]any{"command": short}))
}

func TestFormatToolUseShellTruncationMultibyte(t *testing.T) {
	long := strings.Repeat("回", 60)
	got := FormatToolUse("Bash", map[string]any{"command": long})

	assert.True(t, utf8.ValidString(got), "got %q", got)
	assert.Equal(t, "Running: "+strings.Repeat("回", 47)+"...", got)
}

func TestFormatToolUseSearchTools(t *testing.T) {
	long := strings.Repeat("p", 35)
	assert.Equal(t, "Searching: "+strings.Repeat("p", 27)+"...",
		FormatToolUse("Grep", map[string]any{"pattern": long}))

	assert.Equal(t, "Finding: **/*.go",
		FormatToolUse("Glob", map[string]any{"pattern": "**/*.go"}))
}

func TestFormatToolUseWebTools(t *testing.T) {
	longURL := "https://example.com/very/long/path/that/exceeds/forty/characters"
	assert.Equal(t, "Fetching: example.com",
		FormatToolUse("WebFetch", map[string]any{"url": longURL}))

	assert.Equal(t, "Fetching: https://go.dev",
		FormatToolUse("WebFetch", map[string]any{"url": "https://go.dev"}))

	longQuery := strings.Repeat("q", 45)
	assert.Equal(t, "Searching web: "+strings.Repeat("q", 37)+"...",
		FormatToolUse("WebSearch", map[string]any{"query": longQuery}))
}

func TestFormatToolUseTask(t *testing.T) {
	assert.Equal(t, "Task: scan the repo",
		FormatToolUse("Task", map[string]any{"description": "scan the repo"}))
}

func TestFormatToolUseMCP(t *testing.T) {
	assert.Equal(t, "MCP: query database",
		FormatToolUse("mcp__postgres__query_database", nil))
	assert.Equal(t, "MCP: mcp__broken",
		FormatToolUse("mcp__broken", nil))
}

func TestFormatToolUseUnknownFallsBack(t *testing.T) {
	assert.Equal(t, "Custom Tool Name", FormatToolUse("custom_tool-name", nil))
	assert.Equal(t, "Notebookedit", FormatToolUse("NotebookEdit", nil))
}
