package titles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTurnTitleFallback(t *testing.T) {
	assert.Equal(t, "Turn 5", GenerateTurnTitle("", 5))
	assert.Equal(t, "Turn 10", GenerateTurnTitle("   ", 10))
	assert.Equal(t, "Turn 1", GenerateTurnTitle("\n\t\n", 1))
}

func TestGenerateTurnTitleGerunds(t *testing.T) {
	tests := []struct {
		prompt string
		prefix string
	}{
		{"Create a login form", "Creating"},
		{"Fix the authentication bug", "Fixing"},
		{"Add pagination to the results", "Adding"},
		{"Update the user schema", "Updating"},
		{"Refactor the database layer", "Refactoring"},
		{"set up continuous integration", "Setting Up"},
	}
	for _, tt := range tests {
		got := GenerateTurnTitle(tt.prompt, 1)
		assert.True(t, strings.HasPrefix(got, tt.prefix), "prompt %q -> %q", tt.prompt, got)
	}
}

func TestGenerateTurnTitlePrefixStripping(t *testing.T) {
	got := GenerateTurnTitle("Hey Claude, can you create a login form?", 1)
	assert.True(t, strings.HasPrefix(got, "Creating"), "got %q", got)

	got = GenerateTurnTitle("Please fix the checkout bug", 2)
	assert.True(t, strings.HasPrefix(got, "Fixing"), "got %q", got)

	got = GenerateTurnTitle("okay, so, just refactor the parser", 3)
	assert.True(t, strings.HasPrefix(got, "Refactoring"), "got %q", got)
}

func TestGenerateTurnTitleQuotedSubjectWins(t *testing.T) {
	got := GenerateTurnTitle("Update 'config.json' with new settings", 6)
	assert.Contains(t, got, "config.json")
	assert.True(t, strings.HasPrefix(got, "Updating"), "got %q", got)
}

func TestGenerateTurnTitleFilePathSubject(t *testing.T) {
	got := GenerateTurnTitle("review src/auth/login.py", 1)
	assert.Equal(t, "Reviewing src/auth/login.py", got)
}

func TestGenerateTurnTitleNoiseRecovery(t *testing.T) {
	prompt := "TypeError: cannot read property 'foo' of undefined\nPlease fix the login bug"
	got := GenerateTurnTitle(prompt, 4)
	assert.True(t, strings.HasPrefix(got, "Fixing"), "got %q", got)
}

func TestGenerateTurnTitleUnrecoverableNoise(t *testing.T) {
	got := GenerateTurnTitle("[ERROR] 2024-01-01 stack dump follows", 7)
	assert.NotEmpty(t, got)
}

func TestGenerateTurnTitleSubjectOnly(t *testing.T) {
	// no leading action verb; noun extraction carries the title
	got := GenerateTurnTitle("the dashboard layout", 3)
	assert.Equal(t, "Dashboard Layout", got)
}

func TestGenerateContinuedTitle(t *testing.T) {
	assert.Equal(t, "Turn 5 (continued)", GenerateContinuedTitle("Turn 5"))
	assert.Equal(t, "Turn 5 (continued)", GenerateContinuedTitle(GenerateContinuedTitle("Turn 5")))
	assert.Equal(t, "(continued)", GenerateContinuedTitle(""))
}

func TestFindActionVerb(t *testing.T) {
	gerund, remaining := findActionVerb("set up the pipeline")
	assert.Equal(t, "Setting Up", gerund)
	assert.Equal(t, "the pipeline", remaining)

	gerund, remaining = findActionVerb("fix flaky tests")
	assert.Equal(t, "Fixing", gerund)
	assert.Equal(t, "flaky tests", remaining)

	gerund, remaining = findActionVerb("the weather today")
	assert.Equal(t, "", gerund)
	assert.Equal(t, "the weather today", remaining)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fix the bug", "Fix the Bug"},
		{"src/main.go", "src/main.go"},
		{"API error page", "API Error Page"},
		{"the myApp settings", "The myApp Settings"},
		{"config.json entry", "config.json Entry"},
		{"a walk in the park", "A Walk in the Park"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.in), "input %q", tt.in)
	}
}

func TestExtractMeaningfulNouns(t *testing.T) {
	assert.Equal(t, "user profile page", extractMeaningfulNouns("the user profile page"))
	// collection stops at a preposition once content words exist
	assert.Equal(t, "pagination", extractMeaningfulNouns("pagination to the results"))
	assert.Equal(t, "", extractMeaningfulNouns("the of and"))
}

func TestIsTechnicalNoise(t *testing.T) {
	assert.True(t, isTechnicalNoise("Error: something broke"))
	assert.True(t, isTechnicalNoise("[WARN] disk almost full"))
	assert.True(t, isTechnicalNoise("2024-06-01 12:00:00 request received"))
	assert.True(t, isTechnicalNoise("GET /api/users returned slowly"))
	assert.True(t, isTechnicalNoise("npm ERR! missing script"))
	assert.False(t, isTechnicalNoise("Fix the login page"))
}

func TestGenerateTurnTitleNeverPanicsOrEmpty(t *testing.T) {
	inputs := []string{
		"", " ", "...", "???", "/usr/bin/env", "http://example.com",
		strings.Repeat("a", 10000), "héllo wörld", "日本語のプロンプト",
		"'''", "`", "\x00\x01",
	}
	for i, in := range inputs {
		got := GenerateTurnTitle(in, i)
		assert.NotEmpty(t, got, "input %q", in)
	}
}
