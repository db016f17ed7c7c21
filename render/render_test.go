package render

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjpl/session-slides/model"
	"github.com/bjpl/session-slides/truncate"
)

func sampleDeckSession() *model.Session {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &model.Session{
		ID:          "abc12345-6789",
		ProjectPath: "/home/dev/webapp",
		StartTime:   start,
		EndTime:     start.Add(3*time.Minute + 5*time.Second),
		Turns: []*model.Turn{
			{Role: "user", Text: "Fix the login bug", Timestamp: start},
			{Role: "assistant", Blocks: []model.ContentBlock{
				{Type: "text", Text: "Patched the session handler."},
				{Type: "tool_use", ToolUse: &model.ToolUse{
					ID:    "t1",
					Name:  "Edit",
					Input: map[string]any{"file_path": "/home/dev/webapp/auth.py"},
				}},
				{Type: "tool_use", ToolUse: &model.ToolUse{
					ID:      "t2",
					Name:    "Bash",
					Input:   map[string]any{"command": "pytest"},
					Result:  "Error: 1 test failed",
					IsError: true,
				}},
			}},
		},
	}
}

func TestGenerateHTML(t *testing.T) {
	session := sampleDeckSession()

	out, err := GenerateHTML(session, Options{
		Title:      "Webapp <Session>",
		TurnTitles: []string{"Fixing Login Bug"},
		Truncation: truncate.DefaultConfig(),
	})
	require.NoError(t, err)

	// self contained document
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Content-Security-Policy")
	assert.NotContains(t, out, "<script src=")
	assert.NotContains(t, out, `<link rel="stylesheet" href=`)

	// title is escaped everywhere it appears
	assert.Contains(t, out, "Webapp &lt;Session&gt;")
	assert.NotContains(t, out, "Webapp <Session>")

	// title slide metadata
	assert.Contains(t, out, ">abc12345<", "session id shortened to 8 chars")
	assert.Contains(t, out, ">webapp<", "project name from path")
	assert.Contains(t, out, ">3m 5s<")

	// turn slide
	assert.Contains(t, out, "Turn 1: Fixing Login Bug")
	assert.Contains(t, out, "Fix the login bug")
	assert.Contains(t, out, "Patched the session handler.")
	assert.Contains(t, out, `title="Editing: auth.py"`)
	assert.Contains(t, out, ">Edit</span>")

	// failed tool output shows up as terminal lines
	assert.Contains(t, out, `<div class="terminal-line error">Error: 1 test failed</div>`)

	// files modified section and summary slide
	assert.Contains(t, out, "/home/dev/webapp/auth.py")
	assert.Contains(t, out, "modified")
	assert.Contains(t, out, "Session Overview")
	assert.Contains(t, out, "<li>Bash (1x)</li>")
	assert.Contains(t, out, "<li>Edit (1x)</li>")

	// title + one turn + summary
	assert.Contains(t, out, ">1 / 3</span>")
}

func TestGenerateHTMLEmptySession(t *testing.T) {
	out, err := GenerateHTML(&model.Session{ID: "empty"}, Options{Truncation: truncate.DefaultConfig()})
	require.NoError(t, err)

	assert.Contains(t, out, "Session Slides", "default deck title")
	assert.Contains(t, out, "Claude Code Session", "subtitle fallback without a start time")
	assert.NotContains(t, out, "Session Overview", "no summary slide without turns")
	assert.Contains(t, out, ">1 / 1</span>")
}

func TestFormatResponseContent(t *testing.T) {
	content := "Here is the fix:\n\n```go\nfunc main() {}\n```\n\nRun `go test` & check <b>output</b>."

	out := formatResponseContent(content)

	assert.Contains(t, out, `<div class="code-block">`)
	assert.Contains(t, out, `<span class="code-language">go</span>`)
	assert.Contains(t, out, "func main() {}")
	assert.Contains(t, out, `<code class="inline-code">go test</code>`)
	assert.Contains(t, out, "<p>Here is the fix:</p>")
	assert.Contains(t, out, "&amp; check &lt;b&gt;output&lt;/b&gt;")
	assert.NotContains(t, out, "<b>output</b>")
	assert.NotContains(t, out, "\x00", "all placeholders restored")
	assert.NotContains(t, out, "```")
}

func TestFormatResponseContentLineBreaks(t *testing.T) {
	out := formatResponseContent("first line\nsecond line\n\nnext paragraph")

	assert.Contains(t, out, "first line<br>\nsecond line")
	assert.Contains(t, out, "<p>next paragraph</p>")
}

func TestFormatResponseContentCapsProse(t *testing.T) {
	content := strings.Repeat("All work and no play. ", 200)

	out := formatResponseContent(content)

	assert.Contains(t, out, "more characters truncated")
	assert.Less(t, len(out), len(content))
}

func TestFormatResponseContentCapsProseMultibyte(t *testing.T) {
	// no paragraph or sentence break, so the cap falls back to a hard
	// cut, which must land between runes
	content := strings.Repeat("漢", 3000)

	out := formatResponseContent(content)

	require.True(t, utf8.ValidString(out), "output must stay valid UTF-8")
	assert.Contains(t, out, "[... 1000 more characters truncated ...]")
	assert.Contains(t, out, strings.Repeat("漢", 2000))
	assert.NotContains(t, out, strings.Repeat("漢", 2001))
}

func TestFormatResponseContentEmpty(t *testing.T) {
	assert.Equal(t, "", formatResponseContent(""))
}

func TestFormatCodeBlockShort(t *testing.T) {
	out := formatCodeBlock("x = 1\ny = 2", "python", "calc.py", codeBlockMaxLines)

	assert.Contains(t, out, `<span class="code-language">python</span>`)
	assert.Contains(t, out, `<span class="code-filename">calc.py</span>`)
	assert.Contains(t, out, "x = 1\ny = 2")
	assert.NotContains(t, out, "collapsible")
}

func TestFormatCodeBlockCollapsible(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	out := formatCodeBlock(strings.Join(lines, "\n"), "go", "", codeBlockMaxLines)

	assert.Contains(t, out, `<div class="code-block collapsible">`)
	assert.Contains(t, out, `<span class="code-lines">(30 lines)</span>`)
	assert.Contains(t, out, "[... 17 more lines ...]", "30 minus head 8 minus tail 5")
	assert.Contains(t, out, "toggleCollapsible(this)")
}

func TestFormatTerminalOutput(t *testing.T) {
	out := formatTerminalOutput("building\nError: nope\nwarning: slow\nall tests passed", 15)

	assert.Contains(t, out, `<div class="terminal-line">building</div>`)
	assert.Contains(t, out, `<div class="terminal-line error">Error: nope</div>`)
	assert.Contains(t, out, `<div class="terminal-line warning">warning: slow</div>`)
	assert.Contains(t, out, `<div class="terminal-line success">all tests passed</div>`)
}

func TestFormatTerminalOutputKeepsHiddenErrors(t *testing.T) {
	out := formatTerminalOutput("one\ntwo\nthree\nfour\nError: deep failure\nsix", 3)

	assert.Contains(t, out, "... (3 more lines)")
	assert.Contains(t, out, `<div class="terminal-line error">Error: deep failure</div>`)
	assert.NotContains(t, out, ">four<")
	assert.NotContains(t, out, ">six<")
}

func TestFormatTerminalOutputEmpty(t *testing.T) {
	assert.Equal(t, "", formatTerminalOutput("", 15))
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, ""},
		{-time.Minute, ""},
		{42 * time.Second, "42s"},
		{3*time.Minute + 5*time.Second, "3m 5s"},
		{3 * time.Minute, "3m"},
		{2*time.Hour + 10*time.Minute, "2h 10m"},
		{2 * time.Hour, "2h"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatDuration(c.d), "formatDuration(%v)", c.d)
	}
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "webapp", projectName("/home/dev/webapp"))
	assert.Equal(t, "webapp", projectName("/home/dev/webapp/"))
	assert.Equal(t, "webapp", projectName(`C:\dev\webapp`))
	assert.Equal(t, "", projectName(""))
}

func TestFileChanges(t *testing.T) {
	pair := model.Pair{
		User: &model.Turn{Role: "user", Text: "do things"},
		Responses: []*model.Turn{{
			Role: "assistant",
			Blocks: []model.ContentBlock{
				{Type: "tool_use", ToolUse: &model.ToolUse{Name: "Write", Input: map[string]any{"file_path": "new.go"}}},
				{Type: "tool_use", ToolUse: &model.ToolUse{Name: "Edit", Input: map[string]any{"file_path": "old.go"}}},
				{Type: "tool_use", ToolUse: &model.ToolUse{Name: "Edit", Input: map[string]any{"file_path": "old.go"}}},
				{Type: "tool_use", ToolUse: &model.ToolUse{Name: "NotebookEdit", Input: map[string]any{"notebook_path": "nb.ipynb"}}},
				{Type: "tool_use", ToolUse: &model.ToolUse{Name: "Read", Input: map[string]any{"file_path": "ignored.go"}}},
			},
		}},
	}

	changes := fileChanges(pair)
	require.Len(t, changes, 3)
	assert.Equal(t, FileChange{Path: "new.go", Action: "created"}, changes[0])
	assert.Equal(t, FileChange{Path: "old.go", Action: "modified"}, changes[1])
	assert.Equal(t, FileChange{Path: "nb.ipynb", Action: "modified"}, changes[2])
}
