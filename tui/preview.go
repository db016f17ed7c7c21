package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bjpl/session-slides/model"
	"github.com/bjpl/session-slides/scanner"
	"github.com/bjpl/session-slides/titles"
	"github.com/bjpl/session-slides/truncate"
)

// previewState holds the scrollable turn-title preview of one session.
type previewState struct {
	entry   scanner.SessionEntry
	lines   []string
	offset  int
	loading bool
}

// previewLoadedMsg is sent when async session parsing completes.
type previewLoadedMsg struct {
	path    string // identifies which session this result belongs to
	session *model.Session
	err     error
}

func loadPreview(entry scanner.SessionEntry) tea.Cmd {
	path := entry.Path
	return func() tea.Msg {
		session, err := scanner.ParseSession(path)
		return previewLoadedMsg{path: path, session: session, err: err}
	}
}

func (m Model) enterPreview() (Model, tea.Cmd) {
	m.preview = previewState{
		entry:   m.filtered[m.cursor],
		loading: true,
	}
	m.mode = modePreview
	return m, loadPreview(m.preview.entry)
}

func (m Model) updatePreviewLoaded(msg previewLoadedMsg) Model {
	// discard stale result if the user already switched sessions
	if msg.path != m.preview.entry.Path {
		return m
	}
	m.preview.loading = false
	if msg.err != nil {
		m.preview.lines = []string{"", "  " + msg.err.Error()}
		return m
	}
	m.preview.lines = m.renderPreviewContent(msg.session)
	m.preview.offset = 0
	return m
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "tab":
		m.mode = modeList
		return m, nil

	case "enter":
		m.selected = m.preview.entry.Path
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.previewScroll(-1)
	case "down", "j":
		m.previewScroll(1)
	case "pgup", "u":
		m.previewScroll(-m.previewVisibleRows())
	case "pgdown", "d":
		m.previewScroll(m.previewVisibleRows())
	case "home", "g":
		m.preview.offset = 0
	case "end", "G":
		m.previewScroll(len(m.preview.lines))
	}

	return m, nil
}

func (m Model) viewPreview() string {
	var b strings.Builder

	title := previewTitleStyle.Render(" " + m.preview.entry.ShortID() + "  " +
		m.preview.entry.Modified.Format("2006-01-02 15:04"))
	b.WriteString(title + "\n")

	visible := m.previewVisibleRows()

	if m.preview.loading {
		b.WriteString("\n  Loading...\n")
		for i := 2; i < visible; i++ {
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("  Esc: back"))
		return b.String()
	}

	end := m.preview.offset + visible
	if end > len(m.preview.lines) {
		end = len(m.preview.lines)
	}
	for i := m.preview.offset; i < end; i++ {
		b.WriteString(m.preview.lines[i] + "\n")
	}
	for i := end - m.preview.offset; i < visible; i++ {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  Enter: select  Esc: back  j/k: scroll"))
	return b.String()
}

// renderPreviewContent lists each conversation pair as a numbered title
// with a short prompt excerpt underneath.
func (m Model) renderPreviewContent(session *model.Session) []string {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 40
	}

	cfg := truncate.DefaultConfig()
	cfg.PromptMaxChars = 120

	var lines []string
	pairs := session.ConversationPairs()
	if len(pairs) == 0 {
		return []string{"", "  No conversation turns found."}
	}

	for i, pair := range pairs {
		prompt := pair.User.TextContent()
		title := titles.GenerateTurnTitle(prompt, i+1)
		lines = append(lines, previewTurnStyle.Render(fmt.Sprintf(" %d. %s", i+1, title)))

		excerpt := truncate.UserPrompt(strings.ReplaceAll(prompt, "\n", " "), cfg)
		for _, wl := range wrapText(excerpt, maxWidth) {
			lines = append(lines, "    "+dimStyle.Render(wl))
		}
		lines = append(lines, "")
	}

	return lines
}

func (m Model) previewVisibleRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) previewScroll(n int) {
	m.preview.offset += n
	maxOffset := len(m.preview.lines) - m.previewVisibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.preview.offset > maxOffset {
		m.preview.offset = maxOffset
	}
	if m.preview.offset < 0 {
		m.preview.offset = 0
	}
}

// wrapText splits text into lines that fit within maxWidth.
func wrapText(text string, maxWidth int) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			result = append(result, "")
			continue
		}
		runes := []rune(line)
		for len(runes) > maxWidth {
			result = append(result, string(runes[:maxWidth]))
			runes = runes[maxWidth:]
		}
		result = append(result, string(runes))
	}
	return result
}
