// Package tui provides the interactive session picker shown by --pick.
// It lists the project's session files newest first, supports text search,
// and can preview a session's turn titles before committing to it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bjpl/session-slides/scanner"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modePreview
)

// Model is the bubbletea model for the picker.
type Model struct {
	entries  []scanner.SessionEntry
	filtered []scanner.SessionEntry
	cursor   int
	offset   int
	width    int
	height   int
	mode     mode

	searchInput textinput.Model

	preview previewState

	selected string
	quitting bool
}

// NewModel builds a picker over the given entries, assumed newest first.
func NewModel(entries []scanner.SessionEntry) Model {
	si := textinput.New()
	si.Placeholder = "search..."
	si.CharLimit = 100

	m := Model{
		entries:     entries,
		searchInput: si,
		width:       120,
		height:      30,
	}
	m.applyFilter()
	return m
}

// Pick runs the picker and returns the chosen session file path, or ""
// when the user quit without choosing.
func Pick(entries []scanner.SessionEntry) (string, error) {
	p := tea.NewProgram(NewModel(entries), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

// Selected returns the chosen session file path.
func (m Model) Selected() string {
	return m.selected
}

func (m *Model) applyFilter() {
	m.filtered = nil
	search := strings.ToLower(m.searchInput.Value())

	for _, e := range m.entries {
		if search != "" {
			haystack := strings.ToLower(e.ID + " " + e.Modified.Format("2006-01-02 15:04"))
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		m.filtered = append(m.filtered, e)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case previewLoadedMsg:
		return m.updatePreviewLoaded(msg), nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modePreview:
			return m.updatePreview(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)
		m.clampOffset()

	case "pgup":
		m.cursor -= m.visibleRows()
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampOffset()

	case "pgdown":
		m.cursor += m.visibleRows()
		if m.cursor >= len(m.filtered) {
			m.cursor = len(m.filtered) - 1
		}
		m.clampOffset()

	case "enter":
		if len(m.filtered) > 0 {
			m.selected = m.filtered[m.cursor].Path
			m.quitting = true
			return m, tea.Quit
		}

	case "tab", "p":
		if len(m.filtered) > 0 {
			return m.enterPreview()
		}

	case "/":
		m.searchInput.Focus()
		m.mode = modeSearch
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modePreview {
		return m.viewPreview()
	}

	var b strings.Builder

	title := titleStyle.Render("Session Slides")
	info := dimStyle.Render(fmt.Sprintf("  %d sessions", len(m.filtered)))
	b.WriteString(title + info + "\n")

	b.WriteString(m.renderHeader() + "\n")

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.filtered[i], i == m.cursor) + "\n")
	}
	for i := end - m.offset; i < visible; i++ {
		b.WriteString("\n")
	}

	if m.mode == modeSearch {
		b.WriteString(statusBarStyle.Render("Search: ") + m.searchInput.View())
	} else {
		b.WriteString(helpStyle.Render("  Enter: select  Tab: preview  /: search  q: quit"))
	}

	return b.String()
}

func (m Model) renderHeader() string {
	w := m.colWidths()
	cols := []string{
		pad("Session ID", w.id),
		pad("Modified", w.time),
		pad("Size", w.size),
	}
	return headerStyle.Render(strings.Join(cols, " "))
}

func (m Model) renderRow(e scanner.SessionEntry, selected bool) string {
	w := m.colWidths()
	cols := []string{
		pad(e.ShortID(), w.id),
		pad(e.Modified.Format("01-02 15:04"), w.time),
		pad(humanSize(e.Size), w.size),
	}
	row := strings.Join(cols, " ")
	if selected {
		row = selectedStyle.Render(row)
		row = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, row)
	}
	return row
}

type colWidths struct {
	id   int
	time int
	size int
}

func (m Model) colWidths() colWidths {
	return colWidths{id: 12, time: 12, size: 9}
}

func (m Model) visibleRows() int {
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func humanSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1fM", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1fK", float64(bytes)/(1<<10))
	}
	return fmt.Sprintf("%dB", bytes)
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
