// Package render turns a parsed session into a self-contained HTML slide
// deck: a title slide, one slide per conversation pair, and a closing
// summary slide. The output has no external references at all.
package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bjpl/session-slides/model"
	"github.com/bjpl/session-slides/truncate"
)

// Options controls deck generation.
type Options struct {
	// Title is the deck title shown on the first slide and in <title>.
	Title string

	// TurnTitles holds one title per conversation pair, in order. Missing
	// entries fall back to a bare turn number on the slide header.
	TurnTitles []string

	// Truncation bounds prompt and tool text on the slides.
	Truncation truncate.Config
}

// FileChange records a file a conversation pair touched.
type FileChange struct {
	Path   string
	Action string // "created", "modified", "deleted"
}

// GenerateHTML renders the whole deck.
func GenerateHTML(session *model.Session, opts Options) (string, error) {
	title := opts.Title
	if title == "" {
		title = "Session Slides"
	}

	pairs := session.ConversationPairs()

	var slides []string
	slides = append(slides, titleSlide(session, title, len(pairs)))
	for i, pair := range pairs {
		var turnTitle string
		if i < len(opts.TurnTitles) {
			turnTitle = opts.TurnTitles[i]
		}
		slides = append(slides, turnSlide(pair, turnTitle, i+1, len(pairs), opts.Truncation))
	}
	if len(pairs) > 0 {
		slides = append(slides, summarySlide(session))
	}

	var out strings.Builder
	err := deckTmpl.Execute(&out, deckData{
		Title:       escape(title),
		Slides:      strings.Join(slides, "\n"),
		TotalSlides: len(slides),
	})
	if err != nil {
		return "", fmt.Errorf("rendering deck: %w", err)
	}
	return out.String(), nil
}

func titleSlide(session *model.Session, title string, turnCount int) string {
	date, clock := formatDatetime(session.StartTime)

	subtitle := "Claude Code Session"
	if date != "" && clock != "" {
		subtitle = date + " at " + clock
	} else if date != "" {
		subtitle = date
	}

	var items []string
	addMeta := func(label, value, extraClass string) {
		class := "meta-value"
		if extraClass != "" {
			class += " " + extraClass
		}
		items = append(items, fmt.Sprintf(
			`<div class="meta-item"><span class="meta-label">%s</span><span class="%s">%s</span></div>`,
			label, class, escape(value)))
	}

	if session.ID != "" {
		id := session.ID
		if len(id) > 8 {
			id = id[:8]
		}
		addMeta("Session", id, "")
	}
	if !session.StartTime.IsZero() {
		addMeta("Date", session.StartTime.Local().Format("Jan 2, 2006"), "")
	}
	if name := projectName(session.ProjectPath); name != "" {
		addMeta("Project", name, "small")
	}
	addMeta("Turns", fmt.Sprintf("%d", turnCount), "")
	if d := formatDuration(session.Duration()); d != "" {
		addMeta("Duration", d, "")
	}
	if n := len(session.ToolCounts()); n > 0 {
		addMeta("Tools", fmt.Sprintf("%d", n), "")
	}

	metadata := ""
	if len(items) > 0 {
		metadata = fmt.Sprintf(`<div class="session-metadata">%s</div>`, strings.Join(items, "\n"))
	}

	return fmt.Sprintf(`<div class="slide slide-title active">
<h1>%s</h1>
<p class="subtitle">%s</p>
%s
</div>`, escape(title), escape(subtitle), metadata)
}

func turnSlide(pair model.Pair, title string, index, total int, cfg truncate.Config) string {
	header := fmt.Sprintf("Turn %d", index)
	if title != "" {
		header = fmt.Sprintf("Turn %d: %s", index, escape(title))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="slide">
<div class="slide-content">
<div class="slide-header">
<span class="turn-label">%s</span>
<span class="slide-number">%d of %d</span>
</div>`, header, index, total)

	if prompt := pair.User.TextContent(); prompt != "" {
		fmt.Fprintf(&b, `
<div class="user-prompt">
<div class="user-prompt-label">User Prompt</div>
<div class="user-prompt-text">%s</div>
</div>`, escape(truncate.UserPrompt(prompt, cfg)))
	}

	if badges := toolBadges(pair, cfg); badges != "" {
		fmt.Fprintf(&b, `
<div class="tools-section">
<div class="tools-label">Tools Used</div>
<div class="tool-badges">%s</div>
</div>`, badges)
	}

	if response := responseText(pair); response != "" {
		fmt.Fprintf(&b, `
<div class="response-section">
<div class="response-label">Response</div>
<div class="response-content">
%s
</div>
</div>`, formatResponseContent(response))
	}

	for _, u := range erroredToolUses(pair) {
		if u.Result == "" {
			continue
		}
		b.WriteString("\n" + formatTerminalOutput(u.Result, terminalMaxLines))
	}

	if changes := fileChanges(pair); len(changes) > 0 {
		b.WriteString(`
<div class="files-section">
<div class="tools-label">Files Modified</div>`)
		for _, fc := range changes {
			fmt.Fprintf(&b, `
<div class="file-item">
<span class="file-icon">&#128196;</span>
<span>%s</span>
<span class="file-action %s">%s</span>
</div>`, escape(fc.Path), fc.Action, fc.Action)
		}
		b.WriteString("\n</div>")
	}

	b.WriteString("\n</div>\n</div>")
	return b.String()
}

func summarySlide(session *model.Session) string {
	counts := session.ToolCounts()

	type toolCount struct {
		name  string
		count int
	}
	sorted := make([]toolCount, 0, len(counts))
	for name, count := range counts {
		sorted = append(sorted, toolCount{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	var toolItems strings.Builder
	for i, tc := range sorted {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&toolItems, "<li>%s (%dx)</li>\n", escape(tc.name), tc.count)
	}

	var allFiles []string
	seen := make(map[string]bool)
	for _, pair := range session.ConversationPairs() {
		for _, fc := range fileChanges(pair) {
			if !seen[fc.Path] {
				seen[fc.Path] = true
				allFiles = append(allFiles, fc.Path)
			}
		}
	}

	var fileItems strings.Builder
	for i, path := range allFiles {
		if i >= 10 {
			fmt.Fprintf(&fileItems, "<li>... and %d more</li>\n", len(allFiles)-10)
			break
		}
		fmt.Fprintf(&fileItems, "<li>%s</li>\n", escape(path))
	}

	return fmt.Sprintf(`<div class="slide">
<div class="slide-content">
<div class="slide-header">
<span class="turn-label">Summary</span>
<span class="slide-number">Session Overview</span>
</div>
<div class="summary-grid">
<div class="summary-card">
<h3>Tools Used (%d unique)</h3>
<ul>
%s</ul>
</div>
<div class="summary-card">
<h3>Files Modified (%d total)</h3>
<ul>
%s</ul>
</div>
</div>
</div>
</div>`, len(sorted), toolItems.String(), len(allFiles), fileItems.String())
}

func toolBadges(pair model.Pair, cfg truncate.Config) string {
	var badges []string
	seen := make(map[string]bool)
	for _, t := range pair.Responses {
		for _, u := range t.ToolUses() {
			desc := truncate.FormatToolUse(u.Name, u.Input)
			if seen[desc] {
				continue
			}
			seen[desc] = true
			badges = append(badges, fmt.Sprintf(
				`<span class="tool-badge" title="%s">%s</span>`, escape(desc), escape(u.Name)))
		}
	}
	return strings.Join(badges, "")
}

func responseText(pair model.Pair) string {
	var parts []string
	for _, t := range pair.Responses {
		if text := t.TextContent(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func erroredToolUses(pair model.Pair) []*model.ToolUse {
	var uses []*model.ToolUse
	for _, t := range pair.Responses {
		for _, u := range t.ToolUses() {
			if u.IsError {
				uses = append(uses, u)
			}
		}
	}
	return uses
}

// fileChanges derives touched files from write and edit tool invocations.
func fileChanges(pair model.Pair) []FileChange {
	var changes []FileChange
	seen := make(map[string]bool)
	for _, t := range pair.Responses {
		for _, u := range t.ToolUses() {
			var action string
			switch u.Name {
			case "Write":
				action = "created"
			case "Edit", "MultiEdit", "NotebookEdit":
				action = "modified"
			default:
				continue
			}
			path, _ := u.Input["file_path"].(string)
			if path == "" {
				path, _ = u.Input["notebook_path"].(string)
			}
			if path == "" || seen[path] {
				continue
			}
			seen[path] = true
			changes = append(changes, FileChange{Path: path, Action: action})
		}
	}
	return changes
}

func projectName(path string) string {
	if path == "" {
		return ""
	}
	path = strings.TrimRight(strings.ReplaceAll(path, `\`, "/"), "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// formatDatetime renders a timestamp in the local timezone as a long date
// and a 12-hour clock time. A zero time yields empty strings.
func formatDatetime(t time.Time) (date, clock string) {
	if t.IsZero() {
		return "", ""
	}
	t = t.Local()
	return t.Format("January 2, 2006"), t.Format("3:04 PM")
}

// formatDuration renders spans the way people say them: "42s", "3m 5s",
// "2h 10m". Zero and negative durations yield "".
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total <= 0 {
		return ""
	}
	switch {
	case total < 60:
		return fmt.Sprintf("%ds", total)
	case total < 3600:
		m, s := total/60, total%60
		if s > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	default:
		h, m := total/3600, (total%3600)/60
		if m > 0 {
			return fmt.Sprintf("%dh %dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
}
