package scanner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bjpl/session-slides/model"
)

// wireEntry mirrors one line of a session JSONL file.
type wireEntry struct {
	Type       string `json:"type"`
	UUID       string `json:"uuid"`
	ParentUUID string `json:"parentUuid"`
	SessionID  string `json:"sessionId"`
	CWD        string `json:"cwd"`
	GitBranch  string `json:"gitBranch"`
	Timestamp  string `json:"timestamp"`
	Version    string `json:"version"`
	Subtype    string `json:"subtype"`
	Message    struct {
		Role    string          `json:"role"`
		Model   string          `json:"model"`
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

// wireBlock mirrors one content block inside a message.
type wireBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	Thinking  string          `json:"thinking"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     map[string]any  `json:"input"`
	ToolUseID string          `json:"tool_use_id"`
	IsError   bool            `json:"is_error"`
	Content   json.RawMessage `json:"content"`
}

// ParseSession reads a session JSONL file into a structured Session.
// Malformed lines are counted and skipped, never fatal.
func ParseSession(path string) (*model.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	session := &model.Session{
		ID:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FilePath: path,
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 256*1024), 10*1024*1024) // tool outputs can be huge

	// tool uses waiting for their tool_result line
	pending := make(map[string]*model.ToolUse)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var entry wireEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			session.SkippedLines++
			continue
		}

		if session.Version == "" && entry.Version != "" {
			session.Version = entry.Version
		}
		if session.ProjectPath == "" && entry.CWD != "" {
			session.ProjectPath = entry.CWD
		}

		turn := turnFromEntry(&entry)
		if turn == nil {
			continue
		}

		if session.StartTime.IsZero() {
			session.StartTime = turn.Timestamp
		}
		session.EndTime = turn.Timestamp

		switch turn.Role {
		case "assistant":
			for _, u := range turn.ToolUses() {
				pending[u.ID] = u
			}
		case "user":
			for _, b := range turn.Blocks {
				if b.Type != "tool_result" {
					continue
				}
				if u, ok := pending[b.ToolUseID]; ok {
					u.Result = b.Text
					u.IsError = b.IsError
				}
			}
		}

		session.Turns = append(session.Turns, turn)
	}

	if err := sc.Err(); err != nil {
		// treat an oversized or unreadable tail as a partial parse
		session.SkippedLines++
	}

	if session.ProjectPath == "" {
		session.ProjectPath = DecodePath(filepath.Base(filepath.Dir(path)))
	}

	return session, nil
}

func turnFromEntry(entry *wireEntry) *model.Turn {
	switch entry.Type {
	case "user", "assistant", "system":
	default:
		// file-history-snapshot, progress, summary and friends
		return nil
	}

	turn := &model.Turn{
		Role:       entry.Type,
		UUID:       entry.UUID,
		ParentUUID: entry.ParentUUID,
		SessionID:  entry.SessionID,
		Timestamp:  parseTimestamp(entry.Timestamp),
		Model:      entry.Message.Model,
		CWD:        entry.CWD,
		GitBranch:  entry.GitBranch,
		Subtype:    entry.Subtype,
	}

	if entry.Type == "system" {
		return turn
	}

	// content is either a plain string or an array of blocks
	var text string
	if err := json.Unmarshal(entry.Message.Content, &text); err == nil {
		turn.Text = text
		return turn
	}

	var blocks []wireBlock
	if err := json.Unmarshal(entry.Message.Content, &blocks); err != nil {
		return turn
	}
	for i := range blocks {
		if b := blockFromWire(&blocks[i]); b != nil {
			turn.Blocks = append(turn.Blocks, *b)
		}
	}
	return turn
}

func blockFromWire(b *wireBlock) *model.ContentBlock {
	switch b.Type {
	case "text":
		return &model.ContentBlock{Type: "text", Text: b.Text}
	case "thinking":
		return &model.ContentBlock{Type: "thinking", Text: b.Thinking}
	case "tool_use":
		return &model.ContentBlock{
			Type: "tool_use",
			ToolUse: &model.ToolUse{
				ID:    b.ID,
				Name:  b.Name,
				Input: b.Input,
			},
		}
	case "tool_result":
		return &model.ContentBlock{
			Type:      "tool_result",
			Text:      toolResultText(b.Content),
			ToolUseID: b.ToolUseID,
			IsError:   b.IsError,
		}
	default:
		return &model.ContentBlock{Type: b.Type}
	}
}

// toolResultText flattens a tool_result payload, which may be a plain
// string or a list of text blocks.
func toolResultText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	var parts []string
	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	return time.Now()
}
