package model

import "time"

// ToolUse is a single tool invocation made by the assistant, with its
// matched result once the tool_result block arrives.
type ToolUse struct {
	ID      string
	Name    string
	Input   map[string]any
	Result  string
	IsError bool
}

// ContentBlock is one element of an assistant (or tool-result) message.
type ContentBlock struct {
	Type      string // "text", "tool_use", "thinking", "tool_result"
	Text      string
	ToolUse   *ToolUse
	ToolUseID string // set on tool_result blocks
	IsError   bool
}

// Turn is a single entry in the conversation log.
type Turn struct {
	Role       string // "user", "assistant", "system"
	UUID       string
	ParentUUID string
	SessionID  string
	Timestamp  time.Time

	// Text holds plain string content (typical for user turns).
	// Blocks holds structured content (assistant turns, tool results).
	Text   string
	Blocks []ContentBlock

	Model     string
	CWD       string
	GitBranch string
	Subtype   string // system turns only
}

// TextContent returns the human-readable text of the turn.
func (t *Turn) TextContent() string {
	if len(t.Blocks) == 0 {
		return t.Text
	}
	var out string
	for _, b := range t.Blocks {
		if b.Type == "text" && b.Text != "" {
			if out != "" {
				out += "\n"
			}
			out += b.Text
		}
	}
	return out
}

// ToolUses returns the tool invocations in this turn, in order.
func (t *Turn) ToolUses() []*ToolUse {
	var uses []*ToolUse
	for _, b := range t.Blocks {
		if b.Type == "tool_use" && b.ToolUse != nil {
			uses = append(uses, b.ToolUse)
		}
	}
	return uses
}

// IsUserMessage reports whether this is an actual user request, as opposed
// to a tool result delivered on the user role.
func (t *Turn) IsUserMessage() bool {
	if t.Role != "user" {
		return false
	}
	for _, b := range t.Blocks {
		if b.Type == "tool_result" {
			return false
		}
	}
	return true
}
