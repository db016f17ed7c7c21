package model

import "time"

// Session is a fully parsed Claude Code session log.
type Session struct {
	ID          string
	ProjectPath string // from the cwd field, not the encoded directory name
	FilePath    string
	Version     string
	StartTime   time.Time
	EndTime     time.Time
	Turns       []*Turn

	// SkippedLines counts malformed JSONL lines the parser stepped over.
	SkippedLines int
}

// Pair groups one user request with the assistant turns that answered it.
type Pair struct {
	User      *Turn
	Responses []*Turn
}

// Duration returns the wall-clock span of the session.
func (s *Session) Duration() time.Duration {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// UserTurns returns user request turns, excluding tool results.
func (s *Session) UserTurns() []*Turn {
	var turns []*Turn
	for _, t := range s.Turns {
		if t.IsUserMessage() {
			turns = append(turns, t)
		}
	}
	return turns
}

// AssistantTurns returns assistant turns only.
func (s *Session) AssistantTurns() []*Turn {
	var turns []*Turn
	for _, t := range s.Turns {
		if t.Role == "assistant" {
			turns = append(turns, t)
		}
	}
	return turns
}

// ConversationPairs walks the turns in order and groups each user message
// with the assistant turns that follow it, up to the next user message.
func (s *Session) ConversationPairs() []Pair {
	var pairs []Pair
	var cur *Pair

	for _, t := range s.Turns {
		switch {
		case t.IsUserMessage():
			if cur != nil {
				pairs = append(pairs, *cur)
			}
			cur = &Pair{User: t}
		case t.Role == "assistant":
			if cur != nil {
				cur.Responses = append(cur.Responses, t)
			}
		}
	}
	if cur != nil {
		pairs = append(pairs, *cur)
	}
	return pairs
}

// ToolCounts tallies tool invocations by tool name across the session.
func (s *Session) ToolCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range s.AssistantTurns() {
		for _, u := range t.ToolUses() {
			counts[u.Name]++
		}
	}
	return counts
}
