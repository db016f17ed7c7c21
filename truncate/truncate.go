package truncate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// sentence terminator followed by whitespace or end of string
	sentenceEndRe  = regexp.MustCompile(`[.!?](\s|$)`)
	sentenceTermRe = regexp.MustCompile(`[.!?]+(\s+|$)`)
)

// FindSentenceBoundary returns the best cut position in text at or before
// maxPos: the last sentence end, else a clause break (comma, semicolon,
// colon followed by a space) within 50 characters, else the last space
// when it is past the midpoint of the budget, else maxPos itself.
func FindSentenceBoundary(text string, maxPos int) int {
	if maxPos >= len(text) {
		return len(text)
	}
	if maxPos < 0 {
		maxPos = 0
	}

	if matches := sentenceEndRe.FindAllStringIndex(text[:maxPos], -1); len(matches) > 0 {
		return matches[len(matches)-1][1]
	}

	lower := maxPos - 50
	if lower < 0 {
		lower = 0
	}
	for pos := maxPos - 1; pos > lower; pos-- {
		if strings.IndexByte(",;:", text[pos]) >= 0 && pos+1 < len(text) && text[pos+1] == ' ' {
			return pos + 1
		}
	}

	if spacePos := strings.LastIndex(text[:maxPos], " "); spacePos > maxPos/2 {
		return spacePos
	}

	return maxPos
}

// UserPrompt caps a user prompt at Config.PromptMaxChars characters,
// cutting at a sentence boundary and appending "...", or ".." when the
// cut already lands on terminal punctuation.
func UserPrompt(prompt string, cfg Config) string {
	prompt = strings.TrimSpace(prompt)

	// the limit counts runes; convert it to a byte position so every
	// cut below stays on a rune boundary
	maxPos := byteLimit(prompt, cfg.PromptMaxChars)
	if maxPos >= len(prompt) {
		return prompt
	}

	breakPos := FindSentenceBoundary(prompt, maxPos)
	if breakPos > maxPos {
		breakPos = maxPos
	}
	if breakPos < 0 {
		breakPos = 0
	}

	truncated := strings.TrimRight(prompt[:breakPos], " \t\n\r")

	if breakPos < len(prompt) {
		if truncated != "" && strings.IndexByte(".!?", truncated[len(truncated)-1]) >= 0 {
			return truncated + ".."
		}
		return truncated + "..."
	}
	return truncated
}

// byteLimit returns the byte index just after the first n runes of s, or
// len(s) when s has no more than n runes. Non-positive n yields 0.
func byteLimit(s string, n int) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

// SplitSentences splits text on runs of sentence terminators followed by
// whitespace or end of string. Abbreviations are not special-cased.
func SplitSentences(text string) []string {
	var sentences []string
	lastEnd := 0
	for _, m := range sentenceTermRe.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[lastEnd:m[1]]); s != "" {
			sentences = append(sentences, s)
		}
		lastEnd = m[1]
	}
	if rest := strings.TrimSpace(text[lastEnd:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// Prose keeps the first Config.ProseMaxSentences sentences.
func Prose(text string, cfg Config) string {
	text = strings.TrimSpace(text)
	sentences := SplitSentences(text)

	if len(sentences) <= cfg.ProseMaxSentences {
		return text
	}

	n := cfg.ProseMaxSentences
	if n < 0 {
		n = 0
	}
	truncated := strings.Join(sentences[:n], " ")

	if truncated != "" && strings.IndexByte(".!?", truncated[len(truncated)-1]) >= 0 {
		return truncated + ".."
	}
	return truncated + "..."
}

// CodeBlock truncates code by line count: short blocks pass through,
// long blocks collapse to a three-line preview plus a summary comment,
// and the medium band keeps head and tail around an omission marker.
func CodeBlock(code, language string, cfg Config) string {
	trimmed := strings.TrimRight(code, " \t\n\r")
	lines := strings.Split(trimmed, "\n")
	lineCount := len(lines)

	if lineCount <= cfg.CodeShortThreshold {
		return trimmed
	}

	prefix, suffix := cfg.CommentStyle(language)

	if lineCount > cfg.CodeLongThreshold {
		lang := language
		if lang == "" {
			lang = "code"
		}
		summary := fmt.Sprintf("%s [%d lines of %s - truncated for brevity]%s", prefix, lineCount, lang, suffix)
		headN := 3
		if headN > lineCount {
			headN = lineCount
		}
		return strings.Join(lines[:headN], "\n") + "\n\n" + summary
	}

	head := cfg.CodeHeadLines
	tail := cfg.CodeTailLines
	if head < 0 {
		head = 0
	}
	if tail < 0 {
		tail = 0
	}

	omitted := lineCount - head - tail
	if omitted <= 0 {
		return trimmed
	}

	marker := fmt.Sprintf("%s ... (%d lines omitted)%s", prefix, omitted, suffix)
	return strings.Join(lines[:head], "\n") + "\n" + marker + "\n" + strings.Join(lines[lineCount-tail:], "\n")
}

var errorIndicators = []string{
	"error", "Error", "ERROR",
	"exception", "Exception", "EXCEPTION",
	"failed", "Failed", "FAILED",
	"fatal", "Fatal", "FATAL",
	"traceback", "Traceback",
	"warning", "Warning", "WARNING",
	"cannot", "Cannot", "CANNOT",
	"unable", "Unable", "UNABLE",
	"denied", "Denied", "DENIED",
	"not found", "Not found", "NOT FOUND",
}

// IsErrorLine reports whether a terminal output line looks like an error.
// Matching is a case-sensitive substring check against a fixed list.
func IsErrorLine(line string) bool {
	for _, ind := range errorIndicators {
		if strings.Contains(line, ind) {
			return true
		}
	}
	return false
}

// TerminalOutput keeps the first Config.TerminalMaxLines lines and, when
// error retention is enabled, every error-looking line from the remainder
// in original order.
func TerminalOutput(output string, cfg Config) string {
	trimmed := strings.TrimRight(output, " \t\n\r")
	lines := strings.Split(trimmed, "\n")

	if len(lines) <= cfg.TerminalMaxLines {
		return trimmed
	}

	keep := cfg.TerminalMaxLines
	if keep < 0 {
		keep = 0
	}

	result := make([]string, 0, keep+2)
	result = append(result, lines[:keep]...)

	remaining := lines[keep:]
	var errorLines []string
	if cfg.TerminalIncludeErrors {
		for _, line := range remaining {
			if IsErrorLine(line) {
				errorLines = append(errorLines, line)
			}
		}
	}

	if len(errorLines) > 0 {
		omitted := len(remaining) - len(errorLines)
		result = append(result, fmt.Sprintf("... (%d lines omitted)", omitted))
		result = append(result, errorLines...)
	} else {
		result = append(result, fmt.Sprintf("... (%d more lines)", len(remaining)))
	}

	return strings.Join(result, "\n")
}

// List renders items one per line with the given prefix, collapsing
// anything past Config.ListMaxItems into a "...and N more" line.
func List(items []string, cfg Config, prefix string) string {
	if len(items) == 0 {
		return ""
	}

	if len(items) <= cfg.ListMaxItems {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = prefix + item
		}
		return strings.Join(out, "\n")
	}

	n := cfg.ListMaxItems
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, n+1)
	for _, item := range items[:n] {
		out = append(out, prefix+item)
	}
	shown := strings.Join(out, "\n")
	return shown + fmt.Sprintf("\n%s...and %d more", prefix, len(items)-n)
}
