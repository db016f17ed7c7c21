// Package truncate compresses prompts, prose, code, terminal output and
// lists into bounded-size summaries for slide display. Every operation is
// pure: the same input and config always produce the same output, nothing
// is escaped or encoded (that belongs to the renderer), and no input can
// make an operation fail.
package truncate

import "strings"

// Config holds the truncation thresholds. It is a plain value: copy it,
// tweak a field, pass it along. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	PromptMaxChars int

	ProseMaxSentences int

	CodeShortThreshold int
	CodeLongThreshold  int
	CodeHeadLines      int
	CodeTailLines      int

	TerminalMaxLines      int
	TerminalIncludeErrors bool

	ListMaxItems int

	// CommentStyles maps a lowercased language identifier to its comment
	// prefix. Block-style prefixes ("<!--", "/*") imply a paired suffix.
	CommentStyles map[string]string
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		PromptMaxChars:        300,
		ProseMaxSentences:     3,
		CodeShortThreshold:    15,
		CodeLongThreshold:     40,
		CodeHeadLines:         5,
		CodeTailLines:         3,
		TerminalMaxLines:      3,
		TerminalIncludeErrors: true,
		ListMaxItems:          5,
		CommentStyles: map[string]string{
			"python": "#", "py": "#",
			"ruby": "#", "rb": "#",
			"bash": "#", "sh": "#", "shell": "#",
			"yaml": "#", "yml": "#",
			"javascript": "//", "js": "//",
			"typescript": "//", "ts": "//", "tsx": "//", "jsx": "//",
			"java": "//",
			"c":    "//", "cpp": "//", "c++": "//",
			"csharp": "//", "cs": "//",
			"go":   "//",
			"rust": "//", "rs": "//",
			"swift": "//", "kotlin": "//", "scala": "//", "php": "//",
			"html": "<!--", "xml": "<!--", "svg": "<!--",
			"css":  "/*",
			"scss": "//", "sass": "//",
			"sql": "--", "lua": "--",
			"haskell": "--", "hs": "--",
		},
	}
}

// CommentStyle returns the comment prefix and suffix for a language.
// Unknown and empty languages default to a line comment "//".
func (c Config) CommentStyle(language string) (prefix, suffix string) {
	if language == "" {
		return "//", ""
	}
	lang := strings.ToLower(strings.TrimSpace(language))
	p, ok := c.CommentStyles[lang]
	if !ok {
		p = "//"
	}
	switch p {
	case "<!--":
		return "<!--", " -->"
	case "/*":
		return "/*", " */"
	default:
		return p, ""
	}
}
