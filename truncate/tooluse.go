package truncate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var urlDomainRe = regexp.MustCompile(`^https?://([^/]+)`)

// tool name families, matched after lowercasing
var (
	readTools      = set("read", "read_file", "readfile", "cat")
	writeTools     = set("write", "write_file", "writefile", "create")
	editTools      = set("edit", "edit_file", "editfile", "modify", "patch")
	shellTools     = set("bash", "shell", "terminal", "exec", "execute", "run")
	grepTools      = set("grep", "search", "find", "ripgrep", "rg")
	globTools      = set("glob", "find_files", "ls", "list")
	fetchTools     = set("webfetch", "web_fetch", "fetch", "curl", "wget")
	webSearchTools = set("websearch", "web_search", "search_web")
	taskTools      = set("task", "agent", "spawn")
)

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// FormatToolUse renders one tool invocation as a short human-readable line,
// picking out the parameter that matters most for each tool family.
func FormatToolUse(toolName string, parameters map[string]any) string {
	lower := strings.ToLower(toolName)

	switch {
	case member(readTools, lower):
		if name := baseName(stringParam(parameters, "file_path", "path", "file")); name != "" {
			return "Reading: " + name
		}
		return "Reading file"

	case member(writeTools, lower):
		if name := baseName(stringParam(parameters, "file_path", "path", "file")); name != "" {
			return "Writing: " + name
		}
		return "Writing file"

	case member(editTools, lower):
		if name := baseName(stringParam(parameters, "file_path", "path", "file")); name != "" {
			return "Editing: " + name
		}
		return "Editing file"

	case member(shellTools, lower):
		if cmd := stringParam(parameters, "command", "cmd"); cmd != "" {
			return "Running: " + clip(cmd, 50, 47)
		}
		return "Running command"

	case member(grepTools, lower):
		if pattern := stringParam(parameters, "pattern", "query"); pattern != "" {
			return "Searching: " + clip(pattern, 30, 27)
		}
		return "Searching"

	case member(globTools, lower):
		if pattern := stringParam(parameters, "pattern", "path"); pattern != "" {
			return "Finding: " + pattern
		}
		return "Finding files"

	case member(fetchTools, lower):
		if url := stringParam(parameters, "url"); url != "" {
			if utf8.RuneCountInString(url) > 40 {
				if m := urlDomainRe.FindStringSubmatch(url); m != nil {
					url = m[1]
				}
			}
			return "Fetching: " + url
		}
		return "Fetching URL"

	case member(webSearchTools, lower):
		if query := stringParam(parameters, "query"); query != "" {
			return "Searching web: " + clip(query, 40, 37)
		}
		return "Searching web"

	case member(taskTools, lower):
		if desc := stringParam(parameters, "description", "prompt"); desc != "" {
			return "Task: " + clip(desc, 40, 37)
		}
		return "Running task"

	case strings.HasPrefix(lower, "mcp__"):
		parts := strings.Split(lower, "__")
		if len(parts) >= 3 {
			return "MCP: " + strings.ReplaceAll(parts[len(parts)-1], "_", " ")
		}
		return "MCP: " + toolName
	}

	readable := strings.ReplaceAll(toolName, "_", " ")
	readable = strings.ReplaceAll(readable, "-", " ")
	return titleWords(readable)
}

// clip keeps s whole when it has at most limit runes, otherwise keeps the
// first keep runes and appends "...". Cuts never split a rune.
func clip(s string, limit, keep int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:keep]) + "..."
}

func member(m map[string]struct{}, key string) bool {
	_, ok := m[key]
	return ok
}

// stringParam returns the first non-empty string value among the keys.
func stringParam(params map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := params[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// baseName returns the final path segment, or the input unchanged when it
// has no separator.
func baseName(path string) string {
	if path == "" {
		return ""
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// titleWords capitalizes the first letter of every word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}
