package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bjpl/session-slides/truncate"
)

// Rendering limits for long content inside slides. These are looser than
// the text truncation defaults because code blocks here stay expandable in
// the browser instead of being cut for good.
const (
	codeBlockMaxLines  = 25
	codeBlockHeadLines = 8
	codeBlockTailLines = 5
	proseMaxChars      = 2000
	terminalMaxLines   = 15
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```(\\w*)\\n?(.*?)```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	paragraphRe  = regexp.MustCompile(`\n\n+`)
)

func escape(s string) string {
	return html.EscapeString(s)
}

// byteLimit returns the byte index just after the first n runes of s, or
// len(s) when s has no more than n runes.
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

// formatCodeBlock renders code inside a dark block with an optional
// language/filename header. Blocks longer than maxLines keep their head
// and tail visible and fold the middle behind a click-to-expand toggle.
func formatCodeBlock(code, language, filename string, maxLines int) string {
	lines := strings.Split(code, "\n")
	total := len(lines)
	truncated := maxLines > 0 && total > maxLines

	var header string
	if language != "" || filename != "" || truncated {
		var b strings.Builder
		b.WriteString(`<div class="code-block-header">`)
		if language != "" {
			fmt.Fprintf(&b, `<span class="code-language">%s</span>`, escape(language))
		}
		if filename != "" {
			fmt.Fprintf(&b, `<span class="code-filename">%s</span>`, escape(filename))
		}
		if truncated {
			fmt.Fprintf(&b, `<span class="code-lines">(%d lines)</span>`, total)
		}
		b.WriteString(`</div>`)
		header = b.String()
	}

	if truncated {
		head := strings.Join(lines[:codeBlockHeadLines], "\n")
		middle := strings.Join(lines[codeBlockHeadLines:total-codeBlockTailLines], "\n")
		tail := strings.Join(lines[total-codeBlockTailLines:], "\n")
		omitted := total - codeBlockHeadLines - codeBlockTailLines

		return fmt.Sprintf(`<div class="code-block collapsible">%s<pre><code>%s</code></pre><div class="collapsible-toggle" onclick="toggleCollapsible(this)"><span class="toggle-label">[... %d more lines ...]</span><span class="toggle-icon">&#9660;</span></div><div class="collapsible-content"><pre><code>%s</code></pre></div><pre><code>%s</code></pre></div>`,
			header, escape(head), omitted, escape(middle), escape(tail))
	}

	return fmt.Sprintf(`<div class="code-block">%s<pre><code>%s</code></pre></div>`, header, escape(code))
}

func isWarningLine(line string) bool {
	for _, w := range []string{"warning", "Warning", "WARNING", "WARN", "warn"} {
		if strings.Contains(line, w) {
			return true
		}
	}
	return false
}

func isSuccessLine(line string) bool {
	for _, w := range []string{"success", "Success", "SUCCESS", "passed", "Passed", "PASSED", "ok", "OK", "done", "Done", "DONE"} {
		if strings.Contains(line, w) {
			return true
		}
	}
	return false
}

func terminalLineClass(line string) string {
	switch {
	case truncate.IsErrorLine(line):
		return "terminal-line error"
	case isWarningLine(line):
		return "terminal-line warning"
	case isSuccessLine(line):
		return "terminal-line success"
	}
	return "terminal-line"
}

// formatTerminalOutput renders command output line by line with error,
// warning and success coloring. When truncating it keeps the first
// maxLines but still appends every error line from the hidden remainder.
func formatTerminalOutput(output string, maxLines int) string {
	if output == "" {
		return ""
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	total := len(lines)
	truncated := maxLines > 0 && total > maxLines

	var b strings.Builder
	b.WriteString(`<div class="terminal-output">`)

	if truncated {
		for _, line := range lines[:maxLines] {
			fmt.Fprintf(&b, "\n<div class=%q>%s</div>", terminalLineClass(line), escape(line))
		}
		fmt.Fprintf(&b, "\n<div class=\"terminal-line omitted\">... (%d more lines)</div>", total-maxLines)
		for _, line := range lines[maxLines:] {
			if truncate.IsErrorLine(line) {
				fmt.Fprintf(&b, "\n<div class=\"terminal-line error\">%s</div>", escape(line))
			}
		}
	} else {
		for _, line := range lines {
			fmt.Fprintf(&b, "\n<div class=%q>%s</div>", terminalLineClass(line), escape(line))
		}
	}

	b.WriteString("</div>")
	return b.String()
}

// formatResponseContent converts markdown-ish assistant text into HTML.
// Fenced and inline code are pulled out behind NUL-delimited placeholders
// before escaping so only genuine prose is escaped, then restored after
// paragraph conversion. Everything user controlled passes through escape.
func formatResponseContent(content string) string {
	if content == "" {
		return ""
	}

	// the cap counts runes; limit is its byte position, so every cut
	// below lands on a rune boundary
	if limit := byteLimit(content, proseMaxChars); limit < len(content) {
		breakPoint := strings.LastIndex(content[:limit], "\n\n")
		if breakPoint == -1 {
			breakPoint = strings.LastIndex(content[:limit], ". ")
		}
		if breakPoint == -1 {
			breakPoint = limit
		}
		remaining := utf8.RuneCountInString(content[breakPoint:])
		content = content[:breakPoint] + fmt.Sprintf("\n\n[... %d more characters truncated ...]", remaining)
	}

	var codeBlocks []string
	result := fencedCodeRe.ReplaceAllStringFunc(content, func(match string) string {
		m := fencedCodeRe.FindStringSubmatch(match)
		placeholder := fmt.Sprintf("\x00CODE_BLOCK_%d\x00", len(codeBlocks))
		codeBlocks = append(codeBlocks, formatCodeBlock(strings.TrimRight(m[2], " \t\n"), m[1], "", codeBlockMaxLines))
		return placeholder
	})

	var inlineCodes []string
	result = inlineCodeRe.ReplaceAllStringFunc(result, func(match string) string {
		m := inlineCodeRe.FindStringSubmatch(match)
		placeholder := fmt.Sprintf("\x00INLINE_CODE_%d\x00", len(inlineCodes))
		inlineCodes = append(inlineCodes, fmt.Sprintf(`<code class="inline-code">%s</code>`, escape(m[1])))
		return placeholder
	})

	result = escape(result)

	var parts []string
	for _, p := range paragraphRe.Split(strings.TrimSpace(result), -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// a paragraph that is exactly one code placeholder stays block level
		if strings.HasPrefix(p, "\x00CODE_BLOCK_") && strings.HasSuffix(p, "\x00") && strings.Count(p, "\x00") == 2 {
			parts = append(parts, p)
			continue
		}
		parts = append(parts, "<p>"+strings.ReplaceAll(p, "\n", "<br>\n")+"</p>")
	}
	result = strings.Join(parts, "\n")

	for i, block := range codeBlocks {
		result = strings.Replace(result, fmt.Sprintf("\x00CODE_BLOCK_%d\x00", i), block, 1)
	}
	for i, code := range inlineCodes {
		result = strings.Replace(result, fmt.Sprintf("\x00INLINE_CODE_%d\x00", i), code, 1)
	}

	return result
}
