// Package titles derives short, human-readable slide titles from raw user
// prompts. The extraction is purely rule based: a verb→gerund table, prefix
// stripping, technical-noise recovery and a priority chain of subject
// extractors. Every entry point is total — unusable input falls back to a
// numbered title, never an error.
//
// Examples:
//
//	"set up continuous integration"             -> "Setting Up Continuous Integration"
//	"Update 'config.json' with new settings"    -> "Updating config.json"
//	"review src/auth/login.py"                  -> "Reviewing src/auth/login.py"
//	"" or unparseable                           -> "Turn 5"
package titles

import (
	"fmt"
	"strings"
)

// subjectExtractors run in priority order against the text remaining after
// verb removal. Quoted strings are tried separately first, against the
// whole cleaned prompt.
var subjectExtractors = []func(string) string{
	extractFilePath,
	extractFeaturePhrase,
	extractMeaningfulNouns,
}

// GenerateTurnTitle derives a descriptive title from a user prompt,
// falling back to "Turn {n}" when nothing meaningful can be extracted.
func GenerateTurnTitle(prompt string, turnNumber int) string {
	fallback := fmt.Sprintf("Turn %d", turnNumber)

	if strings.TrimSpace(prompt) == "" {
		return fallback
	}

	cleaned := cleanPrompt(prompt)
	if cleaned == "" {
		return fallback
	}

	gerund, remaining := findActionVerb(cleaned)

	// explicit quoting beats everything else
	subject := extractQuotedString(cleaned)
	if subject == "" {
		target := cleaned
		if gerund != "" {
			target = remaining
		}
		for _, extract := range subjectExtractors {
			if subject = extract(target); subject != "" {
				break
			}
		}
	}

	switch {
	case gerund != "" && subject != "":
		return gerund + " " + TitleCase(subject)
	case gerund != "":
		if len(remaining) > 2 {
			return gerund + " " + TitleCase(firstChars(remaining, 50))
		}
		return gerund
	case subject != "":
		return TitleCase(subject)
	}

	return fallback
}

// GenerateContinuedTitle appends " (continued)" to a base title. It is
// idempotent; an empty base yields just "(continued)".
func GenerateContinuedTitle(base string) string {
	if base == "" {
		return "(continued)"
	}
	if strings.HasSuffix(base, "(continued)") {
		return base
	}
	return base + " (continued)"
}

// cleanPrompt trims prefixes and, for prompts opening with technical
// noise, tries to recover the actual request. When nothing recovers, the
// noisy text flows through unchanged and later stages degrade to the
// numbered fallback.
func cleanPrompt(prompt string) string {
	cleaned := strings.TrimSpace(prompt)

	if isTechnicalNoise(cleaned) {
		if sentence, ok := findMeaningfulSentence(cleaned); ok {
			cleaned = sentence
		} else {
			for _, re := range requestPatterns {
				if loc := re.FindStringIndex(cleaned); loc != nil {
					cleaned = strings.TrimSpace(cleaned[loc[0]:loc[1]])
					break
				}
			}
		}
	}

	for _, re := range commonPrefixes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	return strings.Trim(cleaned, " \t\n\r.,;:!?-")
}

func isTechnicalNoise(text string) bool {
	for _, re := range noisePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// findMeaningfulSentence scans a noisy prompt for the first sentence that
// reads like a user request.
func findMeaningfulSentence(text string) (string, bool) {
	for _, sentence := range splitNoiseSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 5 {
			continue
		}
		if isTechnicalNoise(sentence) {
			continue
		}
		if strings.HasPrefix(sentence, "/") || strings.HasPrefix(sentence, "http") {
			continue
		}

		lower := strings.ToLower(sentence)
		for verb := range actionVerbs {
			if strings.Contains(lower, verb) {
				return sentence, true
			}
		}
		for _, phrase := range requestIndicators {
			if strings.Contains(lower, phrase) {
				return sentence, true
			}
		}
	}
	return "", false
}

// splitNoiseSentences breaks text on sentence punctuation followed by
// whitespace, and on newline runs.
func splitNoiseSentences(text string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\n':
			parts = append(parts, text[start:i])
			for i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		case (c == ' ' || c == '\t' || c == '\r') && i > 0 && strings.IndexByte(".!?", text[i-1]) >= 0:
			parts = append(parts, text[start:i])
			for i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				i++
			}
			start = i + 1
		}
	}
	if start <= len(text) {
		parts = append(parts, text[start:])
	}
	return parts
}

// findActionVerb matches the leading verb of the cleaned prompt against
// the gerund table, trying two-word phrases before single words so that
// "set up" is never split. Returns the gerund (or "") and the text left
// after the verb.
func findActionVerb(text string) (gerund, remaining string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", text
	}

	if len(words) >= 2 {
		twoWord := strings.ToLower(words[0]) + " " + strings.ToLower(words[1])
		if g, ok := actionVerbs[twoWord]; ok {
			return g, strings.Join(words[2:], " ")
		}
	}

	if g, ok := actionVerbs[strings.ToLower(words[0])]; ok {
		return g, strings.Join(words[1:], " ")
	}

	return "", text
}

func extractQuotedString(text string) string {
	if m := quotedStringRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractFilePath(text string) string {
	if m := filePathRe.FindStringSubmatch(text); m != nil {
		path := strings.TrimSpace(m[1])
		if strings.ContainsAny(path, "/.") {
			return path
		}
	}
	return ""
}

func extractFeaturePhrase(text string) string {
	for _, re := range featurePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		phrase := strings.TrimSpace(m[1])
		for _, w := range strings.Fields(strings.ToLower(phrase)) {
			if !stopWords[w] {
				return phrase
			}
		}
	}
	return ""
}

// extractMeaningfulNouns greedily collects up to four content words,
// skipping leading articles and stop words, and stopping at a preposition
// or conjunction once something has been collected.
func extractMeaningfulNouns(text string) string {
	const maxWords = 4

	text = leadingArticleRe.ReplaceAllString(text, "")

	var collected []string
	for _, word := range strings.Fields(text) {
		clean := wordCleanRe.ReplaceAllString(word, "")
		if clean == "" {
			continue
		}

		lower := strings.ToLower(clean)
		if stopWords[lower] && len(collected) == 0 {
			continue
		}
		if nounBreakWords[lower] {
			if len(collected) > 0 {
				break
			}
			continue
		}

		collected = append(collected, clean)
		if len(collected) >= maxWords {
			break
		}
	}

	return strings.Join(collected, " ")
}

// TitleCase capitalizes words while preserving paths, filenames, acronyms
// and mixed-case identifiers, and keeping small words lowercase except at
// the start.
func TitleCase(text string) string {
	if looksLikePath(text) {
		return text
	}

	words := strings.Fields(text)
	for i, word := range words {
		lower := strings.ToLower(word)
		switch {
		case looksLikePath(word) || looksLikeFilename(word):
			// keep verbatim
		case len(word) > 1 && word == strings.ToUpper(word) && word != lower:
			// acronym
		case hasUpperAfterFirst(word):
			// camelCase / PascalCase identifier
		case i > 0 && smallWords[lower]:
			words[i] = lower
		default:
			words[i] = capitalize(word)
		}
	}
	return strings.Join(words, " ")
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") ||
		(strings.HasPrefix(s, ".") && strings.Contains(s[1:], "."))
}

// looksLikeFilename reports an interior dot with content on both sides,
// so quoted names like "config.json" stay verbatim in titles.
func looksLikeFilename(s string) bool {
	i := strings.IndexByte(s, '.')
	return i > 0 && i < len(s)-1
}

func hasUpperAfterFirst(word string) bool {
	for i, r := range word {
		if i > 0 && r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func capitalize(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return word
	}
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// firstChars returns at most n characters, rune-safe.
func firstChars(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
