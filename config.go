package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bjpl/session-slides/truncate"
)

// appConfig is everything the CLI reads from a config file. All fields
// have working defaults; the file only overrides.
type appConfig struct {
	Truncation  truncate.Config
	OllamaHost  string
	OllamaModel string
}

// loadConfig returns defaults when path is empty, otherwise overlays the
// given YAML file on top of them.
func loadConfig(path string) (appConfig, error) {
	def := truncate.DefaultConfig()

	v := viper.New()
	v.SetDefault("truncation.prompt_max_chars", def.PromptMaxChars)
	v.SetDefault("truncation.prose_max_sentences", def.ProseMaxSentences)
	v.SetDefault("truncation.code_short_threshold", def.CodeShortThreshold)
	v.SetDefault("truncation.code_long_threshold", def.CodeLongThreshold)
	v.SetDefault("truncation.code_head_lines", def.CodeHeadLines)
	v.SetDefault("truncation.code_tail_lines", def.CodeTailLines)
	v.SetDefault("truncation.terminal_max_lines", def.TerminalMaxLines)
	v.SetDefault("truncation.terminal_include_errors", def.TerminalIncludeErrors)
	v.SetDefault("truncation.list_max_items", def.ListMaxItems)
	v.SetDefault("ollama.host", "")
	v.SetDefault("ollama.model", "llama3.2")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return appConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := appConfig{Truncation: def}
	cfg.Truncation.PromptMaxChars = v.GetInt("truncation.prompt_max_chars")
	cfg.Truncation.ProseMaxSentences = v.GetInt("truncation.prose_max_sentences")
	cfg.Truncation.CodeShortThreshold = v.GetInt("truncation.code_short_threshold")
	cfg.Truncation.CodeLongThreshold = v.GetInt("truncation.code_long_threshold")
	cfg.Truncation.CodeHeadLines = v.GetInt("truncation.code_head_lines")
	cfg.Truncation.CodeTailLines = v.GetInt("truncation.code_tail_lines")
	cfg.Truncation.TerminalMaxLines = v.GetInt("truncation.terminal_max_lines")
	cfg.Truncation.TerminalIncludeErrors = v.GetBool("truncation.terminal_include_errors")
	cfg.Truncation.ListMaxItems = v.GetInt("truncation.list_max_items")
	cfg.OllamaHost = v.GetString("ollama.host")
	cfg.OllamaModel = v.GetString("ollama.model")

	return cfg, nil
}
