package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bjpl/session-slides/launcher"
	"github.com/bjpl/session-slides/model"
	"github.com/bjpl/session-slides/render"
	"github.com/bjpl/session-slides/scanner"
	"github.com/bjpl/session-slides/titles"
	"github.com/bjpl/session-slides/tui"
)

var (
	flagFrom     string
	flagOutput   string
	flagTitle    string
	flagOpen     bool
	flagAITitles bool
	flagPick     bool
	flagConfig   string
	flagVerbose  bool
)

var (
	stepColor = color.New(color.FgCyan).SprintFunc()
	okColor   = color.New(color.FgGreen).SprintFunc()
	warnColor = color.New(color.FgYellow).SprintFunc()
	errColor  = color.New(color.FgRed).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "session-slides",
	Short: "Turn a Claude Code session log into an HTML slide deck",
	Long: `session-slides converts one Claude Code conversation log (JSONL)
into a self-contained HTML slide deck: a title slide, one slide per
conversation turn with a derived title, and a summary slide.

With no flags it picks the most recent session for the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagFrom, "from", "", "session JSONL file (default: latest for the current directory)")
	f.StringVarP(&flagOutput, "output", "o", "", "output HTML path (default: output/session-slides-<timestamp>.html)")
	f.StringVarP(&flagTitle, "title", "t", "", "deck title (default: project name)")
	f.BoolVar(&flagOpen, "open", false, "open the generated deck in the browser")
	f.BoolVar(&flagAITitles, "ai-titles", false, "derive turn titles with a local Ollama model")
	f.BoolVar(&flagPick, "pick", false, "choose the session interactively")
	f.StringVar(&flagConfig, "config", "", "config file with truncation and ollama settings")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "print session statistics")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	sessionPath, err := resolveSessionPath()
	if err != nil {
		return err
	}
	if sessionPath == "" {
		// picker dismissed without a choice
		return nil
	}

	fmt.Printf("%s parsing %s\n", stepColor("»"), sessionPath)
	session, err := scanner.ParseSession(sessionPath)
	if err != nil {
		return err
	}
	if session.SkippedLines > 0 {
		fmt.Printf("%s skipped %d malformed lines\n", warnColor("!"), session.SkippedLines)
	}

	pairs := session.ConversationPairs()
	if flagVerbose {
		printStats(session, len(pairs))
	}

	turnTitles := buildTurnTitles(cmd.Context(), pairs, cfg)

	deckTitle := flagTitle
	if deckTitle == "" {
		deckTitle = deckTitleFor(session)
	}

	html, err := render.GenerateHTML(session, render.Options{
		Title:      deckTitle,
		TurnTitles: turnTitles,
		Truncation: cfg.Truncation,
	})
	if err != nil {
		return err
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = filepath.Join("output",
			"session-slides-"+time.Now().Format("20060102-150405")+".html")
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing deck: %w", err)
	}

	fmt.Printf("%s wrote %s (%d slides)\n", okColor("✓"), outPath, slideCount(len(pairs)))

	if flagOpen {
		if err := launcher.OpenBrowser(outPath); err != nil {
			fmt.Printf("%s %v\n", warnColor("!"), err)
		}
	}
	return nil
}

// resolveSessionPath picks the input file: --from wins, --pick opens the
// interactive picker, otherwise the newest session for the cwd is used.
func resolveSessionPath() (string, error) {
	if flagFrom != "" {
		if _, err := os.Stat(flagFrom); err != nil {
			return "", fmt.Errorf("session file: %w", err)
		}
		return flagFrom, nil
	}

	if flagPick {
		entries := scanner.ListSessions("", "")
		if len(entries) == 0 {
			return "", fmt.Errorf("no sessions found for this directory under %s", scanner.ProjectsDir())
		}
		return tui.Pick(entries)
	}

	path := scanner.FindCurrentSession("", "")
	if path == "" {
		return "", fmt.Errorf("no sessions found for this directory under %s (use --from or --pick)", scanner.ProjectsDir())
	}
	return path, nil
}

// buildTurnTitles derives one title per conversation pair. Consecutive
// duplicates get the continued suffix so slide headers stay distinct.
func buildTurnTitles(ctx context.Context, pairs []model.Pair, cfg appConfig) []string {
	var ollama *titles.OllamaClient
	if flagAITitles {
		ollama = titles.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel)
		fmt.Printf("%s generating titles with %s\n", stepColor("»"), cfg.OllamaModel)
	}

	out := make([]string, len(pairs))
	for i, pair := range pairs {
		prompt := pair.User.TextContent()
		if ollama != nil {
			out[i] = ollama.GenerateTitle(ctx, prompt, i+1)
		} else {
			out[i] = titles.GenerateTurnTitle(prompt, i+1)
		}
		if i > 0 && out[i] == out[i-1] {
			out[i] = titles.GenerateContinuedTitle(out[i])
		}
	}
	return out
}

// slideCount mirrors the deck layout: title slide, one slide per pair,
// and a summary slide only when there are pairs at all.
func slideCount(pairs int) int {
	if pairs == 0 {
		return 1
	}
	return pairs + 2
}

func deckTitleFor(session *model.Session) string {
	if session.ProjectPath != "" {
		return filepath.Base(session.ProjectPath) + " Session"
	}
	return "Session Slides"
}

func printStats(session *model.Session, pairCount int) {
	fmt.Printf("  session  %s\n", session.ID)
	fmt.Printf("  project  %s\n", session.ProjectPath)
	fmt.Printf("  turns    %d (%d pairs)\n", len(session.Turns), pairCount)
	if d := session.Duration(); d > 0 {
		fmt.Printf("  span     %s\n", d.Round(time.Second))
	}
	for name, count := range session.ToolCounts() {
		fmt.Printf("  tool     %-14s %d\n", name, count)
	}
}
