package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/word-agent/internal/models"
	"github.com/povarna/generative-ai-agents/word-agent/internal/wordgen"
	"github.com/spf13/cobra"
)

type wordAnalyzer interface {
	Analyze(ctx context.Context, request models.WordRequest) (models.AnalysisResult, error)
}

func newPlayCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Generate words and analyze the one you pick",
		Long: `Shows a numbered list of generated words. Enter a number to see the
length of that word's longest substring without repeating characters.
Commands: new (regenerate), list, clear, quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				count = deps.AppConfig.Generator.Count
			}
			session := &playSession{
				analyzer:  deps.Analyzer,
				generator: deps.Generator,
				count:     count,
				in:        cmd.InOrStdin(),
				out:       cmd.OutOrStdout(),
			}
			return session.run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of words to generate (default from config)")
	return cmd
}

type playSession struct {
	analyzer  wordAnalyzer
	generator wordgen.Generator
	count     int
	in        io.Reader
	out       io.Writer

	words    []string
	selected int // 1-based, 0 when nothing is selected
}

func (s *playSession) run(ctx context.Context) error {
	if err := s.regenerate(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "new":
			if err := s.regenerate(ctx); err != nil {
				return err
			}
		case "list":
			printWords(s.out, s.words)
		case "clear":
			s.selected = 0
			fmt.Fprintln(s.out, "cleared")
		default:
			s.choose(ctx, input)
		}
	}
}

func (s *playSession) regenerate(ctx context.Context) error {
	words, err := s.generator.Generate(ctx, s.count)
	if err != nil {
		return fmt.Errorf("generate words: %w", err)
	}
	s.words = words
	s.selected = 0
	printWords(s.out, s.words)
	return nil
}

func (s *playSession) choose(ctx context.Context, input string) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(s.words) {
		fmt.Fprintf(s.out, "pick a number between 1 and %d, or new, list, clear, quit\n", len(s.words))
		return
	}
	if n == s.selected {
		// Picking the shown word again toggles it off.
		s.selected = 0
		fmt.Fprintln(s.out, "cleared")
		return
	}

	result, _ := s.analyzer.Analyze(ctx, models.WordRequest{
		EventID: fmt.Sprintf("play-%d", n),
		Word:    s.words[n-1],
		Source:  models.SourceCLI,
	})
	s.selected = n
	fmt.Fprintln(s.out, formatResult(result))
}
