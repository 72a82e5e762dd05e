package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/word-agent/internal/config"
	"github.com/povarna/generative-ai-agents/word-agent/internal/grouping"
	"github.com/povarna/generative-ai-agents/word-agent/internal/keypad"
	"github.com/spf13/cobra"
)

// offline marks commands that run without the analyzer or history.
const offline = "offline"

func newKeypadCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "keypad DIGITS",
		Short:       "List the letter combinations of phone keypad digits",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			combinations, err := keypad.Combinations(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(combinations)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(combinations, " "))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the combinations as a JSON array")
	return cmd
}

func newGroupCmd() *cobra.Command {
	var (
		letter   string
		alphabet string
	)

	cmd := &cobra.Command{
		Use:         "group [names...]",
		Short:       "Bucket names by first letter, from arguments or one per line on stdin",
		Annotations: map[string]string{offline: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						names = append(names, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			groups := grouping.ByFirstLetter(names, alphabet)
			out := cmd.OutOrStdout()

			if letter != "" {
				r, err := grouping.ParseLetter(letter)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%c: %s\n", r, strings.Join(grouping.Filter(groups, r), ", "))
				return err
			}

			for _, g := range groups {
				if _, err := fmt.Fprintf(out, "%s: %s\n", g.Letter, strings.Join(g.Names, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&letter, "letter", "l", "", "Only print the names under this letter")
	cmd.Flags().StringVar(&alphabet, "alphabet", config.DefaultAlphabet, "Bucket order; empty takes every letter")
	return cmd
}
