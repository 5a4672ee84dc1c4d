package commands

import (
	"encoding/json"
	"fmt"
	"matchjournal/internal/journal"
	"matchjournal/internal/matchhistory"
	"matchjournal/lib/timezone"

	"github.com/spf13/cobra"
)

var parseFormat *string
var parseRole *string
var parseCount *uint8

func init() {
	parseFormat = parseCmd.Flags().StringP("format", "f", "table", "The output format, either table or json.")
	parseRole = parseCmd.Flags().String("role", "", "Overrides the configured role.")
	parseCount = parseCmd.Flags().Uint8("count", 0, "Overrides the configured block_game_count.")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <page.html> [--format table|json] [--role <role>] [--count <n>]",
	Short: "Runs the extraction on a saved summoner page and prints the session.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := loadSettings(cmd, nil)
		if err != nil {
			return fmt.Errorf("%w (run `match-journal setup` first)", err)
		}
		if *parseRole != "" {
			s.Role, err = matchhistory.ParseRole(*parseRole)
			if err != nil {
				return err
			}
		}
		if *parseCount != 0 {
			s.BlockGameCount = *parseCount
		}

		extractor, err := s.Extractor()
		if err != nil {
			return err
		}
		doc, err := readPage(ctx, args[0])
		if err != nil {
			return err
		}
		session, err := extractor.Build(ctx, doc, s.Player, timezone.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch *parseFormat {
		case "json":
			encoded, err := json.MarshalIndent(session, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(encoded))
		case "table":
			t := terminalTable(journal.GamesTable(session.Games), out)
			t.SetTitle(session.Date)
			t.Render()

			summary := journal.Summarize(session.Games)
			fmt.Fprintf(out, "%dW %dL, average KDA %s\n", summary.Wins, summary.Losses, summary.AverageKda)
		default:
			return fmt.Errorf("unknown format %q, expected table or json", *parseFormat)
		}
		return nil
	},
}
