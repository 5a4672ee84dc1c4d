package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"matchjournal/internal/journal"
	"matchjournal/internal/leagueofgraphs"
	"matchjournal/internal/settings"
	"matchjournal/lib/htmlutil"
	"matchjournal/lib/timezone"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

var generateOut *string
var generateYes *bool
var generateDump *string
var generateHtml *string

func init() {
	generateOut = generateCmd.Flags().String("out", "", "The root of the journal tree, overrides output_dir.")
	generateYes = generateCmd.Flags().BoolP("yes", "y", false, "Overwrite today's journal without asking.")
	generateDump = generateCmd.Flags().String("dump", "", "Write every http exchange to this directory, overrides dump_dir.")
	generateHtml = generateCmd.Flags().String("html", "", "Read the summoner page from a saved file instead of fetching it.")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [--out <dir>] [--yes] [--dump <dir>] [--html <page.html>]",
	Short: "Fetches your recent games and writes today's journal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		stdin := stdinLines(cmd)

		s, err := loadSettings(cmd, stdin)
		if err != nil {
			return err
		}
		if *generateOut != "" {
			s.OutputDir = *generateOut
		}
		if *generateDump != "" {
			s.DumpDir = *generateDump
		}

		extractor, err := s.Extractor()
		if err != nil {
			return err
		}

		doc, err := summonerPage(ctx, s)
		if err != nil {
			return err
		}

		now := timezone.Now()
		session, err := extractor.Build(ctx, doc, s.Player, now)
		if err != nil {
			return fmt.Errorf("extract match history: %w", err)
		}

		confirm := journal.PromptOverwrite(stdin, cmd.OutOrStdout())
		if *generateYes {
			confirm = journal.AlwaysOverwrite
		}

		path := journal.Path(s.OutputRoot(), now)
		err = journal.Write(path, session, s.Player, confirm)
		if errors.Is(err, journal.ErrNotOverwriting) {
			fmt.Fprintln(cmd.OutOrStdout(), "File not overwriting.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
		return nil
	},
}

func summonerPage(ctx context.Context, s settings.Settings) (*goquery.Document, error) {
	if *generateHtml != "" {
		return readPage(ctx, *generateHtml)
	}

	client, err := leagueofgraphs.NewClient(s.ClientOptions())
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "fetching summoner page", "url", client.SummonerUrl(s.Player))
	return client.FetchSummonerPage(ctx, s.Player)
}

func readPage(ctx context.Context, path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmlutil.Parse(ctx, f)
}
