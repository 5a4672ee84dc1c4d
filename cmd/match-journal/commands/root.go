package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"matchjournal/internal/settings"
	"matchjournal/lib/telemetry"
	"matchjournal/lib/timezone"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var configPath *string
var verbose *bool

func init() {
	configPath = rootCmd.PersistentFlags().String("config", settings.DefaultFile, "The config file, <name>.local.<ext> next to it overrides it.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages.")
}

var rootCmd = &cobra.Command{
	Use:           "match-journal",
	Short:         "match-journal writes your recent leagueofgraphs games into a dated markdown journal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// stdinLines is the one line reader of a command invocation, every prompt of
// the invocation reads through it.
func stdinLines(cmd *cobra.Command) *bufio.Scanner {
	return bufio.NewScanner(cmd.InOrStdin())
}

// loadSettings reads the config. When there is none yet and `stdin` is not
// nil the first time setup runs on it.
func loadSettings(cmd *cobra.Command, stdin *bufio.Scanner) (settings.Settings, error) {
	s, err := settings.Load(*configPath)
	if errors.Is(err, settings.ErrNotConfigured) && stdin != nil {
		s, err = runSetup(stdin, cmd.OutOrStdout())
	}
	if err != nil {
		return settings.Settings{}, err
	}

	err = timezone.SetLocation(s.Timezone)
	if err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}

func runSetup(in *bufio.Scanner, out io.Writer) (settings.Settings, error) {
	s, err := settings.Prompt(in, out)
	if err != nil {
		return settings.Settings{}, err
	}
	err = settings.Save(*configPath, s)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(out, "Saved config to %s\n", *configPath)
	return s, nil
}

func terminalTable(t table.Writer, out io.Writer) table.Writer {
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}
