// Package journal renders an extracted session as a dated markdown file.
package journal

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"matchjournal/internal/matchhistory"
	"os"
	"path/filepath"
	"strconv"
	"text/template"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

//go:embed journal.tmpl
var journalTemplate string

var tmpl = template.Must(
	template.New("journal").
		Funcs(template.FuncMap{"result": Result}).
		Parse(journalTemplate),
)

func Result(win bool) string {
	if win {
		return "Win"
	}
	return "Loss"
}

// Path is the journal file for the day of `t`, <root>/<year>/<month>/<day>.md
// without zero padding.
func Path(root string, t time.Time) string {
	return filepath.Join(
		root,
		strconv.Itoa(t.Year()),
		strconv.Itoa(int(t.Month())),
		fmt.Sprintf("%d.md", t.Day()),
	)
}

type Summary struct {
	Wins         int
	Losses       int
	AverageKda   AverageKda
	AverageRatio float64
}

type AverageKda struct {
	Kills   float64
	Deaths  float64
	Assists float64
}

func (k AverageKda) String() string {
	return fmt.Sprintf("%.1f/%.1f/%.1f", k.Kills, k.Deaths, k.Assists)
}

func Summarize(games []matchhistory.Game) Summary {
	var s Summary
	if len(games) == 0 {
		return s
	}
	for _, g := range games {
		if g.Win {
			s.Wins++
		} else {
			s.Losses++
		}
		s.AverageKda.Kills += float64(g.Kda.Kills)
		s.AverageKda.Deaths += float64(g.Kda.Deaths)
		s.AverageKda.Assists += float64(g.Kda.Assists)
		s.AverageRatio += g.Kda.Ratio()
	}
	n := float64(len(games))
	s.AverageKda.Kills /= n
	s.AverageKda.Deaths /= n
	s.AverageKda.Assists /= n
	s.AverageRatio /= n
	return s
}

// GamesTable lays the games out one per row, the caller picks how to render it.
func GamesTable(games []matchhistory.Game) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Champion", "Against", "Result", "KDA", "Duration"})
	for _, g := range games {
		t.AppendRow(table.Row{g.Num, g.AllyChamp, g.EnemyChamp, Result(g.Win), g.Kda.String(), g.Duration})
	}
	return t
}

type report struct {
	Session matchhistory.Session
	Player  matchhistory.Player
	Summary Summary
	Table   string
}

func Render(w io.Writer, session matchhistory.Session, player matchhistory.Player) error {
	return tmpl.Execute(w, report{
		Session: session,
		Player:  player,
		Summary: Summarize(session.Games),
		Table:   GamesTable(session.Games).RenderMarkdown(),
	})
}

var ErrNotOverwriting = errors.New("file not overwriting")

// Confirm is asked before an existing journal is replaced.
type Confirm func(path string) (bool, error)

func AlwaysOverwrite(string) (bool, error) {
	return true, nil
}

// Write renders the session to `path`, creating parent directories. An existing
// file is only replaced if `confirm` agrees and the render succeeded.
func Write(path string, session matchhistory.Session, player matchhistory.Player, confirm Confirm) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		overwrite, err := confirm(path)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrNotOverwriting, path)
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	// rendered fully before the file is touched, a failed render keeps the old journal
	var rendered bytes.Buffer
	err = Render(&rendered, session, player)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}
	return os.WriteFile(path, rendered.Bytes(), 0644)
}
