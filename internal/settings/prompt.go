package settings

import (
	"bufio"
	"fmt"
	"io"
	"matchjournal/internal/leagueofgraphs"
	"matchjournal/internal/matchhistory"
	"strconv"
	"strings"
)

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask keeps asking for `field` until `accept` takes the answer or input runs out.
func (p prompter) ask(field string, accept func(answer string) error) error {
	for {
		fmt.Fprintf(p.out, "Enter your %s: ", field)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("%s: %w", field, io.ErrUnexpectedEOF)
		}
		err := accept(strings.TrimSpace(p.scanner.Text()))
		if err == nil {
			return nil
		}
		fmt.Fprintln(p.out, err)
	}
}

func nonEmpty(field string, dst *string) func(string) error {
	return func(answer string) error {
		if answer == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		*dst = answer
		return nil
	}
}

// Prompt walks through first run setup, asking for region, tag, username,
// role and block size in that order. `in` is shared with any later prompt of
// the same run so no buffered answer is lost.
func Prompt(in *bufio.Scanner, out io.Writer) (Settings, error) {
	p := prompter{scanner: in, out: out}
	var s Settings

	fmt.Fprintln(out, "Couldn't find a config file. Follow this setup to set one up quickly")

	err := p.ask("region[euw/eune/na/kr]", func(answer string) error {
		region := strings.ToLower(answer)
		if err := leagueofgraphs.ValidateRegion(region); err != nil {
			return err
		}
		s.Region = region
		return nil
	})
	if err != nil {
		return Settings{}, err
	}
	err = p.ask("tag", nonEmpty("tag", &s.Tag))
	if err != nil {
		return Settings{}, err
	}
	err = p.ask("username", nonEmpty("username", &s.Username))
	if err != nil {
		return Settings{}, err
	}
	err = p.ask(
		fmt.Sprintf("role[%s]", strings.Join(matchhistory.RoleNames(), "/")),
		func(answer string) error {
			role, err := matchhistory.ParseRole(answer)
			if err != nil {
				return err
			}
			s.Role = role
			return nil
		},
	)
	if err != nil {
		return Settings{}, err
	}
	err = p.ask(
		"number of games in one block(this is used to fetch that amount of games)",
		func(answer string) error {
			count, err := strconv.ParseUint(answer, 10, 8)
			if err != nil || count == 0 {
				return fmt.Errorf("%q is not a number between 1 and 255", answer)
			}
			s.BlockGameCount = uint8(count)
			return nil
		},
	)
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}
