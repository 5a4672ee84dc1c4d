// Package settings loads, validates and persists who the journal is generated for.
package settings

import (
	"errors"
	"fmt"
	"matchjournal/internal/leagueofgraphs"
	"matchjournal/internal/matchhistory"
	"matchjournal/lib/configutil"
	"os"
	"time"
)

const DefaultFile = "config.json5"

type Settings struct {
	matchhistory.Player

	// root of the <year>/<month>/<day>.md tree, defaults to the working directory
	OutputDir string `json:"output_dir,omitempty"`
	// IANA name used to date sessions, defaults to the system timezone
	Timezone string `json:"timezone,omitempty"`
	BaseUrl  string `json:"base_url,omitempty"`
	DumpDir  string `json:"dump_dir,omitempty"`
	// field name -> css selector, replaces the built in selector of that field
	Selectors map[string]string `json:"selectors,omitempty"`
}

// ErrNotConfigured is returned by Load when neither the config file nor its
// local override exist.
var ErrNotConfigured = errors.New("no configuration found")

func Load(path string) (Settings, error) {
	s, err := configutil.ReadConfig[Settings](path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("%w: %s", ErrNotConfigured, path)
	}
	if err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return configutil.WriteConfig(path, s)
}

func (s Settings) Validate() error {
	err := s.Player.Validate()
	if err != nil {
		return err
	}
	err = leagueofgraphs.ValidateRegion(s.Region)
	if err != nil {
		return fmt.Errorf("%w: %v", matchhistory.ErrInvalidPlayer, err)
	}
	if s.Timezone != "" {
		_, err = time.LoadLocation(s.Timezone)
		if err != nil {
			return fmt.Errorf("timezone %q: %w", s.Timezone, err)
		}
	}
	_, err = matchhistory.CompileSelectors(s.Selectors)
	return err
}

// Extractor builds an extractor using the configured selector overrides.
func (s Settings) Extractor() (matchhistory.Extractor, error) {
	if len(s.Selectors) == 0 {
		return matchhistory.Default, nil
	}
	selectors, err := matchhistory.CompileSelectors(s.Selectors)
	if err != nil {
		return matchhistory.Extractor{}, err
	}
	return matchhistory.NewExtractor(selectors), nil
}

func (s Settings) OutputRoot() string {
	if s.OutputDir == "" {
		return "."
	}
	return s.OutputDir
}

func (s Settings) ClientOptions() leagueofgraphs.ClientOptions {
	return leagueofgraphs.ClientOptions{
		BaseUrl: s.BaseUrl,
		DumpDir: s.DumpDir,
	}
}
