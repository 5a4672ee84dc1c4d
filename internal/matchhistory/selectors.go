package matchhistory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Field is the logical name of something read from the summoner page.
type Field string

const (
	FieldTable      Field = "table"
	FieldRow        Field = "row"
	FieldKills      Field = "kills"
	FieldDeaths     Field = "deaths"
	FieldAssists    Field = "assists"
	FieldDuration   Field = "duration"
	FieldChampion   Field = "champion"
	FieldStatus     Field = "status"
	FieldTeamColumn Field = "team_column"
)

// ChampionAttr is the attribute of a champion image naming the champion.
const ChampionAttr = "alt"

// DefaultPatterns is the leagueofgraphs recent games layout.
var DefaultPatterns = map[Field]string{
	FieldTable:      "table.data_table.relative.recentGamesTable.inverted_rows_color>tbody",
	FieldRow:        "tr",
	FieldKills:      "span.kills",
	FieldDeaths:     "span.deaths",
	FieldAssists:    "span.assists",
	FieldDuration:   ".gameDuration",
	FieldChampion:   "img",
	FieldStatus:     ".victoryDefeatText",
	FieldTeamColumn: ".summonerColumn",
}

func Fields() []Field {
	fields := make([]Field, 0, len(DefaultPatterns))
	for f := range DefaultPatterns {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Selectors holds one compiled matcher per field.
type Selectors struct {
	patterns map[Field]string
	matchers map[Field]goquery.Matcher
}

// CompileSelectors compiles DefaultPatterns with `overrides` applied on top.
// Unknown field names and patterns that fail to compile are both errors.
func CompileSelectors(overrides map[string]string) (Selectors, error) {
	s := Selectors{
		patterns: make(map[Field]string, len(DefaultPatterns)),
		matchers: make(map[Field]goquery.Matcher, len(DefaultPatterns)),
	}
	for f, p := range DefaultPatterns {
		s.patterns[f] = p
	}
	for name, p := range overrides {
		f := Field(name)
		if _, known := DefaultPatterns[f]; !known {
			return Selectors{}, fmt.Errorf(
				"%w: unknown field %q (known: %s)",
				ErrInvalidSelector, name, joinFields(Fields()),
			)
		}
		s.patterns[f] = p
	}

	for f, p := range s.patterns {
		sel, err := cascadia.Compile(p)
		if err != nil {
			return Selectors{}, fmt.Errorf("%w: %s %q: %v", ErrInvalidSelector, f, p, err)
		}
		s.matchers[f] = sel
	}
	return s, nil
}

func MustCompileSelectors(overrides map[string]string) Selectors {
	s, err := CompileSelectors(overrides)
	if err != nil {
		panic(err)
	}
	return s
}

var DefaultSelectors = MustCompileSelectors(nil)

func (s Selectors) Matcher(f Field) goquery.Matcher {
	return s.matchers[f]
}

func (s Selectors) Pattern(f Field) string {
	return s.patterns[f]
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
