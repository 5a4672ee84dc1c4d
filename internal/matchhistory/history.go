// Package matchhistory turns the recent games table of a leagueofgraphs summoner
// page into a dated, chronologically ordered Session.
package matchhistory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"matchjournal/lib/htmlutil"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("matchjournal/internal/matchhistory")
var meter = otel.Meter("matchjournal/internal/matchhistory")

var rowsSkipped = mustCounter(
	"matchhistory.rows_skipped",
	"Rows inside the block that were not games (no duration).",
)
var gamesExtracted = mustCounter(
	"matchhistory.games_extracted",
	"Games returned by successful extractions.",
)

// mustCounter only fails on an invalid instrument name, the names above are constant.
func mustCounter(name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(fmt.Sprintf("failed to create counter %s: %v", name, err))
	}
	return counter
}

// HeaderRowCount is the number of leading non-game rows in the table body.
const HeaderRowCount = 2

type Extractor struct {
	selectors Selectors
}

func NewExtractor(selectors Selectors) Extractor {
	return Extractor{selectors: selectors}
}

var Default = NewExtractor(DefaultSelectors)

// Build extracts the last player.BlockGameCount games. Rows past the block are
// never visited and rows without a duration are skipped, so at most
// BlockGameCount games come back. The first fatal layout problem aborts the whole
// run, no partial session is returned.
func (e Extractor) Build(ctx context.Context, doc *goquery.Document, player Player, now time.Time) (Session, error) {
	ctx, span := tracer.Start(ctx, "Build")
	defer span.End()

	if err := player.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Session{}, err
	}
	span.SetAttributes(
		attribute.String("role", player.Role.String()),
		attribute.Int("block_game_count", int(player.BlockGameCount)),
	)

	tbody := e.find(doc.Selection, FieldTable)
	if tbody.Length() == 0 {
		span.SetStatus(codes.Error, ErrTableNotFound.Error())
		return Session{}, ErrTableNotFound
	}

	rows := e.find(tbody.First(), FieldRow)
	limit := int(player.BlockGameCount) + HeaderRowCount

	var newestFirst []Game
	for i := 0; i < rows.Length() && i < limit; i++ {
		row := i + 1
		if row <= HeaderRowCount {
			continue
		}

		game, ok, err := e.interpretRow(rows.Eq(i), row, player.Role)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "row interpretation failed")
			return Session{}, err
		}
		if !ok {
			slog.DebugContext(ctx, "skipping row without a duration", "row", row)
			rowsSkipped.Add(ctx, 1)
			continue
		}
		newestFirst = append(newestFirst, game)
	}

	games := chronological(newestFirst)
	gamesExtracted.Add(ctx, int64(len(games)))
	slog.DebugContext(ctx, "extracted match history", "games", len(games), "rows", rows.Length())

	return Session{
		Date:  FormatDate(now),
		Games: games,
	}, nil
}

// BuildFromReader parses the raw markup then calls Build.
func (e Extractor) BuildFromReader(ctx context.Context, r io.Reader, player Player, now time.Time) (Session, error) {
	doc, err := htmlutil.Parse(ctx, r)
	if err != nil {
		return Session{}, err
	}
	return e.Build(ctx, doc, player, now)
}

// chronological reverses the newest first table order and numbers the games
// 1..n by their position in the reversed sequence.
func chronological(newestFirst []Game) []Game {
	games := make([]Game, len(newestFirst))
	for i := range newestFirst {
		g := newestFirst[len(newestFirst)-1-i]
		g.Num = uint8(i + 1)
		games[i] = g
	}
	return games
}
