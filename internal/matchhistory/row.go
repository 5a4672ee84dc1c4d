package matchhistory

import (
	"fmt"
	"matchjournal/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// VictoryText is the status text of a won game, anything else is a loss. The
// status is compared after whitespace is trimmed and collapsed, so "\n Victory "
// still wins, but the comparison stays case sensitive.
const VictoryText = "Victory"

// interpretRow reads one match row at 1-based position `row`. A row without a
// duration is not a game (ads, spacers) and yields ok == false. Once the duration
// is present every other field is mandatory.
//
// Num is left unset, it is assigned once the block is in chronological order.
func (e Extractor) interpretRow(tr *goquery.Selection, row int, role Role) (Game, bool, error) {
	duration, ok := htmlutil.FirstText(e.find(tr, FieldDuration))
	if !ok {
		return Game{}, false, nil
	}

	kda, err := e.readKda(tr, row)
	if err != nil {
		return Game{}, false, err
	}

	ally, ok := htmlutil.FirstAttr(e.find(tr, FieldChampion), ChampionAttr)
	if !ok {
		return Game{}, false, malformed(row, FieldChampion)
	}

	status, ok := htmlutil.FirstText(e.find(tr, FieldStatus))
	if !ok {
		return Game{}, false, malformed(row, FieldStatus)
	}

	enemy, err := e.resolveEnemy(tr, row, ally, role)
	if err != nil {
		return Game{}, false, err
	}

	return Game{
		AllyChamp:  ally,
		EnemyChamp: enemy,
		Win:        status == VictoryText,
		Kda:        kda,
		Duration:   duration,
	}, true, nil
}

func (e Extractor) readKda(tr *goquery.Selection, row int) (Kda, error) {
	kills, ok := htmlutil.FirstUint8(e.find(tr, FieldKills))
	if !ok {
		return Kda{}, malformed(row, FieldKills)
	}
	deaths, ok := htmlutil.FirstUint8(e.find(tr, FieldDeaths))
	if !ok {
		return Kda{}, malformed(row, FieldDeaths)
	}
	assists, ok := htmlutil.FirstUint8(e.find(tr, FieldAssists))
	if !ok {
		return Kda{}, malformed(row, FieldAssists)
	}
	return Kda{Kills: kills, Deaths: deaths, Assists: assists}, nil
}

// resolveEnemy reads the champion in the role slot of the first team column.
// When that is the tracked champion the first column was our own team, so the
// slot is read again from the second column.
//
// This is a heuristic: a real mirror match (both teams playing the same champion
// in that role) reads identically to the misread and resolves to the same name.
func (e Extractor) resolveEnemy(tr *goquery.Selection, row int, ally string, role Role) (string, error) {
	columns := e.find(tr, FieldTeamColumn)

	first, ok := htmlutil.Nth(columns, 0)
	if !ok {
		return "", malformed(row, FieldTeamColumn)
	}
	enemy, err := e.championAt(first, row, role)
	if err != nil {
		return "", err
	}
	if enemy != ally {
		return enemy, nil
	}

	second, ok := htmlutil.Nth(columns, 1)
	if !ok {
		return "", malformed(row, FieldTeamColumn)
	}
	return e.championAt(second, row, role)
}

func (e Extractor) championAt(column *goquery.Selection, row int, role Role) (string, error) {
	champions := e.find(column, FieldChampion)
	slot, ok := htmlutil.Nth(champions, role.Index())
	if !ok {
		return "", &RowError{
			Row:   row,
			Field: FieldTeamColumn,
			Err: fmt.Errorf(
				"%w: %s is slot %d but the column lists %d champions",
				ErrRoleIndexOutOfRange, role, role.Index(), champions.Length(),
			),
		}
	}
	name, ok := htmlutil.FirstAttr(slot, ChampionAttr)
	if !ok {
		return "", malformed(row, FieldChampion)
	}
	return name, nil
}

func (e Extractor) find(within *goquery.Selection, f Field) *goquery.Selection {
	return htmlutil.Select(within, e.selectors.Matcher(f))
}
