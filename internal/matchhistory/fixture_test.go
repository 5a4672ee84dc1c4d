package matchhistory

import (
	"fmt"
	"html"
	"matchjournal/lib/testutil"
	"math/rand"
	"strings"
)

// fixtureRow is one <tr> of a synthetic recent games table.
type fixtureRow struct {
	// spacer rows have no duration and are not games
	spacer bool

	ally     string
	status   string
	duration string
	kda      Kda
	// the two team columns, each a list of champions in role order
	teams [2][]string

	// fields left out of the markup
	omit map[Field]bool
}

// gameRow builds the row a page would show for `g`. When `allyTeamFirst` is set the
// tracked player's team is the first column, which forces the self-match fallback.
func gameRow(rndm *rand.Rand, g Game, role Role, allyTeamFirst bool) fixtureRow {
	status := "Defeat"
	if g.Win {
		status = VictoryText
	}

	allyTeam := fillerTeam(rndm)
	enemyTeam := fillerTeam(rndm)
	allyTeam[role.Index()] = g.AllyChamp
	enemyTeam[role.Index()] = g.EnemyChamp

	teams := [2][]string{enemyTeam, allyTeam}
	if allyTeamFirst {
		teams = [2][]string{allyTeam, enemyTeam}
	}

	return fixtureRow{
		ally:     g.AllyChamp,
		status:   status,
		duration: g.Duration,
		kda:      g.Kda,
		teams:    teams,
	}
}

func fillerTeam(rndm *rand.Rand) []string {
	team := make([]string, 5)
	for i := range team {
		team[i] = "filler-" + testutil.RandomString(rndm, 6)
	}
	return team
}

// renderPage renders the summoner page with two header rows followed by `rows`
// in table order (newest first).
func renderPage(rows []fixtureRow) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>Summoner</title></head><body>`)
	b.WriteString(`<div class="box"><table class="data_table relative recentGamesTable inverted_rows_color"><tbody>`)
	b.WriteString(`<tr><th colspan="4">Recent Games</th></tr>`)
	b.WriteString(`<tr class="filtersRow"><td colspan="4"><a href="#">All queues</a></td></tr>`)
	for _, row := range rows {
		b.WriteString(renderRow(row))
	}
	b.WriteString(`</tbody></table></div></body></html>`)
	return b.String()
}

func renderRow(row fixtureRow) string {
	if row.spacer {
		return `<tr class="adRow"><td colspan="4"><div class="advertisement">Advertisement</div></td></tr>`
	}

	var b strings.Builder
	b.WriteString("<tr>")

	b.WriteString(`<td class="championCellLight">`)
	if !row.omit[FieldChampion] {
		fmt.Fprintf(&b, `<div class="relative"><img class="champion" alt="%s" src="/img/champion.png"></div>`, html.EscapeString(row.ally))
	}
	b.WriteString(`</td>`)

	b.WriteString(`<td class="resultCellLight">`)
	if !row.omit[FieldStatus] {
		fmt.Fprintf(&b, `<div class="victoryDefeatText">%s</div>`, html.EscapeString(row.status))
	}
	if !row.omit[FieldDuration] {
		fmt.Fprintf(&b, "<div class=\"gameDuration\">\n\t\t%s\n\t</div>", html.EscapeString(row.duration))
	}
	b.WriteString(`</td>`)

	b.WriteString(`<td class="kdaColumn"><div class="kda">`)
	if !row.omit[FieldKills] {
		fmt.Fprintf(&b, `<span class="kills">%d</span>`, row.kda.Kills)
	}
	b.WriteString(" / ")
	if !row.omit[FieldDeaths] {
		fmt.Fprintf(&b, `<span class="deaths">%d</span>`, row.kda.Deaths)
	}
	b.WriteString(" / ")
	if !row.omit[FieldAssists] {
		fmt.Fprintf(&b, `<span class="assists">%d</span>`, row.kda.Assists)
	}
	b.WriteString(`</div></td>`)

	b.WriteString(`<td class="summonersTd">`)
	for i, team := range row.teams {
		if row.omit[FieldTeamColumn] && i == 1 {
			continue
		}
		b.WriteString(`<div class="summonerColumn">`)
		for _, champ := range team {
			fmt.Fprintf(&b, `<div class="summoner"><img alt="%s"></div>`, html.EscapeString(champ))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</td>`)

	b.WriteString("</tr>")
	return b.String()
}

var championPool = []string{
	"Jinx", "Ashe", "Zed", "Ahri", "Lee Sin", "Kai'Sa", "Thresh", "Garen",
	"Darius", "Lux", "Vi", "Miss Fortune", "Nautilus", "Ezreal", "Yasuo",
}

// randomGames generates `n` games in chronological order numbered 1..n.
func randomGames(rndm *rand.Rand, n int) []Game {
	games := make([]Game, n)
	for i := range games {
		ally := testutil.RandomPick(rndm, championPool)
		enemy := testutil.RandomPick(rndm, championPool)
		for enemy == ally {
			enemy = testutil.RandomPick(rndm, championPool)
		}
		games[i] = Game{
			Num:        uint8(i + 1),
			AllyChamp:  ally,
			EnemyChamp: enemy,
			Win:        rndm.Intn(2) == 0,
			Kda: Kda{
				Kills:   uint8(rndm.Intn(25)),
				Deaths:  uint8(rndm.Intn(15)),
				Assists: uint8(rndm.Intn(30)),
			},
			Duration: testutil.RandomDuration(rndm, 15, 45),
		}
	}
	return games
}

// newestFirstRows lays chronological games out the way the table shows them.
func newestFirstRows(rndm *rand.Rand, games []Game, role Role) []fixtureRow {
	rows := make([]fixtureRow, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		rows = append(rows, gameRow(rndm, games[i], role, rndm.Intn(2) == 0))
	}
	return rows
}
