package matchhistory

import (
	"bytes"
	"context"
	"testing"

	_ "embed"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/recent_games.html
var recentGamesPage []byte

func TestBuildSummonerPage(t *testing.T) {
	session, err := Default.BuildFromReader(
		context.Background(),
		bytes.NewReader(recentGamesPage),
		testPlayer(RoleJungle, 6),
		extractionTime,
	)
	require.NoError(t, err)

	expected := []Game{
		{Num: 1, AllyChamp: "Nidalee", EnemyChamp: "Kindred", Win: false, Kda: Kda{1, 8, 2}, Duration: "28:30"},
		// mirror match, both columns hold Lee Sin in the jungle slot
		{Num: 2, AllyChamp: "Lee Sin", EnemyChamp: "Lee Sin", Win: true, Kda: Kda{12, 4, 9}, Duration: "35:59"},
		{Num: 3, AllyChamp: "Kha'Zix", EnemyChamp: "Viego", Win: false, Kda: Kda{0, 0, 0}, Duration: "3:12"},
		{Num: 4, AllyChamp: "Lee Sin", EnemyChamp: "Graves", Win: false, Kda: Kda{3, 6, 4}, Duration: "24:05"},
		{Num: 5, AllyChamp: "Lee Sin", EnemyChamp: "Vi", Win: true, Kda: Kda{7, 2, 11}, Duration: "31:44"},
	}
	if diff := cmp.Diff(expected, session.Games); diff != "" {
		t.Fatal(diff)
	}
}

func TestBuildSummonerPageSmallBlock(t *testing.T) {
	session, err := Default.BuildFromReader(
		context.Background(),
		bytes.NewReader(recentGamesPage),
		testPlayer(RoleJungle, 3),
		extractionTime,
	)
	require.NoError(t, err)

	// the third visited row is an advertisement
	require.Len(t, session.Games, 2)
	require.Equal(t, "Graves", session.Games[0].EnemyChamp)
	require.Equal(t, "Vi", session.Games[1].EnemyChamp)
}

func TestBuildSummonerPageRoleOutOfRange(t *testing.T) {
	doc := parse(t, renderPage([]fixtureRow{{
		ally:     "Jinx",
		status:   "Victory",
		duration: "20:00",
		teams:    [2][]string{{"Jinx", "Ashe"}, {"Zed", "Ahri"}},
	}}))

	_, err := Default.Build(context.Background(), doc, testPlayer(RoleSupport, 1), extractionTime)
	require.ErrorIs(t, err, ErrRoleIndexOutOfRange)
	require.NotErrorIs(t, err, ErrRowMalformed)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, FieldTeamColumn, rowErr.Field)
	require.Equal(t, 3, rowErr.Row)
}

func TestBuildSelfMatchWithoutSecondColumn(t *testing.T) {
	doc := parse(t, renderPage([]fixtureRow{{
		ally:     "Jinx",
		status:   "Defeat",
		duration: "20:00",
		teams:    [2][]string{teamWith(3, "Jinx"), teamWith(3, "Zed")},
		omit:     map[Field]bool{FieldTeamColumn: true},
	}}))

	_, err := Default.Build(context.Background(), doc, testPlayer(RoleBottom, 1), extractionTime)
	require.ErrorIs(t, err, ErrRowMalformed)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, FieldTeamColumn, rowErr.Field)
}

func TestBuildMirrorMatch(t *testing.T) {
	doc := parse(t, renderPage([]fixtureRow{{
		ally:     "Yasuo",
		status:   "Victory",
		duration: "27:27",
		teams:    [2][]string{teamWith(2, "Yasuo"), teamWith(2, "Yasuo")},
	}}))

	session, err := Default.Build(context.Background(), doc, testPlayer(RoleMid, 1), extractionTime)
	require.NoError(t, err)
	require.Equal(t, "Yasuo", session.Games[0].EnemyChamp)
}
