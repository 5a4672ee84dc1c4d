package matchhistory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input    string
		expected Role
	}{
		{"top", RoleTop},
		{"Jungle", RoleJungle},
		{" MID ", RoleMid},
		{"bottom", RoleBottom},
		{"support", RoleSupport},
	}
	for _, test := range cases {
		role, err := ParseRole(test.input)
		require.NoError(t, err, test.input)
		require.Equal(t, test.expected, role)
		require.Equal(t, int(test.expected), role.Index())
	}
}

func TestParseRoleSuggestion(t *testing.T) {
	_, err := ParseRole("suport")
	require.ErrorContains(t, err, `did you mean "support"`)

	_, err = ParseRole("jungel")
	require.ErrorContains(t, err, `did you mean "jungle"`)

	_, err = ParseRole("xyz")
	require.ErrorContains(t, err, "expected one of top/jungle/mid/bottom/support")
}

func TestRoleText(t *testing.T) {
	encoded, err := json.Marshal(Player{Role: RoleBottom})
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"role":"bottom"`)

	var p Player
	require.NoError(t, json.Unmarshal([]byte(`{"role":"Support","block_game_count":4}`), &p))
	require.Equal(t, RoleSupport, p.Role)
	require.Equal(t, uint8(4), p.BlockGameCount)

	require.Error(t, json.Unmarshal([]byte(`{"role":"carry"}`), &p))

	_, err = json.Marshal(Player{Role: Role(7)})
	require.Error(t, err)
	require.Equal(t, "role(7)", Role(7).String())
	require.Equal(t, []string{"top", "jungle", "mid", "bottom", "support"}, RoleNames())
}

func TestKda(t *testing.T) {
	require.Equal(t, "4/0/6", Kda{4, 0, 6}.String())
	require.InDelta(t, 10.0, Kda{4, 0, 6}.Ratio(), 1e-9)
	require.InDelta(t, 2.5, Kda{2, 2, 3}.Ratio(), 1e-9)
}
