package matchhistory

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
)

// Role is the ordinal position of a champion within a team column.
type Role uint8

const (
	RoleTop Role = iota
	RoleJungle
	RoleMid
	RoleBottom
	RoleSupport
)

var roleNames = []string{"top", "jungle", "mid", "bottom", "support"}

func RoleNames() []string {
	return append([]string(nil), roleNames...)
}

func (r Role) Valid() bool {
	return int(r) < len(roleNames)
}

// Index is the role slot inside a team column.
func (r Role) Index() int {
	return int(r)
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roleNames[r]
}

// minimum Jaro-Winkler similarity before a misspelled role gets a suggestion
const roleSuggestionThreshold = 0.7

// ParseRole accepts a role name in any case, unknown names get the closest
// known name as a suggestion in the error.
func ParseRole(input string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	for i, known := range roleNames {
		if name == known {
			return Role(i), nil
		}
	}

	var best string
	var bestSimilarity float64
	for _, known := range roleNames {
		similarity := matchr.JaroWinkler(name, known, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = known
		}
	}
	if bestSimilarity >= roleSuggestionThreshold {
		return 0, fmt.Errorf("unknown role %q, did you mean %q?", input, best)
	}
	return 0, fmt.Errorf("unknown role %q, expected one of %s", input, strings.Join(roleNames, "/"))
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", r)
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
