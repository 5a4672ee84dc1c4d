package matchhistory

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Kda struct {
	Kills   uint8 `json:"kills"`
	Deaths  uint8 `json:"deaths"`
	Assists uint8 `json:"assists"`
}

func (k Kda) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Kills, k.Deaths, k.Assists)
}

// Ratio is (kills + assists) / deaths, a deathless game counts deaths as 1.
func (k Kda) Ratio() float64 {
	deaths := float64(k.Deaths)
	if deaths == 0 {
		deaths = 1
	}
	return (float64(k.Kills) + float64(k.Assists)) / deaths
}

// Game is one extracted match row. Num is the 1-based chronological position
// within the requested block.
type Game struct {
	Num        uint8  `json:"num"`
	AllyChamp  string `json:"ally_champ"`
	EnemyChamp string `json:"enemy_champ"`
	Win        bool   `json:"win"`
	Kda        Kda    `json:"kda"`
	// kept as the page shows it, ex. "32:10"
	Duration string `json:"duration"`
}

// Session is the dated output of one extraction run, games are oldest first.
type Session struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// FormatDate renders a session date as day/month-year without zero padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d-%d", t.Day(), int(t.Month()), t.Year())
}

// Player describes whose history to read and how much of it.
type Player struct {
	Username       string `json:"username"`
	Tag            string `json:"tag"`
	Region         string `json:"region"`
	Role           Role   `json:"role"`
	BlockGameCount uint8  `json:"block_game_count"`
}

var ErrInvalidPlayer = errors.New("invalid player")

func (p Player) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Username) == "" {
		problems = append(problems, "username is empty")
	}
	if strings.TrimSpace(p.Tag) == "" {
		problems = append(problems, "tag is empty")
	}
	if strings.TrimSpace(p.Region) == "" {
		problems = append(problems, "region is empty")
	}
	if !p.Role.Valid() {
		problems = append(problems, fmt.Sprintf("role %d is not a known role", p.Role))
	}
	if p.BlockGameCount == 0 {
		problems = append(problems, "block_game_count must be between 1 and 255")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, strings.Join(problems, ", "))
	}
	return nil
}
