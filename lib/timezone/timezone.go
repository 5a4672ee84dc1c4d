package timezone

import (
	"fmt"
	"time"
)

var Location = time.Local

// SetLocation changes the location Now reports in, an empty name keeps the
// system's local timezone. Journal files are bucketed by
// <time.Time>.Year()/Month()/Day() so a session played past midnight in
// another timezone would otherwise land in the wrong file.
func SetLocation(name string) error {
	if name == "" {
		Location = time.Local
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", name, err)
	}
	Location = loc
	return nil
}

func Now() time.Time {
	return time.Now().In(Location)
}
