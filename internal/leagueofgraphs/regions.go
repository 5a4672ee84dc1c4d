package leagueofgraphs

import (
	"fmt"
	"slices"
	"strings"
)

// Regions are the region segments leagueofgraphs accepts in summoner urls.
var Regions = []string{
	"br", "eune", "euw", "jp", "kr", "lan", "las", "me",
	"na", "oce", "ph", "ru", "sg", "th", "tr", "tw", "vn",
}

func ValidateRegion(region string) error {
	if slices.Contains(Regions, region) {
		return nil
	}
	return fmt.Errorf("unknown region %q, expected one of %s", region, strings.Join(Regions, "/"))
}
