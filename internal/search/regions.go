package search

import (
	"fmt"
	"strings"
)

// Regions maps lowercase region names to hh.ru area IDs.
// Static table; hh.ru area IDs do not change.
var Regions = map[string]int{
	"россия":      113,
	"украина":     5,
	"казахстан":   40,
	"азербайджан": 9,
	"беларусь":    16,
	"грузия":      28,
	"другие":      1001,
	"кыргызстан":  48,
	"узбекистан":  97,
}

// ResolveRegions maps region names to area IDs, preserving input order.
// Unknown names produce an error listing every name that failed to resolve.
func ResolveRegions(names []string) ([]int, error) {
	var ids []int
	var unknown []string

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		id, ok := Regions[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		ids = append(ids, id)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown regions: %s", strings.Join(unknown, ", "))
	}
	return ids, nil
}
