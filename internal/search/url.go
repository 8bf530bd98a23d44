// Package search builds hh.ru search result URLs and maps the
// human-facing region and experience inputs to hh.ru query tokens.
package search

import (
	"fmt"
	"strings"
)

const baseURL = "https://hh.ru/search/vacancy?"

// itemsOnPage is what we ask hh.ru for; the serp commonly renders 20 per
// page regardless, which is why the poll loop uses its own page-size stop.
const itemsOnPage = 50

// BuildURL assembles the search URL for a zero-based page. Empty excluded
// text and an empty area list are omitted; the remaining parameters mirror
// what the hh.ru search form submits.
func BuildURL(text, excludedText string, areaIDs []int, experience string, page int) string {
	params := []string{
		"text=" + strings.ReplaceAll(text, " ", "+"),
	}
	if excludedText != "" {
		params = append(params, "excluded_text="+excludedText)
	}
	for _, id := range areaIDs {
		params = append(params, fmt.Sprintf("area=%d", id))
	}
	params = append(params,
		"experience="+experience,
		"order_by=relevance",
		"search_period=0",
		fmt.Sprintf("items_on_page=%d", itemsOnPage),
		"L_save_area=true",
		fmt.Sprintf("page=%d", page),
	)
	return baseURL + strings.Join(params, "&")
}

// NormalizeExcluded turns a comma- or space-separated exclusion list into
// the plus-joined form hh.ru expects in excluded_text.
func NormalizeExcluded(raw string) string {
	words := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	return strings.Join(words, "+")
}
