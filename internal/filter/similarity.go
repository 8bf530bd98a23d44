// Fuzzy relevance scoring of vacancies against the configured search text.

package filter

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"go-hh-hunter/internal/scraper"
)

// Score computes the partial-ratio similarity (0..100) between the search
// text and each of the vacancy's title, company and description, and returns
// the maximum. A vacancy can be relevant through its title alone or through
// its company name alone, so requiring all fields to match would lose hits.
//
// Convention for the degenerate cases: an empty search text scores 0, and an
// empty field contributes 0; an empty string never counts as a match.
func Score(searchText string, v scraper.Vacancy) int {
	query := strings.ToLower(strings.TrimSpace(searchText))
	if query == "" {
		return 0
	}

	best := 0
	for _, field := range []string{v.Title, v.Company, v.Description} {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		if s := fuzzy.PartialRatio(query, field); s > best {
			best = s
		}
	}
	return best
}

// SimilarityCheck reports whether the vacancy clears the similarity
// threshold, along with the score itself. A score of 0 never passes,
// whatever the threshold.
func SimilarityCheck(searchText string, v scraper.Vacancy, threshold int) (bool, int) {
	score := Score(searchText, v)
	return score > 0 && score >= threshold, score
}
