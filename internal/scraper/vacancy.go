// Vacancy record produced by the parser and consumed by the
// filter, store and telegram layers.

package scraper

type Vacancy struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Company     string `json:"company"`
	Salary      string `json:"salary"`
	Address     string `json:"address"`
	Experience  string `json:"experience"`
	Description string `json:"description"` // not present on serp pages, reserved for detail scraping
}
