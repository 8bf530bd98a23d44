package scraper

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const siteBaseURL = "https://hh.ru"

// ParseVacancies extracts vacancy records from a search results page.
// Blocks without a title are skipped, optional fields resolve to empty
// strings, and a single bad block never aborts the rest of the page.
// Empty or unparseable markup yields an empty slice, never an error.
func ParseVacancies(html string) []Vacancy {
	if strings.TrimSpace(html) == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("⚠️ Failed to parse page HTML: %v", err)
		return nil
	}

	var vacancies []Vacancy

	doc.Find(`[data-qa="vacancy-serp__vacancy"]`).Each(func(_ int, block *goquery.Selection) {
		titleTag := block.Find(`[data-qa="serp-item__title"]`).First()
		if titleTag.Length() == 0 {
			return
		}
		title := strings.TrimSpace(titleTag.Text())
		if title == "" {
			return
		}

		href, _ := titleTag.Attr("href")
		href = NormalizeURL(href)
		if href == "" {
			log.Printf("⚠️ Vacancy block %q has no link, skipping", title)
			return
		}

		vacancies = append(vacancies, Vacancy{
			Title:      title,
			URL:        href,
			Company:    textOf(block, `[data-qa="vacancy-serp__vacancy-employer"]`),
			Salary:     salaryOf(block),
			Address:    textOf(block, `[data-qa="vacancy-serp__vacancy-address"]`),
			Experience: textOf(block, `[data-qa*="vacancy-work-experience"]`),
		})
	})

	return vacancies
}

// NormalizeURL resolves a vacancy link to a canonical absolute URL:
// relative links get the site prefix, the query string is dropped.
// The normalized URL is the dedup key, so two serp appearances of the
// same vacancy must always normalize identically.
func NormalizeURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if i := strings.IndexByte(href, '?'); i >= 0 {
		href = href[:i]
	}
	if !strings.Contains(href, "hh.ru") {
		href = siteBaseURL + href
	}
	return href
}

func textOf(block *goquery.Selection, selector string) string {
	return strings.TrimSpace(block.Find(selector).First().Text())
}

// salaryOf scans the generic typography spans for one that looks like a
// salary. hh.ru has no stable data-qa attribute for salary, so we match
// on currency markers the way the serp renders them.
func salaryOf(block *goquery.Selection) string {
	salary := ""
	block.Find(".magritte-text_typography-label-1-regular___pi3R-_4-2-3").EachWithBreak(func(_ int, tag *goquery.Selection) bool {
		text := strings.TrimSpace(tag.Text())
		if strings.Contains(text, "Br") || strings.Contains(strings.ToLower(text), "руб") {
			salary = text
			return false
		}
		return true
	})
	return salary
}
