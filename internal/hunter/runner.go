// Package hunter drives the poll cycle: fetch pages, parse, score,
// dedupe, notify, mark sent. It also owns the daily statistics trigger.
package hunter

import (
	"context"
	"log"
	"sync"
	"time"

	"go-hh-hunter/internal/config"
	"go-hh-hunter/internal/filter"
	"go-hh-hunter/internal/models"
	"go-hh-hunter/internal/scraper"
	"go-hh-hunter/internal/search"
)

// pageSize is how many vacancies hh.ru renders per serp page; a shorter
// page means the last page was reached.
const pageSize = 20

// Fetcher downloads one search results page.
type Fetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// Store is the seen-set of already delivered vacancies.
type Store interface {
	IsSent(ctx context.Context, url string) bool
	MarkSent(ctx context.Context, url, title, company string)
	CollectStats(ctx context.Context) (*models.DailyStats, error)
}

// Notifier delivers messages to the chat. Both methods report success as a
// bool; transport failures never escape a cycle.
type Notifier interface {
	SendVacancy(v scraper.Vacancy) bool
	SendStatistics(stats *models.DailyStats) bool
}

// Runner executes poll and statistics cycles. The mutex keeps cycles
// strictly sequential even when the interval trigger and the daily trigger
// fire close together.
type Runner struct {
	cfg      *config.Config
	fetcher  Fetcher
	store    Store
	notifier Notifier

	mu        sync.Mutex
	pagePause time.Duration
}

func NewRunner(cfg *config.Config, fetcher Fetcher, store Store, notifier Notifier) *Runner {
	return &Runner{
		cfg:      cfg,
		fetcher:  fetcher,
		store:    store,
		notifier: notifier,
		//courtesy pause between page fetches, hh.ru must not be hammered
		pagePause: time.Second,
	}
}

// RunCycle performs one full paginated pass over the current search
// results. The cycle stops on a fetch failure, an empty page, or a page
// shorter than pageSize. Finding nothing new is a normal outcome.
func (r *Runner) RunCycle(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Println("🔍 Searching vacancies...")
	newFound := 0

	for page := 0; ; page++ {
		url := search.BuildURL(
			r.cfg.SearchText,
			r.cfg.ExcludedText,
			r.cfg.AreaIDs,
			r.cfg.ExperienceBucket,
			page,
		)

		html, err := r.fetcher.FetchPage(ctx, url)
		if err != nil {
			log.Printf("⚠️ Page %d fetch failed: %v", page, err)
			break
		}

		vacancies := scraper.ParseVacancies(html)
		if len(vacancies) == 0 {
			log.Printf("No vacancies found on page %d", page)
			break
		}
		log.Printf("Found %d vacancies on page %d", len(vacancies), page)

		newFound += r.processPage(ctx, vacancies)

		//fewer than a full page means the last page was reached
		if len(vacancies) < pageSize {
			log.Println("Last page reached")
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(r.pagePause):
		}
	}

	if newFound == 0 {
		log.Println("No new matching vacancies this cycle")
	} else {
		log.Printf("✅ Sent %d new vacancies", newFound)
	}
}

// processPage scores every vacancy of one page and delivers the new
// matches. A vacancy is marked sent only after a successful delivery, so a
// failed send stays eligible for the next cycle.
func (r *Runner) processPage(ctx context.Context, vacancies []scraper.Vacancy) int {
	sent := 0
	for _, v := range vacancies {
		matched, score := filter.SimilarityCheck(r.cfg.SearchText, v, r.cfg.MinSimilarity)
		if !matched {
			log.Printf("Not a match: %s (similarity: %d%%)", v.Title, score)
			continue
		}

		if r.store.IsSent(ctx, v.URL) {
			log.Printf("Already sent: %s (similarity: %d%%)", v.Title, score)
			continue
		}

		log.Printf("🎯 Matching vacancy: %s (similarity: %d%%)", v.Title, score)
		if !r.notifier.SendVacancy(v) {
			log.Printf("⚠️ Delivery failed, will retry next cycle: %s", v.Title)
			continue
		}

		r.store.MarkSent(ctx, v.URL, v.Title, v.Company)
		sent++
	}
	return sent
}

// ReportStatistics runs one collect-format-deliver statistics cycle.
// When collection fails (typically storage unreachable) no report is sent.
func (r *Runner) ReportStatistics(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, err := r.store.CollectStats(ctx)
	if err != nil {
		log.Printf("⚠️ Statistics unavailable: %v", err)
		return
	}

	if !r.notifier.SendStatistics(stats) {
		log.Println("⚠️ Failed to deliver statistics report")
		return
	}
	log.Printf("📊 Daily statistics sent at %s", models.Now().Format("15:04"))
}
