package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-hh-hunter/internal/models"
)

// Repository is the durable seen-set of vacancies already delivered to the
// chat. A nil *Repository is a valid degraded store: IsSent always reports
// false, MarkSent is a no-op and CollectStats fails; the hunter keeps
// sending notifications, just without history.
type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r != nil && r.db != nil {
		r.db.Close()
	}
}

// EnsureSchema creates the sent_vacancies table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r == nil {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sent_vacancies (
			id SERIAL PRIMARY KEY,
			url VARCHAR(500) UNIQUE NOT NULL,
			title VARCHAR(500),
			company VARCHAR(255),
			sent_date TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create sent_vacancies: %w", err)
	}
	return nil
}

// IsSent reports whether the URL was already delivered. Storage failures
// degrade to false: an unknown vacancy may be sent twice, but a down
// database must never silence all notifications.
func (r *Repository) IsSent(ctx context.Context, url string) bool {
	if r == nil {
		return false
	}

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sent_vacancies WHERE url = $1)`, url).Scan(&exists)
	if err != nil {
		log.Printf("⚠️ Failed to check vacancy in DB: %v", err)
		return false
	}
	return exists
}

// MarkSent records a delivered vacancy. Inserting a URL that is already
// present is a silent no-op; other storage failures are logged and dropped,
// so a vacancy that was delivered but not recorded may be resent later.
func (r *Repository) MarkSent(ctx context.Context, url, title, company string) {
	if r == nil {
		return
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO sent_vacancies (url, title, company)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (url) DO NOTHING`,
		url, title, company)
	if err != nil {
		log.Printf("⚠️ Failed to record sent vacancy: %v", err)
		return
	}
	log.Printf("💾 Vacancy recorded as sent: %s", title)
}

// CollectStats aggregates the daily statistics: today's and yesterday's
// insert counts, the all-time total and today's top-5 companies. Unlike
// IsSent there is no zero-value fallback here: a failed collection means
// no report gets sent at all.
func (r *Repository) CollectStats(ctx context.Context) (*models.DailyStats, error) {
	if r == nil {
		return nil, fmt.Errorf("no database connection, statistics unavailable")
	}

	stats := &models.DailyStats{
		Date: models.Now().Format("02.01.2006"),
	}

	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM sent_vacancies WHERE sent_date::date = CURRENT_DATE`).
		Scan(&stats.TotalToday)
	if err != nil {
		return nil, fmt.Errorf("count today: %w", err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT count(*) FROM sent_vacancies WHERE sent_date::date = CURRENT_DATE - 1`).
		Scan(&stats.TotalYesterday)
	if err != nil {
		return nil, fmt.Errorf("count yesterday: %w", err)
	}

	err = r.db.QueryRow(ctx, `SELECT count(*) FROM sent_vacancies`).Scan(&stats.TotalAll)
	if err != nil {
		return nil, fmt.Errorf("count total: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT company, count(*) AS cnt
		 FROM sent_vacancies
		 WHERE sent_date::date = CURRENT_DATE
		 GROUP BY company
		 ORDER BY cnt DESC, min(id)
		 LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("top companies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.CompanyCount
		if err := rows.Scan(&c.Company, &c.Count); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		stats.TopCompanies = append(stats.TopCompanies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top companies rows: %w", err)
	}

	return stats, nil
}
