package models

import (
	"time"
)

// hh.ru operates on Moscow time; daily roll-ups use the same fixed UTC+3 day boundary.
var ReportLocation = time.FixedZone("UTC+3", 3*60*60)

// Now returns the current time in the reporting timezone.
func Now() time.Time {
	return time.Now().In(ReportLocation)
}

// SentVacancy is one row of the sent_vacancies table: a vacancy that was
// delivered to the chat and must never be sent again.
type SentVacancy struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Company  string    `json:"company"`
	SentDate time.Time `json:"sent_date"`
}

// CompanyCount is one entry of the daily top-companies ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// DailyStats is recomputed on every report trigger, never stored.
type DailyStats struct {
	Date           string         `json:"date"` // DD.MM.YYYY in ReportLocation
	TotalToday     int            `json:"total_today"`
	TotalYesterday int            `json:"total_yesterday"`
	TotalAll       int            `json:"total_all"`
	TopCompanies   []CompanyCount `json:"top_companies"`
}
