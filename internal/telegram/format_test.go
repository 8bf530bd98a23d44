package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-hh-hunter/internal/models"
	"go-hh-hunter/internal/scraper"
)

func TestFormatVacancyAllFields(t *testing.T) {
	msg := FormatVacancy(scraper.Vacancy{
		Title:      "Python Developer",
		URL:        "https://hh.ru/vacancy/42",
		Company:    "Acme Ltd",
		Salary:     "от 3 000 Br",
		Address:    "Минск",
		Experience: "1–3 года",
	})

	assert.Contains(t, msg, "<b>Python Developer</b>")
	assert.Contains(t, msg, "Компания:</b> Acme Ltd")
	assert.Contains(t, msg, "Зарплата:</b> от 3 000 Br")
	assert.Contains(t, msg, "Адрес:</b> Минск")
	assert.Contains(t, msg, "Опыт:</b> 1–3 года")
	assert.Contains(t, msg, `<a href='https://hh.ru/vacancy/42'>`)
}

func TestFormatVacancyOmitsEmptyFields(t *testing.T) {
	msg := FormatVacancy(scraper.Vacancy{
		Title: "Go Developer",
		URL:   "https://hh.ru/vacancy/43",
	})

	assert.NotContains(t, msg, "Зарплата")
	assert.NotContains(t, msg, "Адрес")
	assert.NotContains(t, msg, "Опыт")
	assert.Contains(t, msg, "Ссылка на вакансию")
}

func TestFormatVacancyEscapesHTML(t *testing.T) {
	msg := FormatVacancy(scraper.Vacancy{
		Title:   "C++ & Go <Developer>",
		URL:     "https://hh.ru/vacancy/44",
		Company: "A&B",
	})

	assert.Contains(t, msg, "C++ &amp; Go &lt;Developer&gt;")
	assert.Contains(t, msg, "A&amp;B")
}

func TestFormatStatisticsPositiveTrend(t *testing.T) {
	msg := FormatStatistics(&models.DailyStats{
		Date:           "15.01.2026",
		TotalToday:     8,
		TotalYesterday: 5,
		TotalAll:       120,
		TopCompanies: []models.CompanyCount{
			{Company: "Acme", Count: 3},
			{Company: "Globex", Count: 2},
		},
	})

	assert.Contains(t, msg, "Статистика за 15.01.2026")
	assert.Contains(t, msg, "📈 +3")
	assert.Contains(t, msg, "Сегодня найдено:</b> 8")
	assert.Contains(t, msg, "Всего в базе:</b> 120")
	assert.Contains(t, msg, "1. Acme: 3 вакансий")
	assert.Contains(t, msg, "2. Globex: 2 вакансий")
}

func TestFormatStatisticsFlatTrend(t *testing.T) {
	msg := FormatStatistics(&models.DailyStats{
		TotalToday:     5,
		TotalYesterday: 5,
	})

	assert.Contains(t, msg, "➡️ 0")
}

func TestFormatStatisticsNegativeTrend(t *testing.T) {
	msg := FormatStatistics(&models.DailyStats{
		TotalToday:     3,
		TotalYesterday: 5,
	})

	assert.Contains(t, msg, "📉 -2")
}

func TestFormatStatisticsNoCompanies(t *testing.T) {
	msg := FormatStatistics(&models.DailyStats{})

	assert.Contains(t, msg, "Сегодня вакансий не найдено")
	assert.NotContains(t, msg, "Топ компаний")
}
