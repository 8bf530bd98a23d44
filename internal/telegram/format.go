package telegram

import (
	"fmt"
	"html"
	"strings"

	"go-hh-hunter/internal/models"
	"go-hh-hunter/internal/scraper"
)

// FormatVacancy renders one vacancy as a Telegram HTML message.
// Salary, address and experience lines appear only when the field is
// non-empty.
func FormatVacancy(v scraper.Vacancy) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(v.Title)))
	sb.WriteString(fmt.Sprintf("🏢 <b>Компания:</b> %s\n", html.EscapeString(v.Company)))

	if v.Salary != "" {
		sb.WriteString(fmt.Sprintf("💰 <b>Зарплата:</b> %s\n", html.EscapeString(v.Salary)))
	}
	if v.Address != "" {
		sb.WriteString(fmt.Sprintf("📍 <b>Адрес:</b> %s\n", html.EscapeString(v.Address)))
	}
	if v.Experience != "" {
		sb.WriteString(fmt.Sprintf("📊 <b>Опыт:</b> %s\n", html.EscapeString(v.Experience)))
	}

	sb.WriteString(fmt.Sprintf("🔗 <a href='%s'>Ссылка на вакансию</a>", v.URL))
	return sb.String()
}

// FormatStatistics renders the daily summary: today's count with a trend
// against yesterday, the all-time total and the ranked top companies.
func FormatStatistics(stats *models.DailyStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 <b>Статистика за %s</b>\n\n", stats.Date))

	diff := stats.TotalToday - stats.TotalYesterday
	var trend string
	switch {
	case diff > 0:
		trend = fmt.Sprintf("📈 +%d", diff)
	case diff < 0:
		trend = fmt.Sprintf("📉 %d", diff)
	default:
		trend = "➡️ 0"
	}

	sb.WriteString(fmt.Sprintf("<b>Сегодня найдено:</b> %d вакансий %s\n", stats.TotalToday, trend))
	sb.WriteString(fmt.Sprintf("<b>Всего в базе:</b> %d вакансий\n\n", stats.TotalAll))

	if len(stats.TopCompanies) > 0 {
		sb.WriteString("<b>🏢 Топ компаний сегодня:</b>\n")
		for i, c := range stats.TopCompanies {
			sb.WriteString(fmt.Sprintf("%d. %s: %d вакансий\n", i+1, html.EscapeString(c.Company), c.Count))
		}
	} else {
		sb.WriteString("<i>Сегодня вакансий не найдено</i>\n")
	}

	sb.WriteString(fmt.Sprintf("\n⏰ Отчет сгенерирован: %s", models.Now().Format("15:04")))
	return sb.String()
}
