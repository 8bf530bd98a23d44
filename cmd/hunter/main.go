package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-hh-hunter/internal/config"
	"go-hh-hunter/internal/database"
	"go-hh-hunter/internal/hunter"
	"go-hh-hunter/internal/scheduler"
	"go-hh-hunter/internal/scraper"
	"go-hh-hunter/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Search: %q, interval: %d min", cfg.SearchText, cfg.IntervalMinutes)

	//init telegram bot
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
	}
	log.Println("🤖 Telegram Bot initialized.")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	//connect the seen-store; a missing or unreachable database is not fatal,
	//the hunter then runs without dedup history or statistics
	var repo *database.Repository
	if cfg.DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL not set, running without history!")
	} else {
		repo, err = database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Could not connect to DB, running without history: %v", err)
			repo = nil
		} else if err := repo.EnsureSchema(ctx); err != nil {
			log.Printf("⚠️ Could not create schema: %v", err)
		}
	}
	defer repo.Close()

	runner := hunter.NewRunner(cfg, scraper.NewPageFetcher(), repo, bot)

	log.Println("🚀 Starting vacancy monitoring...")

	//first pass right away, then on schedule
	runner.RunCycle(ctx)
	if cfg.DailyStats {
		runner.ReportStatistics(ctx)
	}

	sched := scheduler.New()
	if err := sched.Every(cfg.IntervalMinutes, func() { runner.RunCycle(ctx) }); err != nil {
		log.Fatalf("❌ Failed to schedule poll cycle: %v", err)
	}
	if cfg.DailyStats {
		if err := sched.DailyAt(cfg.StatsTime, func() { runner.ReportStatistics(ctx) }); err != nil {
			log.Fatalf("❌ Failed to schedule statistics: %v", err)
		}
		log.Printf("📊 Daily statistics scheduled at %s", cfg.StatsTime)
	}
	sched.Start()

	<-ctx.Done()
	log.Println("👋 Shutting down...")
	sched.Stop()
}
