package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gratefultolord/welcome_review_bot/internal/bot"
	"github.com/gratefultolord/welcome_review_bot/internal/config"
	"github.com/gratefultolord/welcome_review_bot/internal/db"
	"github.com/gratefultolord/welcome_review_bot/internal/files"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	database, err := db.New(cfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	err = db.RunMigrations(database.Conn, database.MigrationScript())
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Error creating telegram bot: %v", err)
	}

	welcomeRepo := db.NewWelcomePostRepository(database.Conn)
	reviewRepo := db.NewReviewRepository(database.Conn)

	fileService, err := files.NewFileService(botAPI, cfg.MediaDir)
	if err != nil {
		log.Fatalf("Error creating FileService: %v", err)
	}

	botService := bot.New(
		botAPI,
		welcomeRepo,
		reviewRepo,
		fileService,
		cfg.AdminIDs,
	)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	log.Printf("Bot started as @%s", botAPI.Self.UserName)

	botService.Start(botAPI.GetUpdatesChan(u))
}
