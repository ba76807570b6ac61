package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"brainsync/internal/config"
	"brainsync/internal/llm"
	"brainsync/internal/session"
	"brainsync/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required for the bot front end")
	}

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.ModelName)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	bot, err := telegram.New(cfg.TelegramBotToken, session.New(llmClient))
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	log.Printf("🚀 %s bot ready [provider=%s, model=%s]", cfg.AppTitle, cfg.LLMProvider, cfg.ModelName)
	bot.Start(context.Background())
}
