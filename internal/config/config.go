package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	ModelName        string      `env:"MODEL_NAME" envDefault:"gemini-1.5-flash"`
	Temperature      float64     `env:"TEMPERATURE" envDefault:"0.5"`
	MaxTokens        int         `env:"MAX_TOKENS" envDefault:"1000"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Summary window shown in the daily report
	MemoryWindow int `env:"MEMORY_WINDOW" envDefault:"10"`

	// Front ends
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`

	// Display
	AppTitle       string `env:"APP_TITLE" envDefault:"BrainSync Pro"`
	AppSubtitle    string `env:"APP_SUBTITLE" envDefault:"Elite AI Intelligence Platform"`
	AppDescription string `env:"APP_DESCRIPTION" envDefault:"Next-generation AI assistant powered by advanced neural networks and cutting-edge language models"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
