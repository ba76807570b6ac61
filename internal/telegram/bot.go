package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"brainsync/internal/prompt"
	"brainsync/internal/session"
)

// Bot is the Telegram front end. Plain text goes through the qa
// template; "history" (or /history) replies with the summary.
type Bot struct {
	api     *tgbotapi.BotAPI
	s       sender
	session *session.Session
}

func New(botToken string, sess *session.Session) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:     api,
		s:       botAPISender{api: api},
		session: sess,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleIncomingMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	log.Printf("Incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	text := strings.TrimSpace(msg.Text)
	if strings.EqualFold(text, "history") || strings.EqualFold(text, "/history") {
		b.sendMessage(msg.Chat.ID, b.session.Summary())
		return
	}

	answer, ok := b.session.Ask(ctx, text, prompt.ModeQA)
	if !ok {
		b.sendMessage(msg.Chat.ID, "❌ "+answer)
		return
	}
	b.sendMessage(msg.Chat.ID, answer)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
