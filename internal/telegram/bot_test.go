package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"brainsync/internal/llm"
	"brainsync/internal/session"
)

type fakeSender struct{ sent []string }

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	sw := c.(tgbotapi.MessageConfig)
	f.sent = append(f.sent, sw.Text)
	return tgbotapi.Message{}, nil
}

type fakeLLM struct {
	resp llm.Response
	err  error
}

func (f fakeLLM) Generate(ctx context.Context, p string) (llm.Response, error) {
	return f.resp, f.err
}

func incoming(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: 42, UserName: "tester"},
		Chat: &tgbotapi.Chat{ID: 42},
	}
}

func TestHandleIncomingMessage_RepliesWithAnswer(t *testing.T) {
	fs := &fakeSender{}
	b := &Bot{s: fs, session: session.New(fakeLLM{resp: llm.Response{Content: "the answer"}})}

	b.handleIncomingMessage(context.Background(), incoming("What is AI?"))

	if len(fs.sent) != 1 || fs.sent[0] != "the answer" {
		t.Fatalf("unexpected sent: %+v", fs.sent)
	}
	if b.session.Interactions() != 1 {
		t.Fatalf("successful ask must append a record")
	}
}

func TestHandleIncomingMessage_HistoryCommand(t *testing.T) {
	fs := &fakeSender{}
	b := &Bot{s: fs, session: session.New(fakeLLM{})}

	b.handleIncomingMessage(context.Background(), incoming("history"))

	if len(fs.sent) != 1 || fs.sent[0] != "No conversation history available." {
		t.Fatalf("unexpected sent: %+v", fs.sent)
	}
	if b.session.Interactions() != 0 {
		t.Fatalf("history command must not append a record")
	}
}

func TestHandleIncomingMessage_GenerationFailure(t *testing.T) {
	fs := &fakeSender{}
	b := &Bot{s: fs, session: session.New(fakeLLM{err: errors.New("network down")})}

	b.handleIncomingMessage(context.Background(), incoming("What is AI?"))

	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "network down") {
		t.Fatalf("failure must surface the error: %+v", fs.sent)
	}
	if b.session.Interactions() != 0 {
		t.Fatalf("failed ask must not append a record")
	}
}
