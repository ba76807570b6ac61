package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"brainsync/internal/llm"
	"brainsync/internal/prompt"
)

type fakeLLM struct {
	resp    llm.Response
	err     error
	prompts []string
}

func (f *fakeLLM) Generate(ctx context.Context, p string) (llm.Response, error) {
	f.prompts = append(f.prompts, p)
	return f.resp, f.err
}

func TestAskEmptyInput(t *testing.T) {
	f := &fakeLLM{}
	s := New(f)

	answer, ok := s.Ask(context.Background(), "", prompt.ModeQA)
	if ok {
		t.Fatalf("empty input must not succeed")
	}
	if answer != "Please enter a valid question." {
		t.Fatalf("unexpected empty-input message: %q", answer)
	}
	if len(f.prompts) != 0 {
		t.Fatalf("empty input must not reach the llm client: %+v", f.prompts)
	}
	if s.Interactions() != 0 {
		t.Fatalf("history must be unchanged, got %d", s.Interactions())
	}
}

func TestAskWhitespaceOnlyInput(t *testing.T) {
	f := &fakeLLM{}
	s := New(f)

	answer, ok := s.Ask(context.Background(), "   ", prompt.ModeCreative)
	if ok || answer != "Please enter a valid question." {
		t.Fatalf("whitespace-only input must behave like empty: ok=%v answer=%q", ok, answer)
	}
	if len(f.prompts) != 0 || s.Interactions() != 0 {
		t.Fatalf("whitespace input must have no side effects")
	}
}

func TestAskSuccessAppendsRecord(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "AI is a field of computer science.", Model: "test-model"}}
	s := New(f)

	answer, ok := s.Ask(context.Background(), "What is AI?", prompt.ModeQA)
	if !ok {
		t.Fatalf("expected success, got %q", answer)
	}
	if answer != "AI is a field of computer science." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if s.Interactions() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Interactions())
	}

	rec := s.History()[0]
	if rec.Mode != prompt.ModeQA {
		t.Fatalf("unexpected record mode: %q", rec.Mode)
	}
	if rec.Question != "What is AI?" {
		t.Fatalf("record must keep the literal question, got %q", rec.Question)
	}
	if rec.Answer != "AI is a field of computer science." {
		t.Fatalf("unexpected record answer: %q", rec.Answer)
	}
	if rec.Timestamp == "" {
		t.Fatalf("record timestamp not set")
	}
	if rec.ProcessingTime < 0 {
		t.Fatalf("negative processing time: %v", rec.ProcessingTime)
	}
}

func TestAskFillsModeTemplate(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "ok"}}
	s := New(f)

	s.Ask(context.Background(), "Write a story", prompt.ModeCreative)
	s.Ask(context.Background(), "Remote work", prompt.ModeAnalysis)

	if len(f.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(f.prompts))
	}
	if !strings.Contains(f.prompts[0], "engaging and creative") {
		t.Fatalf("creative prompt missing style constant: %q", f.prompts[0])
	}
	if !strings.Contains(f.prompts[1], "comprehensive analysis") {
		t.Fatalf("analysis prompt missing focus constant: %q", f.prompts[1])
	}
}

func TestAskGenerationFailure(t *testing.T) {
	f := &fakeLLM{err: errors.New("quota exceeded")}
	s := New(f)

	answer, ok := s.Ask(context.Background(), "What is AI?", prompt.ModeQA)
	if ok {
		t.Fatalf("generation failure must not succeed")
	}
	if !strings.Contains(answer, "Error processing question:") || !strings.Contains(answer, "quota exceeded") {
		t.Fatalf("unexpected failure message: %q", answer)
	}
	if s.Interactions() != 0 {
		t.Fatalf("failed ask must not append a record, got %d", s.Interactions())
	}
}

func TestHistoryLengthEqualsSuccessfulAsks(t *testing.T) {
	f := &fakeLLM{resp: llm.Response{Content: "ok"}}
	s := New(f)

	for i := 0; i < 3; i++ {
		s.Ask(context.Background(), "q", prompt.ModeQA)
	}
	s.Ask(context.Background(), "", prompt.ModeQA)
	f.err = errors.New("boom")
	s.Ask(context.Background(), "q", prompt.ModeQA)

	if s.Interactions() != 3 {
		t.Fatalf("history length must equal successful asks: got %d", s.Interactions())
	}
}

func TestSummaryEmptyHistory(t *testing.T) {
	s := New(&fakeLLM{})
	if got := s.Summary(); got != "No conversation history available." {
		t.Fatalf("unexpected empty summary: %q", got)
	}
}
