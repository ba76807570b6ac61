// Package session is the request router: it validates input, fills the
// selected prompt template, delegates generation to the model client
// and appends successful exchanges to the history log.
package session

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"brainsync/internal/history"
	"brainsync/internal/llm"
	"brainsync/internal/prompt"
)

const emptyInputMessage = "Please enter a valid question."

const timestampLayout = "2006-01-02 15:04:05"

// Session owns the model client and the history log for one process.
// Construct it once in main and hand it to the front ends.
type Session struct {
	llmClient llm.Client
	log       *history.Log
}

func New(llmClient llm.Client) *Session {
	return &Session{
		llmClient: llmClient,
		log:       history.NewLog(),
	}
}

// Ask routes a question through the template for mode and returns the
// answer. ok is false for blank input and for generation failures;
// neither appends to the history. A single failure is surfaced
// immediately, not retried.
func (s *Session) Ask(ctx context.Context, question string, mode prompt.Mode) (string, bool) {
	if strings.TrimSpace(question) == "" {
		return emptyInputMessage, false
	}

	filled := prompt.Build(mode, question)

	start := time.Now()
	resp, err := s.llmClient.Generate(ctx, filled)
	if err != nil {
		log.Printf("❌ failed to generate answer: %v", err)
		return fmt.Sprintf("Error processing question: %v", err), false
	}
	elapsed := math.Round(time.Since(start).Seconds()*100) / 100

	s.log.Append(history.Record{
		Timestamp:      time.Now().Format(timestampLayout),
		Question:       question,
		Answer:         resp.Content,
		ProcessingTime: elapsed,
		Mode:           mode,
	})

	return resp.Content, true
}

// Summary renders the recent history; see history.Log.Summary.
func (s *Session) Summary() string {
	return s.log.Summary()
}

// Interactions is the number of successful asks so far.
func (s *Session) Interactions() int {
	return s.log.Len()
}

// History exposes the log records for read-only views.
func (s *Session) History() []history.Record {
	return s.log.Records()
}
