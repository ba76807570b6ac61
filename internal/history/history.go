package history

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"brainsync/internal/prompt"
)

const noHistoryMessage = "No conversation history available."

// summaryWindow is how many of the most recent records Summary renders.
const summaryWindow = 5

// Record is one logged question/answer exchange. Immutable once
// appended.
type Record struct {
	Timestamp      string
	Question       string
	Answer         string
	ProcessingTime float64
	Mode           prompt.Mode
}

// Log is an append-only in-memory interaction log. It is guarded by a
// mutex because web and bot front ends may call in from concurrent
// handlers; entries live for the process lifetime.
type Log struct {
	mu      sync.RWMutex
	records []Record
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(r Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, r)
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Records returns a copy so callers cannot mutate the log.
func (l *Log) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Summary renders the last 5 records in chronological order as a
// numbered list, truncating long questions and answers.
func (l *Log) Summary() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.records) == 0 {
		return noHistoryMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Conversation Summary** (%d interactions)\n\n", len(l.records))

	start := 0
	if len(l.records) > summaryWindow {
		start = len(l.records) - summaryWindow
	}
	for i, r := range l.records[start:] {
		fmt.Fprintf(&b, "**%d. [%s]**\n", i+1, r.Timestamp)
		fmt.Fprintf(&b, "❓ **Q:** %s\n", truncate(r.Question, 100))
		fmt.Fprintf(&b, "✅ **A:** %s\n", truncate(r.Answer, 150))
		fmt.Fprintf(&b, "⏱️ *Processing time: %.2fs*\n\n", r.ProcessingTime)
	}
	return b.String()
}

// truncate limits s to limit characters, not bytes, so multibyte
// questions are never cut early or split mid-rune.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
