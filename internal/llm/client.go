package llm

import "context"

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is the hosted model the router delegates generation to.
type Client interface {
	Generate(ctx context.Context, prompt string) (Response, error)
}
