// Package prompt maps a response mode to a fixed template and fills it
// with the user's question. Build is pure so it can be tested apart
// from the model call.
package prompt

import "fmt"

type Mode string

const (
	ModeQA       Mode = "qa"
	ModeCreative Mode = "creative"
	ModeAnalysis Mode = "analysis"
)

const (
	creativeStyle = "engaging and creative"
	analysisFocus = "comprehensive analysis"
)

const qaTemplate = `You are a knowledgeable AI assistant. Provide clear, accurate, and helpful answers.

Question: %s

Answer: Provide a comprehensive response that is informative and easy to understand.`

const creativeTemplate = `You are a creative writing assistant. Create engaging and imaginative content.

Request: %s
Style: %s

Creative Response:`

const analysisTemplate = `You are a professional analyst. Provide detailed analysis and insights.

Topic: %s
Focus: %s

Professional Analysis:`

// ParseMode maps a raw selector to a Mode. Unknown values fall back to
// qa instead of erroring.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeQA, ModeCreative, ModeAnalysis:
		return Mode(s)
	default:
		return ModeQA
	}
}

// Build fills the template for mode with the question. Unknown modes
// get the qa template.
func Build(mode Mode, question string) string {
	switch mode {
	case ModeCreative:
		return fmt.Sprintf(creativeTemplate, question, creativeStyle)
	case ModeAnalysis:
		return fmt.Sprintf(analysisTemplate, question, analysisFocus)
	default:
		return fmt.Sprintf(qaTemplate, question)
	}
}
