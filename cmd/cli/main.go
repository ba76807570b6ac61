package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"brainsync/internal/config"
	"brainsync/internal/llm"
	"brainsync/internal/prompt"
	"brainsync/internal/session"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	llmClient, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), cfg.ModelName)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	sess := session.New(llmClient)
	ctx := context.Background()

	fmt.Printf("✅ %s ready! Type 'quit' to exit, 'history' to see conversation history.\n", cfg.AppTitle)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n💭 Your question: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Println("👋 Goodbye!")
			return
		case "history":
			fmt.Println(sess.Summary())
			continue
		case "":
			fmt.Println("⚠️ Please enter a question.")
			continue
		}

		fmt.Println("🤔 Thinking...")
		answer, ok := sess.Ask(ctx, question, prompt.ModeQA)
		if ok {
			fmt.Printf("\n🤖 AI Response:\n%s\n", answer)
		} else {
			fmt.Printf("\n❌ Error: %s\n", answer)
		}
	}
}
