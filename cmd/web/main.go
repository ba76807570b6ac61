package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"brainsync/internal/config"
	"brainsync/internal/llm"
	"brainsync/internal/scheduler"
	"brainsync/internal/session"
	"brainsync/internal/web"
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

	sched := scheduler.New()
	sched.SetReportFunction(func(ctx context.Context) error {
		log.Printf("📊 Daily usage: %d interactions total (showing last %d)\n%s",
			sess.Interactions(), cfg.MemoryWindow, sess.Summary())
		return nil
	})
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	srv := web.NewServer(sess, cfg)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("web server failed: %v", err)
		}
	}()

	log.Printf("🚀 %s ready [provider=%s, model=%s]", cfg.AppTitle, cfg.LLMProvider, cfg.ModelName)

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	if err := srv.Stop(); err != nil {
		log.Printf("error stopping web server: %v", err)
	}
	sched.Stop()
	log.Println("👋 Shutdown complete")
}
