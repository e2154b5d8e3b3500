package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"brain-tutor/internal/config"
	"brain-tutor/internal/db"
	"brain-tutor/internal/llm"
	"brain-tutor/internal/repository"
	"brain-tutor/internal/service"
)

// REPL de consola contra el motor del tutor, usando la base real.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	chatRepo := repository.NewPgChatRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)

	llmClient := llm.NewGeminiClient(
		cfg.GeminiBaseURL,
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.LLMTimeoutSec)*time.Second,
		logger,
	)

	conversationSvc := service.NewConversationService(chatRepo, messageRepo)
	resolver := service.NewDominanceResolver(logger, userRepo)
	tutorSvc := service.NewTutorService(logger, llmClient, conversationSvc, resolver,
		time.Duration(cfg.LLMTimeoutSec)*time.Second)

	fmt.Print("user id: ")
	userID, _ := reader.ReadString('\n')
	userID = strings.TrimSpace(userID)
	if userID == "" {
		log.Fatal("user id is required")
	}

	dominance := resolver.Resolve(ctx, userID)
	fmt.Printf("tutor ready (dominance: %s). empty line to exit.\n", dominance)

	var chatID string
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		reply, err := tutorSvc.Chat(ctx, userID, chatID, line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		chatID = reply.ChatID

		fmt.Printf("\n[%s/%s via %s]\n%s\n\n", reply.Dominance, reply.Subject, reply.Source, reply.Text)
	}
}
