package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"brain-tutor/internal/config"
	"brain-tutor/internal/db"
	apihttp "brain-tutor/internal/http"
	"brain-tutor/internal/llm"
	"brain-tutor/internal/repository"
	"brain-tutor/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	chatRepo := repository.NewPgChatRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	assessmentRepo := repository.NewPgAssessmentRepository(pool)

	llmClient := llm.NewGeminiClient(
		cfg.GeminiBaseURL,
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.LLMTimeoutSec)*time.Second,
		logger,
	)
	if cfg.GeminiAPIKey == "" {
		logger.Warn("gemini api key not configured, all replies will use the fallback generator")
	}

	var (
		tokenStore  service.RefreshTokenStore
		rateLimiter service.ChatRateLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			rateLimiter = service.NewRedisChatRateLimiter(redisClient, time.Minute, cfg.ChatRateLimitPerMinute)
		}
		cancel()
	}
	if rateLimiter == nil {
		rateLimiter = service.NewMemoryChatRateLimiter(time.Minute, cfg.ChatRateLimitPerMinute)
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	conversationSvc := service.NewConversationService(chatRepo, messageRepo)
	resolver := service.NewDominanceResolver(logger, userRepo)
	tutorSvc := service.NewTutorService(logger, llmClient, conversationSvc, resolver,
		time.Duration(cfg.LLMTimeoutSec)*time.Second)
	assessmentSvc := service.NewAssessmentService(logger, assessmentRepo, userRepo)
	userSvc := service.NewUserService(logger, userRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	conversationHandler := apihttp.NewConversationHandler(logger, tutorSvc, conversationSvc, rateLimiter)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	selfTestHandler := apihttp.NewSelfTestHandler(logger)

	router := apihttp.NewRouter(logger, jwtSvc, userHandler, conversationHandler, assessmentHandler, selfTestHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
