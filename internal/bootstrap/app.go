package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"kosovai-backend/internal/ai"
	"kosovai-backend/internal/app"
	"kosovai-backend/internal/cache"
	"kosovai-backend/internal/config"
	"kosovai-backend/internal/model"
	mysqlClient "kosovai-backend/internal/platform/mysql"
	rabbitmqClient "kosovai-backend/internal/platform/rabbitmq"
	redisClient "kosovai-backend/internal/platform/redis"
	"kosovai-backend/internal/repository"
	"kosovai-backend/internal/worker"
)

type App struct {
	Config      *config.Config
	MySQL       *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	LoginWorker *worker.LoginEventWorker

	AuthService *app.AuthService
	ChatService *app.ChatService
	LoginEvents *repository.LoginEventRepository

	StartedAt time.Time
}

// New builds every dependency and seeds the credential store. Seeding
// completes before the caller ever starts serving traffic.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.User{}, &model.LoginEvent{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(mysqlDB)
	userCache := cache.NewUserCache(redisCli, time.Duration(cfg.Redis.UserTTLSeconds)*time.Second)
	publisher := rabbitmqClient.NewEventPublisher(mqConn, cfg.RabbitMQ.LoginEventQueue)

	authService := app.NewAuthService(
		userRepo,
		userCache,
		publisher,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute,
	)
	if err := authService.Seed(ctx, cfg.Seed.Users); err != nil {
		return nil, fmt.Errorf("seed users failed: %w", err)
	}

	llmClient := ai.NewClient(ai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	chatService := app.NewChatService(llmClient, cfg.LLM.APIKey != "")

	eventRepo := repository.NewLoginEventRepository(mysqlDB)
	loginWorker := worker.NewLoginEventWorker(mqConn, eventRepo, cfg.RabbitMQ.LoginEventQueue)
	if err := loginWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start login event worker failed: %w", err)
	}

	return &App{
		Config:      cfg,
		MySQL:       mysqlDB,
		Redis:       redisCli,
		MQConn:      mqConn,
		LoginWorker: loginWorker,
		AuthService: authService,
		ChatService: chatService,
		LoginEvents: eventRepo,
		StartedAt:   time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.LoginWorker != nil {
		a.LoginWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
