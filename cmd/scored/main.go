package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"sudooom.mahjong.score/internal/cache"
	"sudooom.mahjong.score/internal/config"
	"sudooom.mahjong.score/internal/handler"
	"sudooom.mahjong.score/internal/health"
	"sudooom.mahjong.score/internal/mahjong/riichi"
	scoreNats "sudooom.mahjong.score/internal/nats"
	"sudooom.mahjong.score/internal/repository"
	"sudooom.mahjong.score/internal/router"
	"sudooom.mahjong.score/internal/service"
	"sudooom.mahjong.score/internal/workerpool"
)

const shutdownTimeout = 10 * time.Second

// @title        Mahjong Score API
// @version      1.0
// @description  立直麻将和了计分服务
// @BasePath     /api/v1
func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 初始化日志
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.App.LogLevel),
	}))
	slog.SetDefault(logger)

	// 创建上下文
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 连接 NATS
	natsClient, err := scoreNats.NewClient(cfg.NATS, cfg.App.Name)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer natsClient.Close()
	logger.Info("Connected to NATS", "url", cfg.NATS.URL)

	// 连接 Redis
	redisClient := connectRedis(cfg.Redis)
	defer redisClient.Close()
	logger.Info("Connected to Redis", "addr", cfg.Redis.Addr())

	// 连接数据库
	db, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL", "host", cfg.Database.Host)

	// 计分引擎与服务
	scorer := riichi.NewScorer(riichi.Rules{
		OpenTanyao:    cfg.Rules.OpenTanyao,
		DoubleYakuman: cfg.Rules.DoubleYakuman,
	})
	persistPool := workerpool.New("score-persist", cfg.Persist.Workers, cfg.Persist.QueueSize, logger)
	scoreService := service.NewScoreService(
		scorer,
		cache.NewResultCache(redisClient, cfg.Redis.ResultTTL),
		repository.NewScoreRepository(db),
		persistPool,
	)

	// NATS 请求/应答
	subscriber := scoreNats.NewScoreSubscriber(natsClient.Conn(), scoreService, scoreNats.SubscriberConfig{
		Subject:     cfg.NATS.Subject,
		QueueGroup:  cfg.NATS.QueueGroup,
		WorkerCount: cfg.NATS.WorkerCount,
		BufferSize:  cfg.NATS.BufferSize,
	})
	if err := subscriber.Start(ctx); err != nil {
		logger.Error("Failed to start subscriber", "error", err)
		os.Exit(1)
	}

	// 健康检查
	healthChecker := health.NewChecker(natsClient.Conn(), redisClient, db)
	healthServer := &http.Server{Addr: cfg.App.HealthAddr, Handler: healthChecker.NewServeMux()}
	go serve(healthServer, "Health check server", logger)

	// HTTP API
	apiServer := &http.Server{
		Addr:    cfg.App.HTTPAddr,
		Handler: router.SetupRouter(cfg, handler.NewScoreHandler(scoreService)),
	}
	go serve(apiServer, "Score API server", logger)

	logger.Info("Score service started", "name", cfg.App.Name, "rules", scorer.Rules())

	// 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Score API server shutdown failed", "error", err)
	}
	subscriber.Stop()
	// 退订后排空连接, 保证已发出的应答送达
	if err := natsClient.Drain(); err != nil {
		logger.Error("NATS drain failed", "error", err)
	}
	cancel()
	// 等待已提交的记录落库
	persistPool.Shutdown(shutdownCtx)
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health check server shutdown failed", "error", err)
	}
	logger.Info("Score service stopped")
}

// serve 启动 HTTP 服务
func serve(server *http.Server, name string, logger *slog.Logger) {
	logger.Info(name+" started", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(name+" failed", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// connectRedis 连接 Redis
func connectRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// connectDatabase 连接 PostgreSQL
func connectDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = 10 * time.Minute

	return pgxpool.NewWithConfig(ctx, poolConfig)
}
