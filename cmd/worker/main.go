package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"match-go/internal/config"
	infraKafka "match-go/internal/infra/kafka"
	infraRedis "match-go/internal/infra/redis"
	"match-go/pkg/logger"

	"go.uber.org/zap"
)

// 未读点赞计数键前缀，按目标用户维度累加
const unreadLikeKeyPrefix = "likes:unread:"

// 未读计数保留时长
const unreadLikeTTL = 30 * 24 * time.Hour

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic, ok := cfg.Kafka.Topics["like_created"]
	if !ok {
		logger.Fatal("Kafka topic like_created not configured")
	}
	groupID := "match-go-like-worker"

	logger.Info("Like notification worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	rdb := infraRedis.Get()

	handler := func(event *infraKafka.LikeEvent) error {
		key := fmt.Sprintf("%s%d", unreadLikeKeyPrefix, event.TargetUserID)
		if err := rdb.Incr(ctx, key).Err(); err != nil {
			return fmt.Errorf("incr unread like counter: %w", err)
		}
		_ = rdb.Expire(ctx, key, unreadLikeTTL).Err()

		logger.Info("Like notification recorded",
			zap.Int64("source_user_id", event.SourceUserID),
			zap.Int64("target_user_id", event.TargetUserID),
			zap.Bool("mutual", event.Mutual),
		)
		return nil
	}

	infraKafka.StartLikeEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)

	logger.Info("Like notification worker stopped")
}
