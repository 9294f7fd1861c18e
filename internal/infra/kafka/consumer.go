package kafka

import (
	"context"
	"encoding/json"
	"time"

	"match-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// LikeEventHandler 处理点赞事件的回调函数
type LikeEventHandler func(event *LikeEvent) error

// StartLikeEventConsumer 启动点赞事件消费者（阻塞，需在 goroutine 中运行）。
// ctx 取消后会自动停止
func StartLikeEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler LikeEventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka like event consumer stopped")
	}()

	logger.Info("Kafka like event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event LikeEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal like event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle like event",
				zap.Int64("target_user_id", event.TargetUserID),
				zap.Error(err),
			)
		}
	}
}
