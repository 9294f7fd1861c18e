package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"match-go/internal/config"
	"match-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// LikeEvent 点赞事件消息体，worker 据此推送通知
type LikeEvent struct {
	SourceUserID   int64     `json:"source_user_id"`
	SourceUsername string    `json:"source_username"`
	TargetUserID   int64     `json:"target_user_id"`
	Mutual         bool      `json:"mutual"`
	CreatedAt      time.Time `json:"created_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendLikeEvent 发送点赞事件到 Kafka
func SendLikeEvent(ctx context.Context, topic string, event *LikeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal like event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("user-%d", event.TargetUserID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send like event: %w", err)
	}

	logger.Info("Like event sent",
		zap.Int64("source_user_id", event.SourceUserID),
		zap.Int64("target_user_id", event.TargetUserID),
		zap.Bool("mutual", event.Mutual),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
