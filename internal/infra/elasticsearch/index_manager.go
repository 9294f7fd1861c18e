package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"match-go/internal/config"
	"match-go/pkg/logger"

	"go.uber.org/zap"
)

// MembersIndexMapping 返回 members 索引的 mapping
func MembersIndexMapping() string {
	return `{
		"settings": {
			"number_of_shards": 1,
			"number_of_replicas": 0
		},
		"mappings": {
			"properties": {
				"id": {"type": "long"},
				"user_name": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"known_as": {
					"type": "text",
					"fields": {"keyword": {"type": "keyword", "ignore_above": 255}}
				},
				"gender": {"type": "keyword"},
				"city": {"type": "text"},
				"country": {"type": "text"},
				"introduction": {"type": "text"},
				"interests": {"type": "text"},
				"last_active": {"type": "date", "format": "strict_date_optional_time||epoch_millis"},
				"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
			}
		}
	}`
}

// MembersIndexName 返回 members 索引名，未配置时用默认值
func MembersIndexName() string {
	cfg := config.GetElasticsearch()
	if name := cfg.Index["members"]; name != "" {
		return name
	}
	return "members"
}

// EnsureMembersIndex 确保 members 索引存在，不存在则创建
func EnsureMembersIndex(ctx context.Context) error {
	indexName := MembersIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch members index already exists", zap.String("index", indexName))
		return nil
	}

	body := bytes.NewReader([]byte(MembersIndexMapping()))
	resp, err := IndicesCreate(ctx, indexName, body)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch members index created", zap.String("index", indexName))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureMembersIndex(ctx)
}
