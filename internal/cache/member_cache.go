package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"match-go/internal/api/dto"

	"github.com/redis/go-redis/v9"
)

// 目录数据版本号键。资料、照片等影响目录结果的写操作都会递增它，
// 旧版本号下的缓存页自然失效，无需逐键删除
const directoryVersionKey = "members:directory:ver"

// 缓存页兜底过期时间，保证缓存规模有界
const pageTTL = 60 * time.Second

// MemberCache 目录查询结果的 Redis 缓存，按（数据版本，查询指纹）定位缓存页
type MemberCache struct {
	rdb *redis.Client
}

func NewMemberCache(rdb *redis.Client) *MemberCache {
	return &MemberCache{rdb: rdb}
}

// Fingerprint 计算查询参数指纹
func Fingerprint(parts ...string) string {
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// Version 读取当前目录数据版本号，键不存在视为 0
func (c *MemberCache) Version(ctx context.Context) int64 {
	if c == nil || c.rdb == nil {
		return 0
	}
	ver, err := c.rdb.Get(ctx, directoryVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0
	}
	return ver
}

// Bump 递增目录数据版本号，使所有已缓存页失效
func (c *MemberCache) Bump(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Incr(ctx, directoryVersionKey).Err()
}

// GetPage 读取缓存页，未命中返回 false
func (c *MemberCache) GetPage(ctx context.Context, version int64, fingerprint string) (*dto.MemberPage, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, pageKey(version, fingerprint)).Result()
	if err != nil {
		return nil, false
	}
	var page dto.MemberPage
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return nil, false
	}
	return &page, true
}

// SetPage 写入缓存页
func (c *MemberCache) SetPage(ctx context.Context, version int64, fingerprint string, page *dto.MemberPage) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, pageKey(version, fingerprint), raw, pageTTL).Err()
}

func pageKey(version int64, fingerprint string) string {
	return fmt.Sprintf("members:page:%d:%s", version, fingerprint)
}
