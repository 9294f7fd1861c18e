package cache_test

import (
	"context"
	"testing"

	"match-go/internal/api/dto"
	"match-go/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *cache.MemberCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewMemberCache(rdb)
}

func samplePage() *dto.MemberPage {
	return &dto.MemberPage{
		Items: []dto.MemberSummary{{ID: 1, Username: "alice", KnownAs: "Alice"}},
		Meta:  dto.PaginationMeta{CurrentPage: 1, PageSize: 10, TotalCount: 1, TotalPages: 1},
	}
}

func TestGetSetPage(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	fp := cache.Fingerprint("alice", "female", "last_active", "1", "10")
	version := c.Version(ctx)

	_, ok := c.GetPage(ctx, version, fp)
	assert.False(t, ok)

	c.SetPage(ctx, version, fp, samplePage())

	got, ok := c.GetPage(ctx, version, fp)
	require.True(t, ok)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "alice", got.Items[0].Username)
	assert.Equal(t, int64(1), got.Meta.TotalCount)
}

func TestBumpInvalidatesOldPages(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	fp := cache.Fingerprint("alice", "female", "last_active", "1", "10")
	version := c.Version(ctx)
	c.SetPage(ctx, version, fp, samplePage())

	c.Bump(ctx)

	// 版本号递增后旧页不再命中
	newVersion := c.Version(ctx)
	assert.NotEqual(t, version, newVersion)
	_, ok := c.GetPage(ctx, newVersion, fp)
	assert.False(t, ok)
}

func TestFingerprintDistinguishesQueries(t *testing.T) {
	a := cache.Fingerprint("alice", "female", "last_active", "1", "10")
	b := cache.Fingerprint("alice", "female", "last_active", "2", "10")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, cache.Fingerprint("alice", "female", "last_active", "1", "10"))
}

func TestNilClientSafe(t *testing.T) {
	ctx := context.Background()
	var c *cache.MemberCache

	assert.Equal(t, int64(0), c.Version(ctx))
	c.Bump(ctx)
	c.SetPage(ctx, 0, "fp", samplePage())
	_, ok := c.GetPage(ctx, 0, "fp")
	assert.False(t, ok)
}
