package service_test

import (
	"context"
	"testing"

	"match-go/internal/api/dto"
	infraKafka "match-go/internal/infra/kafka"
	"match-go/internal/model"
	"match-go/internal/repository"
	"match-go/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// capturePublisher 收集发布的点赞事件
type capturePublisher struct {
	events []*infraKafka.LikeEvent
}

func (p *capturePublisher) publish(_ context.Context, event *infraKafka.LikeEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newLikeService(t *testing.T) (*service.LikeService, *gorm.DB, *capturePublisher) {
	t.Helper()
	db := newTestDB(t)
	publisher := &capturePublisher{}
	svc := service.NewLikeService(
		repository.NewLikeRepository(db),
		repository.NewUserRepository(db),
		publisher.publish,
	)
	return svc, db, publisher
}

func TestAddLike(t *testing.T) {
	svc, db, publisher := newLikeService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	bob := newTestUser(t, db, "bob", model.GenderMale, 27)

	result, err := svc.AddLike(ctx, alice.ID, "Bob")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, result.SourceUserID)
	assert.Equal(t, bob.ID, result.TargetUserID)
	assert.False(t, result.Mutual)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "alice", publisher.events[0].SourceUsername)
	assert.Equal(t, bob.ID, publisher.events[0].TargetUserID)
}

func TestAddLikeMutual(t *testing.T) {
	svc, db, _ := newLikeService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	bob := newTestUser(t, db, "bob", model.GenderMale, 27)

	_, err := svc.AddLike(ctx, alice.ID, "bob")
	require.NoError(t, err)

	result, err := svc.AddLike(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.True(t, result.Mutual)
}

func TestAddLikeSelfRejected(t *testing.T) {
	svc, db, publisher := newLikeService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)

	_, err := svc.AddLike(ctx, alice.ID, "alice")
	assert.ErrorIs(t, err, service.ErrSelfLike)
	assert.Empty(t, publisher.events)
}

func TestAddLikeDuplicateRejected(t *testing.T) {
	svc, db, publisher := newLikeService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	newTestUser(t, db, "bob", model.GenderMale, 27)

	_, err := svc.AddLike(ctx, alice.ID, "bob")
	require.NoError(t, err)

	_, err = svc.AddLike(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, service.ErrAlreadyLiked)
	// 重复点赞不产生第二个事件
	assert.Len(t, publisher.events, 1)
}

func TestAddLikeTargetNotFound(t *testing.T) {
	svc, db, _ := newLikeService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)

	_, err := svc.AddLike(ctx, alice.ID, "ghost")
	assert.ErrorIs(t, err, service.ErrTargetNotFound)
}

func TestListLikesByPredicate(t *testing.T) {
	svc, db, _ := newLikeService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	bob := newTestUser(t, db, "bob", model.GenderMale, 27)
	dave := newTestUser(t, db, "dave", model.GenderMale, 29)

	_, err := svc.AddLike(ctx, alice.ID, "bob")
	require.NoError(t, err)
	_, err = svc.AddLike(ctx, alice.ID, "dave")
	require.NoError(t, err)
	_, err = svc.AddLike(ctx, dave.ID, "alice")
	require.NoError(t, err)

	// 我赞过的人
	page, err := svc.ListLikes(alice.ID, &dto.LikeListRequest{Predicate: dto.LikePredicateLiked})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Meta.TotalCount)
	names := []string{page.Items[0].Username, page.Items[1].Username}
	assert.ElementsMatch(t, []string{"bob", "dave"}, names)

	// 赞过我的人
	page, err = svc.ListLikes(alice.ID, &dto.LikeListRequest{Predicate: dto.LikePredicateLikedBy})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "dave", page.Items[0].Username)

	// 谓词缺省按出边查询
	page, err = svc.ListLikes(bob.ID, &dto.LikeListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Meta.TotalCount)
	assert.Empty(t, page.Items)
}
