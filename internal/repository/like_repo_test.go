package repository_test

import (
	"testing"
	"time"

	"match-go/internal/model"
	"match-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateLikeDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLikeRepository(db)

	alice := seedUser(t, db, "alice", model.GenderFemale, 25, time.Now())
	bob := seedUser(t, db, "bob", model.GenderMale, 27, time.Now())

	_, err := repo.Create(alice.ID, bob.ID)
	require.NoError(t, err)

	// 同一方向的重复点赞被唯一索引拒绝
	_, err = repo.Create(alice.ID, bob.ID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 反方向是另一条边
	_, err = repo.Create(bob.ID, alice.ID)
	assert.NoError(t, err)
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLikeRepository(db)

	alice := seedUser(t, db, "alice", model.GenderFemale, 25, time.Now())
	bob := seedUser(t, db, "bob", model.GenderMale, 27, time.Now())

	_, err := repo.Create(alice.ID, bob.ID)
	require.NoError(t, err)

	ok, err := repo.Exists(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListLikedAndLikedBy(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLikeRepository(db)

	alice := seedUser(t, db, "alice", model.GenderFemale, 25, time.Now())
	bob := seedUser(t, db, "bob", model.GenderMale, 27, time.Now())
	dave := seedUser(t, db, "dave", model.GenderMale, 29, time.Now())

	_, err := repo.Create(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Create(alice.ID, dave.ID)
	require.NoError(t, err)
	_, err = repo.Create(dave.ID, alice.ID)
	require.NoError(t, err)

	// alice 的出边
	ids, err := repo.ListLikedIDs(alice.ID, 0, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{bob.ID, dave.ID}, ids)

	total, err := repo.CountLiked(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// alice 的入边
	ids, err = repo.ListLikedByIDs(alice.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{dave.ID}, ids)

	total, err = repo.CountLikedBy(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListLikedPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewLikeRepository(db)

	alice := seedUser(t, db, "alice", model.GenderFemale, 25, time.Now())
	bob := seedUser(t, db, "bob", model.GenderMale, 27, time.Now())
	dave := seedUser(t, db, "dave", model.GenderMale, 29, time.Now())
	evan := seedUser(t, db, "evan", model.GenderMale, 31, time.Now())

	for _, target := range []int64{bob.ID, dave.ID, evan.ID} {
		_, err := repo.Create(alice.ID, target)
		require.NoError(t, err)
	}

	first, err := repo.ListLikedIDs(alice.ID, 0, 2)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := repo.ListLikedIDs(alice.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	// 两页之间不重叠
	assert.NotContains(t, first, second[0])
}
