package repository_test

import (
	"testing"
	"time"

	"match-go/internal/model"
	"match-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(&model.User{}, &model.Photo{}, &model.UserLike{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func seedUser(t *testing.T, db *gorm.DB, username, gender string, age int, lastActive time.Time) *model.User {
	t.Helper()
	user := &model.User{
		UserName:    username,
		SecretHash:  []byte("digest"),
		SecretSalt:  []byte("salt"),
		Gender:      gender,
		DateOfBirth: time.Now().AddDate(-age, 0, -1),
		KnownAs:     username,
		City:        "London",
		Country:     "UK",
		LastActive:  lastActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	seedUser(t, db, "alice", model.GenderFemale, 25, time.Now())

	err := repo.Create(&model.User{
		UserName:    "alice",
		SecretHash:  []byte("digest"),
		SecretSalt:  []byte("salt"),
		Gender:      model.GenderFemale,
		DateOfBirth: time.Now().AddDate(-30, 0, 0),
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListDirectoryFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	now := time.Now()

	seedUser(t, db, "alice", model.GenderFemale, 25, now)
	seedUser(t, db, "carol", model.GenderFemale, 30, now)
	seedUser(t, db, "dave", model.GenderMale, 28, now)
	// 年龄窗口外
	seedUser(t, db, "eve", model.GenderFemale, 45, now)

	users, total, err := repo.ListDirectory(repository.DirectoryQuery{
		CurrentUsername: "bob",
		Gender:          model.GenderFemale,
		MinDob:          now.AddDate(-36, 0, 0),
		MaxDob:          now.AddDate(-18, 0, 0),
		OrderBy:         repository.OrderByLastActive,
		Page:            1,
		PageSize:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, model.GenderFemale, u.Gender)
		assert.NotEqual(t, "eve", u.UserName)
	}
}

func TestListDirectoryExcludesRequester(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	now := time.Now()

	seedUser(t, db, "alice", model.GenderFemale, 25, now)
	seedUser(t, db, "carol", model.GenderFemale, 25, now)

	users, total, err := repo.ListDirectory(repository.DirectoryQuery{
		CurrentUsername: "alice",
		Gender:          model.GenderFemale,
		MinDob:          now.AddDate(-100, 0, 0),
		MaxDob:          now,
		OrderBy:         repository.OrderByLastActive,
		Page:            1,
		PageSize:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "carol", users[0].UserName)
}

func TestListDirectoryOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)
	now := time.Now()

	seedUser(t, db, "old", model.GenderFemale, 25, now.Add(-48*time.Hour))
	seedUser(t, db, "mid", model.GenderFemale, 25, now.Add(-24*time.Hour))
	seedUser(t, db, "fresh", model.GenderFemale, 25, now)

	query := repository.DirectoryQuery{
		CurrentUsername: "bob",
		Gender:          model.GenderFemale,
		MinDob:          now.AddDate(-100, 0, 0),
		MaxDob:          now,
		OrderBy:         repository.OrderByLastActive,
		Page:            1,
		PageSize:        2,
	}

	users, total, err := repo.ListDirectory(query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 2)
	assert.Equal(t, "fresh", users[0].UserName)
	assert.Equal(t, "mid", users[1].UserName)

	// 第二页拿到剩余一条，数据集不变时分页可复现
	query.Page = 2
	users, _, err = repo.ListDirectory(query)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "old", users[0].UserName)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	user := seedUser(t, db, "alice", model.GenderFemale, 25, time.Now())

	updated, err := repo.UpdateProfile(user.ID, map[string]interface{}{
		"city":         "Paris",
		"introduction": "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Paris", updated.City)
	require.NotNil(t, updated.Introduction)
	assert.Equal(t, "hello", *updated.Introduction)

	_, err = repo.UpdateProfile(99999, map[string]interface{}{"city": "Paris"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByUsernameNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewUserRepository(db)

	_, err := repo.GetByUsername("ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
