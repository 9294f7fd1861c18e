package service_test

import (
	"os"
	"testing"
	"time"

	"match-go/internal/config"
	"match-go/internal/model"
	"match-go/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.InitDiscard()
	config.Set(&config.Config{
		App: config.AppConfig{Name: "match-go-test"},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	})
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Photo{}, &model.UserLike{}))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username, gender string, age int) *model.User {
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
		LastActive:  time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
