package service_test

import (
	"testing"

	"match-go/internal/api/dto"
	"match-go/internal/model"
	"match-go/internal/repository"
	"match-go/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*service.AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return service.NewAuthService(userRepo), userRepo
}

func registerRequest(username string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:    username,
		Password:    "s3cret-pass",
		KnownAs:     "Alice",
		Gender:      model.GenderFemale,
		DateOfBirth: "1999-04-12",
		City:        "London",
		Country:     "UK",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, userRepo := newAuthService(t)

	data, err := svc.Register(registerRequest("Alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "bearer", data.TokenType)
	// 用户名小写入库
	assert.Equal(t, "alice", data.User.Username)

	stored, err := userRepo.GetByUsername("alice")
	require.NoError(t, err)
	// 口令绝不明文存储
	assert.NotContains(t, string(stored.SecretHash), "s3cret-pass")
	assert.Len(t, stored.SecretSalt, 64)

	logged, err := svc.Login(&dto.LoginRequest{Username: "ALICE", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, logged.User.ID)
}

func TestRegisterDuplicateUsernameCaseInsensitive(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(registerRequest("Alice"))
	require.NoError(t, err)

	// 大小写不同也算重名
	_, err = svc.Register(registerRequest("ALICE"))
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrong-pass"})
	assert.ErrorIs(t, err, service.ErrInvalidCredential)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestSameSecretDifferentDigests(t *testing.T) {
	svc, userRepo := newAuthService(t)

	_, err := svc.Register(registerRequest("alice"))
	require.NoError(t, err)
	req := registerRequest("carol")
	_, err = svc.Register(req)
	require.NoError(t, err)

	alice, err := userRepo.GetByUsername("alice")
	require.NoError(t, err)
	carol, err := userRepo.GetByUsername("carol")
	require.NoError(t, err)

	// 相同口令因盐不同而摘要不同
	assert.NotEqual(t, alice.SecretHash, carol.SecretHash)
	assert.NotEqual(t, alice.SecretSalt, carol.SecretSalt)
}
