package utils_test

import (
	"testing"

	"match-go/internal/config"
	"match-go/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig() {
	config.Set(&config.Config{
		App: config.AppConfig{Name: "match-go-test"},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	})
}

func TestHashAndVerifySecret(t *testing.T) {
	digest, salt, err := utils.HashSecret("s3cret-pass")
	require.NoError(t, err)
	assert.Len(t, salt, 64)
	assert.Len(t, digest, 64)

	assert.True(t, utils.VerifySecret("s3cret-pass", salt, digest))
	assert.False(t, utils.VerifySecret("wrong-pass", salt, digest))
}

func TestHashSecretSaltNeverReused(t *testing.T) {
	d1, s1, err := utils.HashSecret("same")
	require.NoError(t, err)
	d2, s2, err := utils.HashSecret("same")
	require.NoError(t, err)

	// 相同口令两次注册得到不同盐和不同摘要
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, d1, d2)
}

func TestVerifySecretTamperedDigest(t *testing.T) {
	digest, salt, err := utils.HashSecret("s3cret-pass")
	require.NoError(t, err)

	tampered := make([]byte, len(digest))
	copy(tampered, digest)
	tampered[0] ^= 0xff
	assert.False(t, utils.VerifySecret("s3cret-pass", salt, tampered))

	// 长度不一致直接失败
	assert.False(t, utils.VerifySecret("s3cret-pass", salt, digest[:32]))
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTestConfig()

	token, err := utils.GenerateToken(42, "alice")
	require.NoError(t, err)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseTokenInvalid(t *testing.T) {
	setupTestConfig()

	_, err := utils.ParseToken("not-a-token")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
