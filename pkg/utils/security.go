package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"time"

	"match-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// 每次注册随机生成的 HMAC 密钥长度（即 SHA-512 块内密钥）
const secretSaltLen = 64

// Claims 自定义 JWT Claims
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// HashSecret 对口令计算 HMAC-SHA512 摘要。
// 密钥（盐）每次调用重新随机生成，绝不复用
func HashSecret(secret string) (digest, salt []byte, err error) {
	salt = make([]byte, secretSaltLen)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(secret))
	return mac.Sum(nil), salt, nil
}

// VerifySecret 用存储的盐重新计算摘要并与存储摘要比较。
// 比较只覆盖存储摘要的长度，且为恒定时间全长扫描，不在首个差异字节处提前返回
func VerifySecret(secret string, salt, storedDigest []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(secret))
	computed := mac.Sum(nil)

	if len(computed) != len(storedDigest) {
		return false
	}
	return hmac.Equal(storedDigest, computed)
}

// GenerateToken 生成 JWT Token
func GenerateToken(userID int64, username string) (string, error) {
	jwtCfg := config.GetJWT()

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtCfg.ExpireDuration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.GetApp().Name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtCfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken 解析并验证 JWT Token，返回 Claims
func ParseToken(tokenString string) (*Claims, error) {
	jwtCfg := config.GetJWT()

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtCfg.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
