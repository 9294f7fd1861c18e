package service

import (
	"errors"
	"strings"
	"time"

	"match-go/internal/api/dto"
	"match-go/internal/config"
	"match-go/internal/model"
	"match-go/internal/repository"
	"match-go/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrDuplicateUsername = errors.New("用户名已被占用")
	ErrInvalidCredential = errors.New("用户名或密码错误")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册。用户名统一小写入库，大小写不同的重名由
// 唯一索引在写入点拒绝，并发注册同名也只会成功一个
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.TokenData, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	digest, salt, err := utils.HashSecret(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:    username,
		SecretHash:  digest,
		SecretSalt:  salt,
		Gender:      req.Gender,
		DateOfBirth: dob,
		KnownAs:     req.KnownAs,
		City:        req.City,
		Country:     req.Country,
		LastActive:  time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return s.issueToken(user)
}

// Login 用户登录，校验口令并返回 token 数据
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.VerifySecret(req.Password, user.SecretSalt, user.SecretHash) {
		return nil, ErrInvalidCredential
	}

	return s.issueToken(user)
}

// GetCurrentUser 根据用户 ID 获取当前用户摘要
func (s *AuthService) GetCurrentUser(userID int64) (*dto.MemberSummary, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toMemberSummary(user), nil
}

func (s *AuthService) issueToken(user *model.User) (*dto.TokenData, error) {
	token, err := utils.GenerateToken(user.ID, user.UserName)
	if err != nil {
		return nil, err
	}

	expireSeconds := config.GetJWT().ExpireHours * 3600

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: expireSeconds,
		User:      *toMemberSummary(user),
	}, nil
}
