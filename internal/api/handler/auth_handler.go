package handler

import (
	"errors"

	"match-go/internal/api/dto"
	"match-go/internal/api/middleware"
	"match-go/internal/api/response"
	"match-go/internal/service"
	"match-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册新用户并返回访问令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Response{data=dto.TokenData} "注册成功"
// @Failure 400 {object} response.ErrorResponse "参数错误或用户名已存在"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	data, err := h.authService.Register(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "注册成功", data)
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验用户名密码并返回访问令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.TokenData} "登录成功"
// @Failure 401 {object} response.ErrorResponse "用户名或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "登录成功", data)
}

// GetMe 获取当前用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户的摘要信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.MemberSummary} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	info, err := h.authService.GetCurrentUser(userID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "获取成功", info)
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInvalidCredential):
		// 不区分用户不存在与口令错误，避免暴露用户名是否已注册
		response.Unauthorized(c, "用户名或密码错误")
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
