package handler

import (
	"errors"
	"strings"

	"match-go/internal/api/dto"
	"match-go/internal/api/middleware"
	"match-go/internal/api/response"
	"match-go/internal/service"
	"match-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MemberHandler struct {
	memberService *service.MemberService
	searchService *service.SearchService
}

func NewMemberHandler(memberService *service.MemberService, searchService *service.SearchService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		searchService: searchService,
	}
}

// ListMembers 会员目录查询
// @Summary 会员目录查询
// @Description 按性别与年龄过滤的分页目录，默认检索相反性别并排除本人
// @Tags 会员
// @Produce json
// @Security BearerAuth
// @Param gender query string false "性别筛选" Enums(male, female)
// @Param min_age query int false "最小年龄" default(18)
// @Param max_age query int false "最大年龄" default(150)
// @Param order_by query string false "排序键" Enums(last_active, created) default(last_active)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.MemberPage} "获取成功"
// @Failure 400 {object} response.ErrorResponse "参数错误"
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.DirectoryQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	page, err := h.memberService.ListDirectory(c.Request.Context(), userID, &req)
	if err != nil {
		handleMemberError(c, err)
		return
	}

	response.Paginated(c, "获取成功", page)
}

// GetMember 获取会员详情
// @Summary 获取会员详情
// @Description 根据用户名获取会员详情（含照片）
// @Tags 会员
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} response.Response{data=dto.MemberDetail} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /members/{username} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	username := strings.ToLower(strings.TrimSpace(c.Param("username")))
	if username == "" {
		response.BadRequest(c, "无效的用户名")
		return
	}

	detail, err := h.memberService.GetProfile(username)
	if err != nil {
		handleMemberError(c, err)
		return
	}

	response.OK(c, "获取成功", detail)
}

// UpdateProfile 更新个人资料
// @Summary 更新个人资料
// @Description 更新当前用户的资料字段，只更新请求中出现的字段
// @Tags 会员
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfileUpdateRequest true "资料字段"
// @Success 200 {object} response.Response{data=dto.MemberDetail} "更新成功"
// @Failure 400 {object} response.ErrorResponse "参数错误"
// @Router /members/me [put]
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	detail, err := h.memberService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleMemberError(c, err)
		return
	}

	// 资料变更后同步搜索索引，失败不影响更新结果
	h.searchService.SyncMemberToES(c.Request.Context(), userID)

	response.OK(c, "更新成功", detail)
}

// SearchMembers 关键字搜索会员
// @Summary 关键字搜索会员
// @Description 按用户名、昵称、城市等字段做全文搜索
// @Tags 会员
// @Produce json
// @Security BearerAuth
// @Param q query string true "搜索关键字"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.MemberPage} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "参数错误"
// @Router /members/search [get]
func (h *MemberHandler) SearchMembers(c *gin.Context) {
	var req dto.SearchMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	page, err := h.searchService.SearchMembers(c.Request.Context(), &req)
	if err != nil {
		handleMemberError(c, err)
		return
	}

	response.Paginated(c, "搜索成功", page)
}

func handleMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidPageRequest),
		errors.Is(err, service.ErrInvalidAgeRange):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Member operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
