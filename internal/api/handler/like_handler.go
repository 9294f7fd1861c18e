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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// AddLike 点赞用户
// @Summary 点赞用户
// @Description 当前用户点赞目标用户，不能点赞自己或重复点赞
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param username path string true "目标用户名"
// @Success 200 {object} response.Response{data=dto.LikeResult} "点赞成功"
// @Failure 400 {object} response.ErrorResponse "不能点赞自己或重复点赞"
// @Failure 404 {object} response.ErrorResponse "目标用户不存在"
// @Router /likes/{username} [post]
func (h *LikeHandler) AddLike(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	targetUsername := strings.TrimSpace(c.Param("username"))
	if targetUsername == "" {
		response.BadRequest(c, "无效的用户名")
		return
	}

	result, err := h.likeService.AddLike(c.Request.Context(), userID, targetUsername)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "点赞成功", result)
}

// ListLikes 查询点赞关系
// @Summary 查询点赞关系
// @Description 按谓词分页查询：liked 为我赞过的人，likedBy 为赞过我的人
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param predicate query string false "查询谓词" Enums(liked, likedBy) default(liked)
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.MemberPage} "获取成功"
// @Router /likes [get]
func (h *LikeHandler) ListLikes(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.LikeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数错误: "+err.Error())
		return
	}

	page, err := h.likeService.ListLikes(userID, &req)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.Paginated(c, "获取成功", page)
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTargetNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSelfLike),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrInvalidPageRequest):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
