package handler

import (
	"errors"
	"strconv"

	"match-go/internal/api/middleware"
	"match-go/internal/api/response"
	"match-go/internal/service"
	"match-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 单张照片大小上限
const maxPhotoSize = 10 << 20

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// UploadPhoto 上传照片
// @Summary 上传照片
// @Description 为当前用户上传照片，第一张照片自动设为主照片
// @Tags 照片
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "照片文件"
// @Success 201 {object} response.Response{data=dto.PhotoInfo} "上传成功"
// @Failure 400 {object} response.ErrorResponse "文件错误或存储失败"
// @Router /photos [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "缺少照片文件")
		return
	}
	if fileHeader.Size > maxPhotoSize {
		response.BadRequest(c, "照片文件过大")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "无法读取照片文件")
		return
	}
	defer file.Close()

	info, err := h.photoService.AddPhoto(c.Request.Context(), userID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		handlePhotoError(c, err)
		return
	}

	response.Created(c, "上传成功", info)
}

// ListPhotos 获取当前用户的照片列表
// @Summary 获取照片列表
// @Description 获取当前用户的全部照片
// @Tags 照片
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.PhotoInfo} "获取成功"
// @Router /photos [get]
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	infos, err := h.photoService.ListPhotos(userID)
	if err != nil {
		handlePhotoError(c, err)
		return
	}

	response.OK(c, "获取成功", infos)
}

// SetMainPhoto 设置主照片
// @Summary 设置主照片
// @Description 把指定照片设为当前用户的主照片
// @Tags 照片
// @Produce json
// @Security BearerAuth
// @Param id path int true "照片ID"
// @Success 200 {object} response.Response "设置成功"
// @Failure 400 {object} response.ErrorResponse "照片已是主照片"
// @Failure 404 {object} response.ErrorResponse "照片不存在"
// @Router /photos/{id}/main [put]
func (h *PhotoHandler) SetMainPhoto(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	photoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的照片ID")
		return
	}

	if err := h.photoService.SetMainPhoto(c.Request.Context(), userID, photoID); err != nil {
		handlePhotoError(c, err)
		return
	}

	response.OK(c, "设置成功", nil)
}

// DeletePhoto 删除照片
// @Summary 删除照片
// @Description 删除当前用户的指定照片，主照片不可删除
// @Tags 照片
// @Produce json
// @Security BearerAuth
// @Param id path int true "照片ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 400 {object} response.ErrorResponse "主照片不可删除"
// @Failure 404 {object} response.ErrorResponse "照片不存在"
// @Router /photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	photoID, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "无效的照片ID")
		return
	}

	if err := h.photoService.RemovePhoto(c.Request.Context(), userID, photoID); err != nil {
		handlePhotoError(c, err)
		return
	}

	response.OK(c, "删除成功", nil)
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func handlePhotoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPhotoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPhotoAlreadyMain),
		errors.Is(err, service.ErrCannotDeleteMainPhoto),
		errors.Is(err, service.ErrUnsupportedPhotoFormat),
		errors.Is(err, service.ErrPhotoStorage):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Photo operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
