package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"match-go/internal/api/dto"
	"match-go/internal/cache"
	"match-go/internal/model"
	"match-go/internal/repository"
	"match-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrPhotoNotFound          = errors.New("照片不存在")
	ErrPhotoAlreadyMain       = errors.New("照片已经是主照片")
	ErrCannotDeleteMainPhoto  = errors.New("不能删除主照片")
	ErrUnsupportedPhotoFormat = errors.New("不支持的照片格式")
	ErrPhotoStorage           = errors.New("照片存储服务异常")
)

// PhotoStorage 照片对象存储抽象，生产环境由 MinIO 实现
type PhotoStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type PhotoService struct {
	photoRepo   *repository.PhotoRepository
	storage     PhotoStorage
	memberCache *cache.MemberCache
}

func NewPhotoService(photoRepo *repository.PhotoRepository, storage PhotoStorage, memberCache *cache.MemberCache) *PhotoService {
	return &PhotoService{photoRepo: photoRepo, storage: storage, memberCache: memberCache}
}

// AddPhoto 上传照片：先写对象存储，成功后再落库。
// 存储失败不会产生照片记录；落库失败时补偿删除已上传的对象
func (s *PhotoService) AddPhoto(ctx context.Context, userID int64, filename string, reader io.Reader, size int64) (*dto.PhotoInfo, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := photoContentTypes[ext]
	if !ok {
		return nil, ErrUnsupportedPhotoFormat
	}

	objectName := fmt.Sprintf("%d/%d%s", userID, time.Now().UnixNano(), ext)

	url, err := s.storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPhotoStorage, err)
	}

	photo := &model.Photo{
		UserID:     userID,
		URL:        url,
		ObjectName: objectName,
	}
	if err := s.photoRepo.Create(photo); err != nil {
		if removeErr := s.storage.Remove(ctx, objectName); removeErr != nil {
			logger.Warn("remove orphan photo object failed",
				zap.String("object", objectName), zap.Error(removeErr))
		}
		return nil, err
	}

	s.memberCache.Bump(ctx)

	return &dto.PhotoInfo{ID: photo.ID, URL: photo.URL, IsMain: photo.IsMain}, nil
}

// SetMainPhoto 把指定照片设为主照片
func (s *PhotoService) SetMainPhoto(ctx context.Context, userID, photoID int64) error {
	if err := s.photoRepo.SetMain(photoID, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrPhotoNotFound
		case errors.Is(err, repository.ErrPhotoAlreadyMain):
			return ErrPhotoAlreadyMain
		}
		return err
	}
	s.memberCache.Bump(ctx)
	return nil
}

// RemovePhoto 删除照片：主照片必须先改派再删除。
// 先删对象存储，存储删除失败时照片记录保持不变
func (s *PhotoService) RemovePhoto(ctx context.Context, userID, photoID int64) error {
	photo, err := s.photoRepo.GetByIDForUser(photoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.IsMain {
		return ErrCannotDeleteMainPhoto
	}

	if photo.ObjectName != "" {
		if err := s.storage.Remove(ctx, photo.ObjectName); err != nil {
			return fmt.Errorf("%w: %v", ErrPhotoStorage, err)
		}
	}

	if err := s.photoRepo.Delete(photoID, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrPhotoNotFound
		case errors.Is(err, repository.ErrPhotoIsMain):
			return ErrCannotDeleteMainPhoto
		}
		return err
	}

	s.memberCache.Bump(ctx)
	return nil
}

// ListPhotos 查询用户的全部照片
func (s *PhotoService) ListPhotos(userID int64) ([]dto.PhotoInfo, error) {
	photos, err := s.photoRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.PhotoInfo, 0, len(photos))
	for _, photo := range photos {
		infos = append(infos, dto.PhotoInfo{ID: photo.ID, URL: photo.URL, IsMain: photo.IsMain})
	}
	return infos, nil
}
