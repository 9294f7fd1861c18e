package repository

import (
	"errors"

	"match-go/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrPhotoAlreadyMain 目标照片已经是主照片
	ErrPhotoAlreadyMain = errors.New("photo is already the main photo")
	// ErrPhotoIsMain 不允许删除当前主照片
	ErrPhotoIsMain = errors.New("photo is the current main photo")
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// GetByIDForUser 查询属于指定用户的照片
func (r *PhotoRepository) GetByIDForUser(photoID, userID int64) (*model.Photo, error) {
	var photo model.Photo
	err := r.db.Where("id = ? AND user_id = ?", photoID, userID).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByUser 查询用户的全部照片
func (r *PhotoRepository) ListByUser(userID int64) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&photos).Error
	return photos, err
}

// Create 创建照片记录。用户的第一张照片在同一事务内自动设为主照片，
// 并发首张上传也不会出现两张主照片
func (r *PhotoRepository) Create(photo *model.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Photo{}).
			Where("user_id = ?", photo.UserID).
			Count(&count).Error; err != nil {
			return err
		}
		photo.IsMain = count == 0
		return tx.Create(photo).Error
	})
}

// SetMain 把目标照片设为主照片：清掉现有主照片标记并设置新标记，
// 一对写操作在同一事务内完成，任何时刻主照片数不为零也不为二
func (r *PhotoRepository) SetMain(photoID, userID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var photo model.Photo
		if err := tx.Where("id = ? AND user_id = ?", photoID, userID).
			First(&photo).Error; err != nil {
			return err
		}
		if photo.IsMain {
			return ErrPhotoAlreadyMain
		}

		if err := tx.Model(&model.Photo{}).
			Where("user_id = ? AND is_main = ?", userID, true).
			Update("is_main", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Photo{}).
			Where("id = ?", photoID).
			Update("is_main", true).Error
	})
}

// Delete 删除照片记录，主照片必须先改派再删除
func (r *PhotoRepository) Delete(photoID, userID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var photo model.Photo
		if err := tx.Where("id = ? AND user_id = ?", photoID, userID).
			First(&photo).Error; err != nil {
			return err
		}
		if photo.IsMain {
			return ErrPhotoIsMain
		}
		return tx.Delete(&photo).Error
	})
}
