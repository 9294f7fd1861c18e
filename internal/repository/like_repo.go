package repository

import (
	"match-go/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create 创建点赞边。(source, target) 复合唯一索引冲突时
// 返回 gorm.ErrDuplicatedKey，并发重复点赞只会成功一次
func (r *LikeRepository) Create(sourceUserID, targetUserID int64) (*model.UserLike, error) {
	like := &model.UserLike{
		SourceUserID: sourceUserID,
		TargetUserID: targetUserID,
	}
	if err := r.db.Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

// Exists 检查点赞边是否存在
func (r *LikeRepository) Exists(sourceUserID, targetUserID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserLike{}).
		Where("source_user_id = ? AND target_user_id = ?", sourceUserID, targetUserID).
		Count(&count).Error
	return count > 0, err
}

// ListLikedIDs 用户点赞过的对象 ID 列表（出边），按点赞时间倒序分页
func (r *LikeRepository) ListLikedIDs(userID int64, skip, limit int) ([]int64, error) {
	var targetIDs []int64
	err := r.db.Model(&model.UserLike{}).
		Where("source_user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Pluck("target_user_id", &targetIDs).Error
	return targetIDs, err
}

// ListLikedByIDs 点赞过该用户的来源 ID 列表（入边），按点赞时间倒序分页
func (r *LikeRepository) ListLikedByIDs(userID int64, skip, limit int) ([]int64, error) {
	var sourceIDs []int64
	err := r.db.Model(&model.UserLike{}).
		Where("target_user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Pluck("source_user_id", &sourceIDs).Error
	return sourceIDs, err
}

// CountLiked 统计出边数
func (r *LikeRepository) CountLiked(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserLike{}).
		Where("source_user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountLikedBy 统计入边数
func (r *LikeRepository) CountLikedBy(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserLike{}).
		Where("target_user_id = ?", userID).Count(&count).Error
	return count, err
}
