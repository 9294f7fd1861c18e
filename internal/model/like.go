package model

import "time"

// UserLike 用户点赞关系模型（有向边：source 喜欢 target）。
// 复合唯一索引保证同一有序对只能存在一条边，并发重复插入由数据库拒绝
type UserLike struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	SourceUserID int64     `gorm:"not null;uniqueIndex:uq_source_target_like;index:idx_likes_source_id;comment:发起用户ID" json:"source_user_id"`
	TargetUserID int64     `gorm:"not null;uniqueIndex:uq_source_target_like;index:idx_likes_target_id;comment:被喜欢用户ID" json:"target_user_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_likes_created_at;comment:点赞时间" json:"created_at"`
}

func (UserLike) TableName() string {
	return "user_likes"
}
