package model

import "time"

// Photo 用户照片模型。每个至少有一张照片的用户恰好有一张主照片
type Photo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:照片ID" json:"id"`
	UserID     int64     `gorm:"not null;index:idx_photos_user_id;comment:所属用户ID" json:"user_id"`
	URL        string    `gorm:"size:500;not null;comment:访问地址" json:"url"`
	ObjectName string    `gorm:"size:500;not null;comment:对象存储中的外部引用" json:"-"`
	IsMain     bool      `gorm:"not null;default:false;comment:是否主照片" json:"is_main"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:上传时间" json:"created_at"`
}

func (Photo) TableName() string {
	return "photos"
}
