package model

import "time"

// 性别闭集。目前只有两个取值，目录查询的默认异性筛选规则依赖该前提，
// 扩展取值时需要一并重新审视默认筛选策略
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// OppositeGender 返回相反性别（目录查询默认筛选用）
func OppositeGender(gender string) string {
	if gender == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// User 用户模型
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName     string    `gorm:"size:255;not null;uniqueIndex;comment:用户名（统一小写存储）" json:"user_name"`
	SecretHash   []byte    `gorm:"not null;comment:口令HMAC摘要" json:"-"`
	SecretSalt   []byte    `gorm:"not null;comment:每次注册随机生成的HMAC密钥" json:"-"`
	Gender       string    `gorm:"size:16;not null;index:idx_users_gender;comment:性别" json:"gender"`
	DateOfBirth  time.Time `gorm:"not null;index:idx_users_dob;comment:出生日期" json:"date_of_birth"`
	KnownAs      string    `gorm:"size:255;comment:昵称" json:"known_as"`
	Introduction *string   `gorm:"type:text;comment:自我介绍" json:"introduction"`
	LookingFor   *string   `gorm:"type:text;comment:交友期望" json:"looking_for"`
	Interests    *string   `gorm:"type:text;comment:兴趣爱好" json:"interests"`
	City         string    `gorm:"size:255;comment:城市" json:"city"`
	Country      string    `gorm:"size:255;comment:国家" json:"country"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_users_created_at;comment:注册时间" json:"created_at"`
	LastActive   time.Time `gorm:"index:idx_users_last_active;comment:最近活跃时间" json:"last_active"`

	// 关联关系
	Photos []Photo    `gorm:"foreignKey:UserID" json:"photos,omitempty"`
	Likes  []UserLike `gorm:"foreignKey:SourceUserID" json:"likes,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Age 按出生日期计算当前年龄
func (u *User) Age() int {
	return AgeAt(u.DateOfBirth, time.Now())
}

// AgeAt 计算 at 时刻的年龄（今年生日未到则减一）
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.AddDate(-age, 0, 0).Before(dob) {
		age--
	}
	return age
}

// MainPhotoURL 返回主照片 URL，没有照片时返回空串
func (u *User) MainPhotoURL() string {
	for i := range u.Photos {
		if u.Photos[i].IsMain {
			return u.Photos[i].URL
		}
	}
	return ""
}
