package dto

import "time"

// MemberSummary 目录列表中的用户摘要
type MemberSummary struct {
	ID         int64     `json:"id"`
	Username   string    `json:"user_name"`
	KnownAs    string    `json:"known_as"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// MemberDetail 用户详情（含全部照片与资料文本）
type MemberDetail struct {
	MemberSummary
	Introduction *string     `json:"introduction"`
	LookingFor   *string     `json:"looking_for"`
	Interests    *string     `json:"interests"`
	Photos       []PhotoInfo `json:"photos"`
}

// DirectoryQueryRequest 目录查询参数。
// gender 缺省时按请求者的相反性别筛选；order_by 缺省按最近活跃排序
type DirectoryQueryRequest struct {
	Gender   string `form:"gender" binding:"omitempty,oneof=male female"`
	MinAge   int    `form:"min_age" binding:"omitempty,min=18"`
	MaxAge   int    `form:"max_age" binding:"omitempty,max=150"`
	OrderBy  string `form:"order_by" binding:"omitempty,oneof=created last_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// ProfileUpdateRequest 资料更新请求（只更新出现的字段）
type ProfileUpdateRequest struct {
	KnownAs      *string `json:"known_as" binding:"omitempty,min=1,max=255"`
	Introduction *string `json:"introduction" binding:"omitempty,max=4000"`
	LookingFor   *string `json:"looking_for" binding:"omitempty,max=4000"`
	Interests    *string `json:"interests" binding:"omitempty,max=4000"`
	City         *string `json:"city" binding:"omitempty,max=255"`
	Country      *string `json:"country" binding:"omitempty,max=255"`
}

// PaginationMeta 分页元数据
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int64 `json:"totalPages"`
}

// MemberPage 目录查询结果页（缓存序列化需要具体 Items 类型）
type MemberPage struct {
	Items []MemberSummary `json:"items"`
	Meta  PaginationMeta  `json:"meta"`
}
