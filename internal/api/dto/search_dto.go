package dto

// SearchMembersRequest 用户搜索请求
type SearchMembersRequest struct {
	Keyword  string `form:"q" binding:"required,min=1,max=100"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
}
