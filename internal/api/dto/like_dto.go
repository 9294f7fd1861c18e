package dto

// 点赞列表方向谓词
const (
	LikePredicateLiked   = "liked"   // 我点赞过的用户（出边）
	LikePredicateLikedBy = "likedBy" // 点赞过我的用户（入边）
)

// LikeListRequest 点赞列表查询参数
type LikeListRequest struct {
	Predicate string `form:"predicate" binding:"omitempty,oneof=liked likedBy"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// LikeResult 点赞操作结果
type LikeResult struct {
	SourceUserID int64  `json:"source_user_id"`
	TargetUserID int64  `json:"target_user_id"`
	TargetName   string `json:"target_name"`
	Mutual       bool   `json:"mutual"`
}
