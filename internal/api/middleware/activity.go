package middleware

import (
	"match-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityToucher 刷新用户活跃时间的函数类型
type ActivityToucher func(userID int64) error

// TrackActivity 活跃时间中间件（必须在 AuthRequired 之后使用）。
// 请求处理完成后刷新当前用户的 last_active，失败只记日志
func TrackActivity(touch ActivityToucher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		userID, ok := GetCurrentUserID(c)
		if !ok {
			return
		}

		if err := touch(userID); err != nil {
			logger.Warn("touch last active failed",
				zap.Int64("user_id", userID),
				zap.Error(err))
		}
	}
}
