package router

import (
	"match-go/internal/api/handler"
	"match-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	photoHandler *handler.PhotoHandler,
	likeHandler *handler.LikeHandler,
	trackActivity gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.GET("/me", authHandler.GetMe)
		}
	}

	// --- 会员目录模块 ---
	members := v1.Group("/members", middleware.AuthRequired(), trackActivity)
	{
		members.GET("", memberHandler.ListMembers)
		members.GET("/search", memberHandler.SearchMembers)
		members.PUT("/me", memberHandler.UpdateProfile)
		members.GET("/:username", memberHandler.GetMember)
	}

	// --- 照片模块 ---
	photos := v1.Group("/photos", middleware.AuthRequired(), trackActivity)
	{
		photos.POST("", photoHandler.UploadPhoto)
		photos.GET("", photoHandler.ListPhotos)
		photos.PUT("/:id/main", photoHandler.SetMainPhoto)
		photos.DELETE("/:id", photoHandler.DeletePhoto)
	}

	// --- 点赞模块 ---
	likes := v1.Group("/likes", middleware.AuthRequired(), trackActivity)
	{
		likes.POST("/:username", likeHandler.AddLike)
		likes.GET("", likeHandler.ListLikes)
	}
}
