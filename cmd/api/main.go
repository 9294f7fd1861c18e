package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"match-go/internal/api/handler"
	"match-go/internal/api/middleware"
	"match-go/internal/api/router"
	"match-go/internal/cache"
	"match-go/internal/config"
	"match-go/internal/infra/database"
	infraES "match-go/internal/infra/elasticsearch"
	infraKafka "match-go/internal/infra/kafka"
	infraMinio "match-go/internal/infra/minio"
	infraRedis "match-go/internal/infra/redis"
	"match-go/internal/model"
	"match-go/internal/repository"
	"match-go/internal/service"
	"match-go/pkg/logger"

	_ "match-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Match-Go API
// @version 1.0
// @description 会员目录与配对服务 API

// @contact.name API Support
// @contact.email support@match.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Photo{},
		&model.UserLike{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化Redis
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 初始化Kafka生产者
	if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
		logger.Fatal("Failed to init kafka producer", zap.Error(err))
	}
	defer infraKafka.CloseProducer()

	// 初始化 Elasticsearch（可选，失败则搜索降级到 DB）
	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else {
		defer infraES.Close()
		if err := infraES.InitIndexes(); err != nil {
			logger.Warn("Elasticsearch index init failed", zap.Error(err))
		}
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	memberCache := cache.NewMemberCache(infraRedis.Get())
	photoStorage := infraMinio.NewPhotoStorage(&cfg.MinIO)

	// 点赞事件发布器，写库成功后尽力投递
	var likePublisher service.LikeEventPublisher
	if topic, ok := cfg.Kafka.Topics["like_created"]; ok {
		likePublisher = func(ctx context.Context, event *infraKafka.LikeEvent) error {
			return infraKafka.SendLikeEvent(ctx, topic, event)
		}
	}

	authService := service.NewAuthService(userRepo)
	memberService := service.NewMemberService(userRepo, memberCache)
	photoService := service.NewPhotoService(photoRepo, photoStorage, memberCache)
	likeService := service.NewLikeService(likeRepo, userRepo, likePublisher)
	searchService := service.NewSearchService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService, searchService)
	photoHandler := handler.NewPhotoHandler(photoService)
	likeHandler := handler.NewLikeHandler(likeService)

	// 活跃时间中间件
	trackActivity := middleware.TrackActivity(memberService.TouchLastActive)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, memberHandler, photoHandler, likeHandler, trackActivity)

	// 启动服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	// 启动HTTP服务器
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.App.Port),
	})
}
