package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerniceZTT/estate_crm/config"
	"github.com/BerniceZTT/estate_crm/middleware"
	"github.com/BerniceZTT/estate_crm/repository"
	"github.com/BerniceZTT/estate_crm/routes"
	"github.com/BerniceZTT/estate_crm/service"
	"github.com/BerniceZTT/estate_crm/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	utils.InitLogger()

	// 加载配置
	cfg := config.LoadConfig()

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 注册运行指标
	utils.RegisterMetrics()

	// 初始化数据库
	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer repository.CloseMongoDB()

	if err := repository.InitializeCollections(); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化数据库集合失败")
	}

	// 建立本地快照镜像: 三个集合各自订阅，整体替换快照
	store := service.Store()
	unsubCustomers := repository.SubscribeCustomers(store.ReplaceCustomers)
	unsubActivities := repository.SubscribeActivities(store.ReplaceActivities)
	unsubMeetings := repository.SubscribeMeetings(store.ReplaceMeetings)
	defer func() {
		unsubCustomers()
		unsubActivities()
		unsubMeetings()
	}()

	// 自动晋升规则: 快照变化时扫描，另加每日零点后重扫
	runner := service.NewPromotionRunner(repository.StatusWriter{})
	stopPromotion := runner.Watch(store)
	defer stopPromotion()
	runner.StartDailyRescan(store)

	// 创建Gin实例
	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	// 注册路由
	routes.RegisterRoutes(router)

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("启动服务器失败")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("服务器关闭异常")
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
}
