package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SportSync/internal/adapter"
	"SportSync/internal/api"
	"SportSync/internal/config"
	"SportSync/internal/database"
	"SportSync/internal/interfaces"
	"SportSync/internal/logging"
	"SportSync/internal/normalizer"
	"SportSync/internal/publisher"
	"SportSync/internal/repository"
	"SportSync/internal/scheduler"
	"SportSync/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 加载配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("加载配置文件失败: %v", err)
	}

	// 2. 初始化日志
	logger := logging.New(cfg.Log)
	logger.WithField("environment", cfg.Sync.Environment).Info("配置文件加载成功")

	// 3. 数据库（库不存在则先创建，表结构自动迁移）
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 同步结果推送（未配置 Redis 时跳过）
	var syncPublisher interfaces.SyncPublisher
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := publisher.Connect(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			logger.WithError(err).Warn("Redis不可用，同步结果将不推送")
		} else {
			defer func() { _ = client.Close() }()
			syncPublisher = publisher.NewStreamPublisher(client, cfg.Redis.Stream)
			logger.WithField("stream", cfg.Redis.Stream).Info("同步结果推送已启用")
		}
	}

	// 5. 组装同步链路
	registry := adapter.NewSourceRegistry(cfg, logger)
	norm := normalizer.New(cfg.Sync.DisplayZone, logger)
	repo := repository.NewRaceRepository(db)
	upsertService := service.NewUpsertService(repo, norm.DisplayZone(), logger)
	syncService := service.NewSyncService(registry, norm, upsertService, syncPublisher, logger)
	scheduleService := service.NewScheduleService(registry, norm, repo, logger)

	// 6. 定时同步（仅 production/staging 等启用环境）
	sched := scheduler.New(cfg.Sync, syncService, logger)
	sched.Start()

	// 7. 配置Gin运行模式与路由
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 注册ppof 方便调试和监测性能问题
	pprof.Register(r)
	logger.Infof("Gin运行模式: %s", cfg.Server.Mode)

	api.RegisterRoutes(r,
		api.NewSyncHandler(syncService, sched, logger),
		api.NewScheduleHandler(scheduleService, logger),
	)

	// 8. 启动服务，收到退出信号后优雅关闭
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("服务启动成功，端口：%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("收到退出信号，开始关闭服务…")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("HTTP服务关闭失败")
	}
	sched.Stop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("服务已退出")
}
