package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go-splendor/ai"
	"go-splendor/config"
	"go-splendor/controller"
	"go-splendor/logger"
	"go-splendor/repository"
	"go-splendor/router"
	"go-splendor/service"
	"go-splendor/utils"
	"go-splendor/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := repository.InitRedis(ctx, cfg)
	if err != nil {
		zl.Fatal("❌ Redis 连接失败", zap.Error(err))
	}
	defer rdb.Close()

	var history repository.HistoryStore = repository.NewMemoryHistory()
	if cfg.MySQLDSN != "" {
		db, err := repository.OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			zl.Fatal("❌ MySQL 连接失败", zap.Error(err))
		}
		defer db.Close()
		history = db
		zl.Info("✅ 对局历史写入 MySQL")
	}

	store := repository.NewMatchStore(rdb, cfg.LockTTL)
	svc := service.NewGameService(store, history, ai.NewDecider(zl), zl)
	tokens := utils.NewTokenManager(cfg)
	gameLog := ws.NewGameLogWriter(cfg.GameLogDir, svc.GameStartTime, zl)
	hub := ws.NewHub(ctx, svc, tokens, gameLog, cfg.AIDelay, zl)
	go hub.ScheduleDailyRoomReset()

	r := gin.Default()

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r, controller.New(svc, hub, tokens, zl), hub, tokens)

	zl.Info("🚀 服务启动", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("❌ 服务退出", zap.Error(err))
	}
}
