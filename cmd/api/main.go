package main

import (
	"DevQuest/internal/api/config"
	"DevQuest/internal/model"
	"DevQuest/internal/pkg/consts"
	"DevQuest/internal/pkg/cron"
	"DevQuest/internal/pkg/database"
	"DevQuest/internal/pkg/es"
	"DevQuest/internal/pkg/llm"
	"DevQuest/internal/pkg/logger"
	"DevQuest/internal/pkg/mongo"
	"DevQuest/internal/pkg/redis"
	"DevQuest/internal/repository"
	"DevQuest/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger()

	// 数据库连接
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}
	if err = migrate(db); err != nil {
		log.Error("Fatal error: failed to migrate database", "err", err)
		panic(err)
	}

	// Redis 连接
	redisCfg := config.Cfg.Redis
	err = redis.InitRedis(redisCfg)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	// Mongo 连接
	mongoCfg := config.Cfg.Mongo
	mongoConn, err := mongo.InitMongo(mongoCfg)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}

	// ElasticSearch 连接
	err = es.InitClient()
	if err != nil {
		log.Error("Fatal error: failed to initialize ElasticSearch", "err", err)
		panic(err)
	}

	// llm 模型初始化
	err = llm.InitLLM()
	if err != nil {
		log.Error("Fatal error: failed to initialize llm models", "err", err)
		panic(err)
	}

	// 无头浏览器，GFG 个人页是前端渲染的，静态抓取失败时降级到浏览器渲染
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// 依赖注入
	app, err := wire.BuildApplication(db, mongoConn, browserCtx, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Platform{},
		&model.PlatformAccount{},
		&model.DailyActivity{},
		&model.UserHeatmap{},
		&model.UserStats{},
		&model.Task{},
		&model.Note{},
		&model.LearningGoal{},
		&model.StudySession{},
		&model.StudyStreak{},
		&model.LearningTrack{},
		&model.Subject{},
		&model.Topic{},
		&model.Resource{},
		&model.Problem{},
		&model.UserTopicProgress{},
	)
	if err != nil {
		return err
	}

	platformRepo := repository.NewPlatformRepo(db)
	return platformRepo.SeedPlatforms(context.Background(), []*model.Platform{
		{Name: "GitHub", Slug: consts.PlatformGithub},
		{Name: "LeetCode", Slug: consts.PlatformLeetcode},
		{Name: "GeeksforGeeks", Slug: consts.PlatformGfg},
		{Name: "Codeforces", Slug: consts.PlatformCodeforces},
		{Name: "HackerRank", Slug: consts.PlatformHackerrank},
	})
}
