package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"spytracker/internal/config"
	cronrunner "spytracker/internal/cron"
	"spytracker/internal/db"
	"spytracker/internal/handler"
	"spytracker/internal/logger"
	gormrepository "spytracker/internal/repository/gorm"
	"spytracker/internal/service"

	_ "spytracker/docs"
)

func main() {
	cfgPath := os.Getenv("SPY_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("SPY_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Driver, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	userID := cfg.Journal.UserID

	journalSvc := &service.JournalService{Repo: store, UserID: userID}
	plannerSvc := &service.PlannerService{Repo: store, UserID: userID}
	backupSvc := &service.BackupService{Repo: store, UserID: userID}
	dailyStatsSvc := &service.DailyStatsService{Repo: store, Logger: logger, UserID: userID}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	tradesHandler := &handler.TradesHandler{Repo: store, Journal: journalSvc, UserID: userID}
	tradesHandler.Register(engine)
	plannerHandler := &handler.PlannerHandler{Planner: plannerSvc}
	plannerHandler.Register(engine)
	statsHandler := &handler.StatsHandler{Repo: store, Daily: dailyStatsSvc, Journal: cfg.Journal, UserID: userID}
	statsHandler.Register(engine)
	backupHandler := &handler.BackupHandler{Backup: backupSvc}
	backupHandler.Register(engine)
	catalogHandler := &handler.CatalogHandler{Journal: cfg.Journal}
	catalogHandler.Register(engine)
	riskHandler := &handler.RiskHandler{Risk: cfg.Risk}
	riskHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err = cronRunner.Add(cfg.Cron.DailyStats, func(ctx context.Context) {
			if err := dailyStatsSvc.RunOnce(ctx); err != nil {
				logger.Warn("cron daily stats rebuild failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Fatal("cron schedule invalid", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()

		go func() {
			if err := dailyStatsSvc.RunOnce(ctx); err != nil {
				logger.Warn("startup daily stats rebuild failed", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
