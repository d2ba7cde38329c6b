package main

import (
	"cloudvault/internal/api"
	"cloudvault/internal/auth"
	"cloudvault/internal/authclient"
	"cloudvault/internal/cache"
	"cloudvault/internal/config"
	"cloudvault/internal/dashboard"
	"cloudvault/internal/model"
	"cloudvault/internal/service"
	"cloudvault/internal/storage"
	"cloudvault/internal/web"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("Failed to parse config")
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(cfg.Level())

	repo, err := model.InitRepository(cfg.DB)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}
	if repo == nil {
		logrus.Warn("no database configured, dashboard will show sample data")
	} else if cfg.DB.Seed {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := model.SeedDashboard(seedCtx, repo, dashboard.ClassifyExtension, time.Now()); err != nil {
			logrus.WithError(err).Warn("failed to seed dashboard data")
		}
		cancel()
	}

	store, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	var summaryCache service.SummaryCache
	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, dashboard cache disabled")
		} else {
			redisCache := cache.NewRedisCache(client, cfg.Redis.TTL)
			defer redisCache.Close()
			summaryCache = redisCache
		}
	}

	publicBase := api.NormalisePublicBase(cfg.Storage.PublicBaseURL)
	dash := service.NewDashboardService(repo, summaryCache, service.DashboardOptions{
		QuotaBytes:        cfg.Storage.QuotaBytes,
		PublicBaseURL:     publicBase,
		ImageHosts:        cfg.Dashboard.ImageRemoteHosts,
		NotificationLimit: cfg.Dashboard.NotificationLimit,
		BackupLimit:       cfg.Dashboard.BackupLimit,
	})
	files := service.NewFileService(repo, store, dash, cfg.Storage.MaxUploadBytes, publicBase)
	backups := service.NewBackupService(repo, store, dash, publicBase)

	verifier, err := auth.NewPlaceholderVerifier(cfg.Auth.PlaceholderEmail, cfg.Auth.PlaceholderPassword)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise credential verifier")
		return
	}

	httpHandler, err := api.NewHTTPHandler(verifier, dash, files, backups)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	authClient, err := authclient.New(cfg.AuthAPIBaseURL(), cfg.Auth.ClientTimeout)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise auth client")
		return
	}
	pages, err := web.NewPages(authClient, dash)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise pages")
		return
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(api.RequestIDMiddleware())
	r.Use(api.LoggingMiddleware())
	r.Use(api.CORSMiddleware())
	r.Use(gin.Recovery())

	httpHandler.RegisterRoutes(r)
	pages.RegisterRoutes(r)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok && strings.HasPrefix(publicBase, "/") {
		r.Static(publicBase, localProvider.LocalBaseDir())
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logrus.WithFields(logrus.Fields{
		"host":     serverHost,
		"storage":  cfg.Storage.Type,
		"database": cfg.DB.Type,
	}).Info("server starting")

	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  300 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Error("server failed")
	}
}
