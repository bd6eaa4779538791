package main

import (
	"context"
	"time"

	"kanbanpro/internal/adapter/blob"
	httpadapter "kanbanpro/internal/adapter/http"
	"kanbanpro/internal/adapter/http/handlers"
	httpmiddleware "kanbanpro/internal/adapter/http/middleware"
	"kanbanpro/internal/app/service"
	"kanbanpro/internal/app/state"
	"kanbanpro/internal/config"
	"kanbanpro/pkg/translator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const startupTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.String("env", cfg.AppEnv), zap.Error(err))
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Warn("failed to close storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
		}
	}()

	blobs, err := blob.NewFileStore(cfg.AttachmentsDir)
	if err != nil {
		logger.Fatal("failed to prepare attachments dir", zap.String("dir", cfg.AttachmentsDir), zap.Error(err))
	}

	seedHash, err := service.HashPassword(cfg.SeedPassword)
	if err != nil {
		logger.Fatal("invalid seed password", zap.Error(err))
	}
	store := state.NewStore(kv)
	if err := store.Load(ctx, state.Seed{PasswordHash: seedHash}); err != nil {
		logger.Fatal("failed to load state", zap.Error(err))
	}

	loc := cfg.Location()
	authService := service.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL)
	userService := service.NewUserService(store)
	boardService := service.NewBoardService(store, blobs)
	taskService := service.NewTaskService(store, blobs)
	attachmentService := service.NewAttachmentService(store, blobs, loc)
	analyticsService := service.NewAnalyticsService(store, loc)

	if cfg.AppEnv != config.EnvDev {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), corsMiddleware(cfg))

	httpadapter.RegisterRoutes(r, authService, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(kv, cfg.StorageDriver),
		Auth:        handlers.NewAuthHandler(authService, userService, boardService, taskService),
		Users:       handlers.NewUserHandler(userService),
		Boards:      handlers.NewBoardHandler(boardService, taskService, analyticsService, loc),
		Tasks:       handlers.NewTaskHandler(taskService, loc),
		Attachments: handlers.NewAttachmentHandler(attachmentService, cfg.MaxUploadBytes),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.AppEnv == config.EnvDev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return cors.Default()
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Authorization", "Accept-Language")
	return cors.New(corsConfig)
}
