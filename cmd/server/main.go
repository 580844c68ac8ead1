package main

import (
	"context"
	"log"
	"net/http"

	"finreview/docs"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"finreview/internal/auth"
	"finreview/internal/cache"
	"finreview/internal/config"
	"finreview/internal/db"
	"finreview/internal/handler"
	"finreview/internal/model"
	"finreview/internal/repository"
	"finreview/internal/router"
	"finreview/internal/service"
	"finreview/internal/storage"
)

// @title Financial Institution Review API
// @version 1.0
// @description Review and forum API for financial institutions with manual account approval.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FinancialInstitution{},
		&model.Category{},
		&model.Thread{},
		&model.Review{},
		&model.Comment{},
		&model.HelpfulVote{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	evidenceStore, err := storage.NewS3EvidenceStore(context.Background(), storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		log.Fatalf("evidence store init: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	institutionRepo := repository.NewInstitutionRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	threadRepo := repository.NewThreadRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	helpfulRepo := repository.NewHelpfulRepository(gormDB)

	// Auth components
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(auth.TokenConfig{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	})
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	recalc := service.NewRecalculator(reviewRepo, commentRepo, helpfulRepo, institutionRepo, threadRepo, cacheClient)
	authService := service.NewAuthService(userRepo, hasher, jwtService, tokenStore)
	approvalService := service.NewApprovalService(userRepo, evidenceStore)
	institutionService := service.NewInstitutionService(institutionRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, institutionRepo, recalc)
	threadService := service.NewThreadService(threadRepo, categoryRepo)
	commentService := service.NewCommentService(commentRepo, threadRepo, recalc)
	helpfulService := service.NewHelpfulService(helpfulRepo, commentRepo, recalc)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	approvalHandler := handler.NewApprovalHandler(approvalService)
	institutionHandler := handler.NewInstitutionHandler(institutionService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	threadHandler := handler.NewThreadHandler(threadService)
	commentHandler := handler.NewCommentHandler(commentService, helpfulService)

	router.Register(
		e,
		cfg,
		jwtService,
		userRepo,
		authHandler,
		approvalHandler,
		institutionHandler,
		reviewHandler,
		threadHandler,
		commentHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
