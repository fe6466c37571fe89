package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "kastle-collection-reports/internal/adapter/http"
	"kastle-collection-reports/internal/adapter/middleware"
	"kastle-collection-reports/internal/adapter/repository/postgres"
	"kastle-collection-reports/internal/config"
	"kastle-collection-reports/internal/infrastructure/cache"
	"kastle-collection-reports/internal/infrastructure/db"
	"kastle-collection-reports/internal/usecase/branchreport"
	"kastle-collection-reports/internal/usecase/export"
	"kastle-collection-reports/internal/usecase/productreport"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	gdb, err := db.OpenGorm(cfg.PostgresDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	portfolioRepo := postgres.NewPortfolioRepository(gdb)
	collectionRepo := postgres.NewCollectionRepository(gdb)

	branchUC := branchreport.NewUsecase(portfolioRepo, collectionRepo, logger)
	productUC := productreport.NewUsecase(portfolioRepo, collectionRepo, logger)
	exportUC := export.NewUsecase(cfg.ExportDir, cfg.ExportBaseURL)

	h := httpadp.NewHandler()
	rh := httpadp.NewReportHandler(branchUC, productUC, portfolioRepo, exportUC, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/branches", rh.ListBranches)
	api.GET("/products", rh.ListProducts)

	cacheTTL := time.Duration(cfg.ReportCacheTTLSecs) * time.Second
	reports := api.Group("/reports", middleware.ReportCacheMiddleware(rdb, cacheTTL, logger))
	reports.GET("/branch/:branch_id", rh.GetBranchReport)
	reports.GET("/product/:product_id", rh.GetProductReport)
	reports.POST("/branch/:branch_id/export", rh.ExportBranchReport)
	reports.POST("/product/:product_id/export", rh.ExportProductReport)

	// exported artifacts are plain files served from the artifact dir
	e.Static(cfg.ExportBaseURL, cfg.ExportDir)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
