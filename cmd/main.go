package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/civic_guardian/internal/app"
	"github.com/shenikar/civic_guardian/internal/config"
	v1 "github.com/shenikar/civic_guardian/internal/handler/http/v1"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/observability"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/shenikar/civic_guardian/internal/storage"
	"github.com/shenikar/civic_guardian/pkg/logger"
	redisclient "github.com/shenikar/civic_guardian/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/civic_guardian/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CivicGuardian API
// @version 1.0
// @description This is a CivicGuardian community incident reporting API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func newReportStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (storage.ReportStorage, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageRedis:
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("Successfully connected to Redis")
		return storage.NewRedisStorage(client), func() { client.Close() }, nil
	case config.StorageSQLite:
		st, err := storage.OpenSQLiteStorage(cfg.SQLiteDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open SQLite storage: %w", err)
		}
		log.Info("Successfully opened SQLite storage")
		return st, func() { st.Close() }, nil
	default:
		return storage.NewFileStorage(cfg.StorageFile), func() {}, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Выбор хранилища жалоб
	reportStorage, closeStorage, err := newReportStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize report storage: %v", err)
	}
	defer closeStorage()

	// Инициализация метрик
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// Настоящего источника координат у сервера нет: используем
	// фиксированную точку из конфигурации
	geolocator := service.StaticGeolocator{
		Coordinate: models.Coordinate{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	}

	// Сборка и запуск приложения
	application := app.NewApp(cfg, log, clockwork.NewRealClock(), metrics, reportStorage, geolocator)
	application.Bootstrap(ctx)
	application.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(application, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
