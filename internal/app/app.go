package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kabanov/user-service/config"
	httpController "github.com/kabanov/user-service/internal/controller/http"
	"github.com/kabanov/user-service/internal/entity"
	"github.com/kabanov/user-service/internal/repo"
	"github.com/kabanov/user-service/internal/usecase"
	"github.com/kabanov/user-service/internal/validation"
	"github.com/kabanov/user-service/pkg/database"
	"github.com/kabanov/user-service/pkg/errors"
	"github.com/kabanov/user-service/pkg/middleware"
)

// App представляет приложение
type App struct {
	config     *config.Config
	httpServer *http.Server
	db         *gorm.DB
	router     *gin.Engine
}

func NewApp(config *config.Config) (*App, error) {
	// Инициализируем PostgreSQL
	db, err := database.NewPostgresDB(config.Postgres)
	if err != nil {
		return nil, errors.AppendPrefix(err, "не удалось подключиться к базе данных")
	}

	// Автомиграция
	if err := database.AutoMigrateWithCleanup(db, &entity.User{}); err != nil {
		return nil, errors.AppendPrefix(err, "не удалось выполнить миграцию")
	}

	// Инициализируем Gin
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestLogger())
	router.Use(errors.RecoveryMiddleware())
	router.NoRoute(errors.NotFoundHandler())
	router.NoMethod(errors.MethodNotAllowedHandler())

	httpServer := &http.Server{
		Addr:         ":" + config.HTTP.Port,
		Handler:      router,
		ReadTimeout:  config.HTTP.ReadTimeout,
		WriteTimeout: config.HTTP.WriteTimeout,
	}

	return &App{
		config:     config,
		httpServer: httpServer,
		db:         db,
		router:     router,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Инициализация зависимостей ---
	userRepo := repo.NewUserGormRepository(a.db)
	userUseCase := usecase.NewUserUseCase(userRepo)
	validator := validation.NewValidator(a.config.Validation.RejectionMessage)

	// --- Настройка HTTP ---
	userHandler := httpController.NewUserHandler(userUseCase, validator)
	userHandler.RegisterRoutes(a.router)

	// Запускаем HTTP сервер
	go func() {
		log.Printf("HTTP сервер запущен на порту %s", a.config.HTTP.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска HTTP сервера: %v", err)
		}
	}()

	// --- Ожидание завершения ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Println("Получен сигнал завершения, закрываем приложение...")
	case <-ctx.Done():
		log.Println("Контекст завершен, закрываем приложение...")
	}

	return a.Shutdown()
}

// Shutdown корректно завершает работу приложения
func (a *App) Shutdown() error {
	errGroup := errors.NewErrorGroup()

	// Закрываем HTTP сервер
	if a.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.httpServer.Shutdown(ctx); err != nil {
			errGroup.AddPrefix(err, "ошибка при закрытии HTTP сервера")
		}
	}

	// Закрываем БД
	if a.db != nil {
		if err := database.CloseDB(a.db); err != nil {
			errGroup.AddPrefix(err, "ошибка при закрытии соединения с базой данных")
		}
	}

	if errGroup.HasErrors() {
		errors.LogError(errGroup, "Shutdown")
		return errGroup
	}

	log.Println("Приложение успешно завершено")
	return nil
}
