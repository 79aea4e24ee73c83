// Package main запускает HTTP-сервис составов команд и приглашений
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"team-roster-service/internal/config"
	httpapi "team-roster-service/internal/http"
	"team-roster-service/internal/repository"
	"team-roster-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// .env опционален, в проде переменные приходят из окружения
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	// Применение миграций
	if err := db.Migrate(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// 1. Инициализация репозиториев
	teamRepo := repository.NewTeamRepo(db)
	memberRepo := repository.NewMembershipRepo(db)
	invRepo := repository.NewInvitationRepo(db)
	notifRepo := repository.NewNotificationRepo(db)

	// 2. Инициализация Менеджера Транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Инициализация сервисов
	teamService := service.NewTeamService(teamRepo, memberRepo)

	policy := service.InvitationPolicy{
		RosterCapacity: cfg.RosterCapacity,
		LinkTTL:        cfg.LinkTTL,
		NominationTTL:  cfg.NominationTTL,
	}
	invitationService := service.NewInvitationService(invRepo, teamRepo, memberRepo, notifRepo, txManager, policy, logger)

	notificationService := service.NewNotificationService(notifRepo)

	// 4. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(teamService, invitationService, notificationService, logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
