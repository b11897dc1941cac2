package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sigmafes/sigsnakes/internal/accounts"
	"github.com/sigmafes/sigsnakes/internal/engine"
	"github.com/sigmafes/sigsnakes/internal/server"
	"github.com/sigmafes/sigsnakes/internal/version"
	"github.com/sigmafes/sigsnakes/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var usersFile, staticDir string
	flag.Int64Var(&seed, "seed", 0, "Simulation seed (0 for random)")
	flag.StringVar(&usersFile, "users", "users.json", "Path to accounts file")
	flag.StringVar(&staticDir, "static", "public", "Directory with browser client assets")
	flag.Parse()

	logger.Log.Info("Starting sigsnakes server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// 2. Хранилище аккаунтов. Ошибка чтения не фатальна:
	// стартуем с пустым списком.
	store := accounts.NewStore(usersFile)

	// 3. Инициализация ядра
	gameService := engine.NewService(cfg, store)
	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(gameService, port, staticDir)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сбрасываем счета всех залогиненных игроков
	gameService.Stop()

	logger.Log.Info("Done.")
}
