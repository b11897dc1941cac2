package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный экземпляр логгера для всего приложения.
// Пригоден к использованию сразу; Init донастраивает его при старте.
var Log = logrus.New()

// Init настраивает глобальный логгер по переменным окружения.
// Вызывается один раз при старте приложения в main.go.
func Init() {
	// Уровень логирования из переменной окружения.
	// По умолчанию - "info", для отладки выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// Форматтер: "json" для продакшена и сбора логов,
	// текст с цветами для разработки.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
