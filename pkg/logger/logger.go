package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем info.
var Log = logrus.New()

// Init инициализирует глобальный логгер из окружения.
// Эта функция должна быть вызвана один раз при старте приложения.
func Init() {
	// Уровень из LOG_LEVEL. По умолчанию - "info". Для отладки - "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	Configure(logLevel, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure пересобирает глобальный логгер с явными параметрами.
// "json" - для продакшена и сбора логов, иначе текст для разработки.
func Configure(level, format string, out io.Writer) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}
