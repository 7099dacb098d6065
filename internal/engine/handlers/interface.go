package handlers

import (
	"context"
	"encoding/json"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/infrastructure/storage"
	"github.com/RemiF1908/pcd/internal/simulation"
)

// LevelSwitcher выдает следующий уровень кампании.
// GameService неявно реализует этот интерфейс.
type LevelSwitcher interface {
	NextLevel() (*simulation.Level, error)
}

// Context передает хендлеру симуляцию и ее окружение.
// Хендлер мутирует симуляцию напрямую, сервис держит блокировку.
type Context struct {
	Ctx      context.Context
	Sim      *simulation.Simulation
	Rules    domain.Rules
	Store    storage.DungeonStore // может быть nil
	Switcher LevelSwitcher        // может быть nil
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string           // Текст лога
	MsgType string           // Тип лога (INFO, WAVE, WARN)
	Event   domain.EventType // Событие волны, если команда его вызвала
	Data    json.RawMessage  // Данные ответа (список сохранений, итог волны)
}

// HandlerFunc - это контракт для любой команды (PLACE, LAUNCH, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Info - результат с информационным сообщением
func Info(msg string) Result {
	return Result{Msg: msg, MsgType: "INFO"}
}
