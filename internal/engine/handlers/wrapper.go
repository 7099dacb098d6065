package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RemiF1908/pcd/pkg/api"
)

// ErrInvalidPayload - данные команды не разобрались или не прошли Validate
var ErrInvalidPayload = errors.New("invalid payload")

// TypedHandlerFunc получает уже разобранный и проверенный payload
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - для команд без данных (LAUNCH, STOP, RESET)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload разбирает JSON в T и вызывает Validate, если T его реализует.
// Отсутствующий payload и "null" дают нулевое значение T.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
			if err := json.Unmarshal(trimmed, &payload); err != nil {
				return Result{}, fmt.Errorf("%w: %T: %v", ErrInvalidPayload, payload, err)
			}
		}

		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload игнорирует входящие данные
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
