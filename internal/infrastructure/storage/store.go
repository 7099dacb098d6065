package storage

import (
	"context"
	"errors"

	"github.com/RemiF1908/pcd/pkg/dungeon"
)

//go:generate mockgen -destination=mock/mock_store.go -package=storagemock github.com/RemiF1908/pcd/internal/infrastructure/storage DungeonStore

var (
	ErrNotFound    = errors.New("dungeon not found")
	ErrInvalidName = errors.New("invalid dungeon name")
)

// DungeonStore - хранилище сохраненных подземелий
type DungeonStore interface {
	Save(ctx context.Context, name string, doc *dungeon.Document) error
	Load(ctx context.Context, name string) (*dungeon.Document, error)
	// List возвращает отсортированные имена сохранений
	List(ctx context.Context) ([]string, error)
}
