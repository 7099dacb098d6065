package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RemiF1908/pcd/pkg/dungeon"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

const fileExt = ".json"

// FileStore хранит подземелья как JSON-файлы в одной папке
type FileStore struct {
	SaveDir string
}

var _ DungeonStore = (*FileStore)(nil)

func NewFileStore(dir string) (*FileStore, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileStore{SaveDir: dir}, nil
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.SaveDir, name+fileExt)
}

func (s *FileStore) Save(_ context.Context, name string, doc *dungeon.Document) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := dungeon.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode dungeon: %w", err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write dungeon: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "file_store",
		"name":      name,
		"bytes":     len(data),
	}).Info("Dungeon saved")
	return nil
}

func (s *FileStore) Load(_ context.Context, name string) (*dungeon.Document, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read dungeon: %w", err)
	}
	return dungeon.Unmarshal(data)
}

func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.SaveDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}
