package pathfind

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/RemiF1908/pcd/internal/domain"
)

var (
	ErrUnknownStrategy = errors.New("unknown path strategy")
	ErrInvalidStrategy = errors.New("invalid path strategy")
)

// Strategy - контракт алгоритма поиска пути.
// FindPath возвращает путь от start до goal включительно
// или пустой (не nil) срез, если цель недостижима.
type Strategy interface {
	Name() string
	FindPath(g *domain.Grid, start, goal domain.Coord) []domain.Coord
}

// Factory создает экземпляр стратегии
type Factory func() Strategy

// Registry - реестр стратегий по имени (без учета регистра)
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry возвращает новый реестр со стратегиями shortest и safest
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(domain.StrategyShortest, func() Strategy { return Shortest{} })
	_ = r.Register(domain.StrategySafest, func() Strategy { return Safest{} })
	return r
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register добавляет стратегию. Фабрика проверяется пробным вызовом:
// если она ничего не создает, регистрация отклоняется.
func (r *Registry) Register(name string, f Factory) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidStrategy)
	}
	if f == nil {
		return fmt.Errorf("%w: %q has nil factory", ErrInvalidStrategy, name)
	}
	if probe := f(); probe == nil {
		return fmt.Errorf("%w: %q factory returned nil", ErrInvalidStrategy, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = f
	return nil
}

// New создает стратегию по имени
func (r *Registry) New(name string) (Strategy, error) {
	r.mu.RLock()
	f, ok := r.factories[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStrategy, name, strings.Join(r.Names(), ", "))
	}
	return f(), nil
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalize(name)]
	return ok
}

// Names возвращает отсортированный список зарегистрированных имен
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FindPath - короткий путь: создать стратегию и сразу найти путь
func (r *Registry) FindPath(name string, g *domain.Grid, start, goal domain.Coord) ([]domain.Coord, error) {
	s, err := r.New(name)
	if err != nil {
		return nil, err
	}
	return s.FindPath(g, start, goal), nil
}
