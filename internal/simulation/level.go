package simulation

import (
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/RemiF1908/pcd/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBudget     = 100
	DefaultDifficulty = 1
)

// Level - неизменяемое после сборки описание уровня.
// Наружу отдаются только копии карты и героев.
type Level struct {
	ID           int
	Name         string
	Difficulty   int
	Budget       int
	WakeInterval int

	dungeon *domain.Grid
	heroes  []*domain.Hero
}

// Dungeon возвращает копию карты уровня
func (l *Level) Dungeon() *domain.Grid {
	if l.dungeon == nil {
		return nil
	}
	return l.dungeon.Clone()
}

// Heroes возвращает копии героев уровня
func (l *Level) Heroes() []*domain.Hero {
	out := make([]*domain.Hero, len(l.heroes))
	for i, h := range l.heroes {
		out[i] = h.Clone()
	}
	return out
}

func (l *Level) HeroCount() int { return len(l.heroes) }

func (l *Level) String() string {
	return fmt.Sprintf("Level(id=%d, difficulty=%d, budget=%d, heroes=%d)", l.ID, l.Difficulty, l.Budget, len(l.heroes))
}

// LevelBuilder собирает уровень по шагам
type LevelBuilder struct {
	registry     *pathfind.Registry
	id           int
	name         string
	budget       int
	difficulty   int
	wakeInterval int
	dungeon      *domain.Grid
	heroes       []*domain.Hero
}

func NewLevelBuilder(registry *pathfind.Registry) *LevelBuilder {
	b := &LevelBuilder{registry: registry}
	return b.Reset()
}

// Reset возвращает билдер к значениям по умолчанию
func (b *LevelBuilder) Reset() *LevelBuilder {
	b.id = 1
	b.name = ""
	b.budget = DefaultBudget
	b.difficulty = DefaultDifficulty
	b.wakeInterval = domain.DefaultWakeInterval
	b.dungeon = nil
	b.heroes = nil
	return b
}

func (b *LevelBuilder) WithID(id int) *LevelBuilder {
	b.id = id
	return b
}

func (b *LevelBuilder) WithName(name string) *LevelBuilder {
	b.name = name
	return b
}

// WithBudget задает бюджет (не меньше 0)
func (b *LevelBuilder) WithBudget(budget int) *LevelBuilder {
	b.budget = max(0, budget)
	return b
}

// WithDifficulty задает сложность (не меньше 1)
func (b *LevelBuilder) WithDifficulty(difficulty int) *LevelBuilder {
	b.difficulty = max(1, difficulty)
	return b
}

func (b *LevelBuilder) WithWakeInterval(ticks int) *LevelBuilder {
	b.wakeInterval = max(0, ticks)
	return b
}

func (b *LevelBuilder) WithDungeon(g *domain.Grid) *LevelBuilder {
	b.dungeon = g
	return b
}

func (b *LevelBuilder) AddHero(hp int, strategy string) *LevelBuilder {
	n := len(b.heroes) + 1
	h := domain.NewHero(utils.GenerateID("hero"), fmt.Sprintf("Hero %d", n), hp, strategy)
	b.heroes = append(b.heroes, h)
	return b
}

func (b *LevelBuilder) AddHeroes(count, hp int, strategy string) *LevelBuilder {
	for i := 0; i < count; i++ {
		b.AddHero(hp, strategy)
	}
	return b
}

// AddHeroInstance добавляет готового героя (копию)
func (b *LevelBuilder) AddHeroInstance(h *domain.Hero) *LevelBuilder {
	b.heroes = append(b.heroes, h.Clone())
	return b
}

// Build ставит героев на вход и сразу считает им путь.
// Героям с незарегистрированной стратегией путь не считается.
func (b *LevelBuilder) Build() (*Level, error) {
	if b.dungeon == nil {
		return nil, domain.ErrNoDungeon
	}

	lvl := &Level{
		ID:           b.id,
		Name:         b.name,
		Difficulty:   b.difficulty,
		Budget:       b.budget,
		WakeInterval: b.wakeInterval,
		dungeon:      b.dungeon.Clone(),
		heroes:       make([]*domain.Hero, len(b.heroes)),
	}
	if lvl.Name == "" {
		lvl.Name = fmt.Sprintf("Level %d", lvl.ID)
	}

	log := logger.Log.WithFields(logrus.Fields{"component": "level_builder", "level_id": lvl.ID})
	for i, src := range b.heroes {
		h := src.Clone()
		h.Restore(lvl.dungeon.Entry)
		h.WakeDelay = i * lvl.WakeInterval

		if b.registry != nil && b.registry.Has(h.Strategy) {
			h.Path, _ = b.registry.FindPath(h.Strategy, lvl.dungeon, h.Pos, lvl.dungeon.Exit)
		} else {
			log.WithField("strategy", h.Strategy).Debug("No pathfinder for strategy, path skipped")
		}
		lvl.heroes[i] = h
	}

	log.WithField("heroes", len(lvl.heroes)).Debug("Level built")
	return lvl, nil
}
