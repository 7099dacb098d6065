package simulation

import (
	"fmt"
	"strings"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
)

// Preset - параметры готового уровня
type Preset struct {
	Name       string
	Difficulty int
	Budget     int
	HeroCount  int
	HeroHP     int
	Strategy   string
}

// Presets - готовые уровни: слабые герои и большой бюджет в начале,
// сильные герои и малый бюджет в конце.
var Presets = map[string]Preset{
	"easy":   {Name: "easy", Difficulty: 1, Budget: 200, HeroCount: 1, HeroHP: 50, Strategy: domain.StrategySafest},
	"medium": {Name: "medium", Difficulty: 2, Budget: 150, HeroCount: 2, HeroHP: 80, Strategy: domain.StrategySafest},
	"hard":   {Name: "hard", Difficulty: 3, Budget: 100, HeroCount: 4, HeroHP: 100, Strategy: domain.StrategyShortest},
}

// Custom - произвольный пресет
func Custom(difficulty, budget, heroCount, heroHP int, strategy string) Preset {
	return Preset{
		Name:       "custom",
		Difficulty: difficulty,
		Budget:     budget,
		HeroCount:  heroCount,
		HeroHP:     heroHP,
		Strategy:   strategy,
	}
}

// PresetByName ищет пресет без учета регистра
func PresetByName(name string) (Preset, error) {
	p, ok := Presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (available: easy, medium, hard)", name)
	}
	return p, nil
}

// Builder возвращает билдер с параметрами пресета для донастройки
func (p Preset) Builder(registry *pathfind.Registry, dungeon *domain.Grid) *LevelBuilder {
	return NewLevelBuilder(registry).
		WithName(p.Name).
		WithDifficulty(p.Difficulty).
		WithBudget(p.Budget).
		WithDungeon(dungeon).
		AddHeroes(p.HeroCount, p.HeroHP, p.Strategy)
}

// Level собирает уровень пресета на заданной карте
func (p Preset) Level(registry *pathfind.Registry, dungeon *domain.Grid) (*Level, error) {
	return p.Builder(registry, dungeon).Build()
}
