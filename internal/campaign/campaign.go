package campaign

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/dungeon"
)

var (
	ErrEmptyCampaign = errors.New("campaign has no levels")
	ErrDuplicateID   = errors.New("duplicate level id")
)

type Info struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

type HeroConfig struct {
	PV       int    `yaml:"pv" json:"pv"`
	Strategy string `yaml:"strategy" json:"strategy"`
}

type LevelConfig struct {
	ID           int          `yaml:"id" json:"id"`
	Name         string       `yaml:"name" json:"name"`
	Difficulty   int          `yaml:"difficulty" json:"difficulty"`
	Budget       int          `yaml:"budget" json:"budget"`
	DungeonFile  string       `yaml:"dungeon_file" json:"dungeon_file"`
	WakeInterval *int         `yaml:"wake_interval,omitempty" json:"wake_interval,omitempty"`
	Heroes       []HeroConfig `yaml:"heroes" json:"heroes"`
}

// Campaign - последовательность уровней из файла кампании
type Campaign struct {
	Info   Info          `yaml:"campaign" json:"campaign"`
	Levels []LevelConfig `yaml:"levels" json:"levels"`

	// baseDir - папка файла кампании, от нее считаются пути к подземельям
	baseDir string
}

// Load читает кампанию из YAML или JSON (по расширению)
func Load(path string) (*Campaign, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Campaign
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &c)
	default:
		err = yaml.Unmarshal(b, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("parse campaign %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("campaign %s: %w", path, err)
	}
	c.baseDir = filepath.Dir(path)
	return &c, nil
}

func (c *Campaign) Validate() error {
	if len(c.Levels) == 0 {
		return ErrEmptyCampaign
	}
	seen := make(map[int]bool, len(c.Levels))
	for _, l := range c.Levels {
		if seen[l.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, l.ID)
		}
		seen[l.ID] = true
	}
	return nil
}

// DungeonPath возвращает путь к файлу подземелья уровня
func (c *Campaign) DungeonPath(cfg LevelConfig) string {
	if filepath.IsAbs(cfg.DungeonFile) || c.baseDir == "" {
		return cfg.DungeonFile
	}
	return filepath.Join(c.baseDir, cfg.DungeonFile)
}

// BuildOptions - общие для всех уровней параметры сборки
type BuildOptions struct {
	Rules    domain.Rules
	Registry *pathfind.Registry
	// WakeInterval используется, если уровень не задает свой
	WakeInterval int
}

// BuildLevel загружает подземелье уровня и собирает уровень.
// Если героев в конфиге нет, берутся герои из файла подземелья.
func (c *Campaign) BuildLevel(cfg LevelConfig, opts BuildOptions) (*simulation.Level, error) {
	if cfg.DungeonFile == "" {
		return nil, fmt.Errorf("level %d: dungeon_file is required", cfg.ID)
	}
	data, err := os.ReadFile(c.DungeonPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", cfg.ID, err)
	}
	doc, err := dungeon.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", cfg.ID, err)
	}
	grid, err := doc.DecodeGrid(opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", cfg.ID, err)
	}

	wake := opts.WakeInterval
	if cfg.WakeInterval != nil {
		wake = *cfg.WakeInterval
	}
	b := simulation.NewLevelBuilder(opts.Registry).
		WithID(cfg.ID).
		WithName(cfg.Name).
		WithDifficulty(cfg.Difficulty).
		WithBudget(cfg.Budget).
		WithWakeInterval(wake).
		WithDungeon(grid)

	if len(cfg.Heroes) > 0 {
		for _, h := range cfg.Heroes {
			b.AddHero(h.PV, h.Strategy)
		}
	} else {
		for _, h := range doc.DecodeHeroes() {
			b.AddHeroInstance(h)
		}
	}
	return b.Build()
}
