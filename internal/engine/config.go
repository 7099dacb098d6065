package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RemiF1908/pcd/internal/campaign"
	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/infrastructure/storage"
	"github.com/RemiF1908/pcd/internal/pathfind"
)

// Config хранит параметры запуска движка
type Config struct {
	// WakeInterval - через сколько тиков входит следующий герой
	WakeInterval int          `yaml:"wake_interval"`
	Rules        domain.Rules `yaml:"rules"`

	// Хранилище подземелий: Redis, если задан адрес, иначе папка
	SaveDir     string        `yaml:"save_dir"`
	RedisAddr   string        `yaml:"redis_addr"`
	RedisPrefix string        `yaml:"redis_prefix"`
	RedisTTL    time.Duration `yaml:"redis_ttl"`

	JournalDir string `yaml:"journal_dir"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// TickInterval - пауза между тиками в режиме run
	TickInterval time.Duration `yaml:"tick_interval"`
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		WakeInterval: domain.DefaultWakeInterval,
		Rules:        domain.DefaultRules(),
		SaveDir:      "saves",
		JournalDir:   "journals",
		LogLevel:     "info",
		LogFormat:    "text",
		TickInterval: 300 * time.Millisecond,
	}
}

// LoadConfig читает YAML поверх значений по умолчанию.
// Пустой путь дает конфиг по умолчанию. Окружение переопределяет файл.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("DD_SAVE_DIR"); ok {
		c.SaveDir = v
	}
	if v, ok := os.LookupEnv("DD_REDIS_ADDR"); ok {
		c.RedisAddr = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
}

func (c Config) Validate() error {
	if c.WakeInterval < 0 {
		return fmt.Errorf("wake_interval must not be negative: %d", c.WakeInterval)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("tick_interval must not be negative: %s", c.TickInterval)
	}
	r := c.Rules
	for name, v := range map[string]int{
		"trap_cost":       r.TrapCost,
		"trap_damage":     r.TrapDamage,
		"wall_cost":       r.WallCost,
		"dragon_cost":     r.DragonCost,
		"dragon_power":    r.DragonPower,
		"dragon_cooldown": r.DragonCooldown,
		"bomb_cost":       r.BombCost,
		"bomb_power":      r.BombPower,
	} {
		if v < 0 {
			return fmt.Errorf("rules.%s must not be negative: %d", name, v)
		}
	}
	return nil
}

// OpenStore создает хранилище подземелий по конфигу
func (c Config) OpenStore(ctx context.Context) (storage.DungeonStore, error) {
	if c.RedisAddr == "" {
		fs, err := storage.NewFileStore(c.SaveDir)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}

	client, err := storage.NewRedisClient(c.RedisAddr)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis %s: %w", c.RedisAddr, err)
	}
	rs, err := storage.NewRedisStore(&storage.RedisConfig{
		Client: client,
		Prefix: c.RedisPrefix,
		TTL:    c.RedisTTL,
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// BuildOptions - параметры сборки уровней кампании из конфига
func (c Config) BuildOptions(registry *pathfind.Registry) campaign.BuildOptions {
	return campaign.BuildOptions{
		Rules:        c.Rules,
		Registry:     registry,
		WakeInterval: c.WakeInterval,
	}
}
