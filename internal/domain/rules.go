package domain

import (
	"fmt"
	"strings"
)

// Rules - параметры сущностей (стоимость, урон, перезарядка).
// Загружаются из конфигурации, по умолчанию DefaultRules().
type Rules struct {
	TrapCost       int `yaml:"trap_cost" json:"trap_cost"`
	TrapDamage     int `yaml:"trap_damage" json:"trap_damage"`
	WallCost       int `yaml:"wall_cost" json:"wall_cost"`
	DragonCost     int `yaml:"dragon_cost" json:"dragon_cost"`
	DragonPower    int `yaml:"dragon_power" json:"dragon_power"`
	DragonCooldown int `yaml:"dragon_cooldown" json:"dragon_cooldown"`
	BombCost       int `yaml:"bomb_cost" json:"bomb_cost"`
	BombPower      int `yaml:"bomb_power" json:"bomb_power"`
}

func DefaultRules() Rules {
	return Rules{
		TrapCost:       CostTrap,
		TrapDamage:     DamageTrap,
		WallCost:       CostWall,
		DragonCost:     CostDragon,
		DragonPower:    PowerDragon,
		DragonCooldown: CooldownMax,
		BombCost:       CostBomb,
		BombPower:      PowerBomb,
	}
}

// Build создает сущность по типу. Для пола возвращает nil.
func (r Rules) Build(kind EntityKind, o Orientation) (Entity, error) {
	switch kind {
	case KindFloor:
		return nil, nil
	case KindWall:
		return NewWall(r.WallCost), nil
	case KindTrap:
		return NewTrap(r.TrapDamage, r.TrapCost), nil
	case KindDragon:
		return NewDragon(o, r.DragonPower, r.DragonCost, r.DragonCooldown), nil
	case KindBomb:
		return NewBomb(r.BombPower, r.BombCost), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEntity, kind)
}

// Parse разбирает короткую запись сущности: "trap", "wall", "bomb",
// "dragon:R" (направление по умолчанию R).
func (r Rules) Parse(spec string) (Entity, error) {
	name, dir, hasDir := strings.Cut(spec, ":")
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	o := OrientRight
	if hasDir {
		if kind != KindDragon {
			return nil, fmt.Errorf("orientation is only valid for dragons: %q", spec)
		}
		if o, err = ParseOrientation(dir); err != nil {
			return nil, err
		}
	}
	return r.Build(kind, o)
}

// CostOf возвращает стоимость постройки для типа
func (r Rules) CostOf(kind EntityKind) int {
	switch kind {
	case KindWall:
		return r.WallCost
	case KindTrap:
		return r.TrapCost
	case KindDragon:
		return r.DragonCost
	case KindBomb:
		return r.BombCost
	}
	return 0
}
