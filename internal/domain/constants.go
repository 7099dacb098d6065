package domain

// Стоимость постройки по умолчанию
const (
	CostFloor  = 0
	CostTrap   = 30
	CostWall   = 40
	CostBomb   = 80
	CostDragon = 100
)

// Урон по умолчанию
const (
	DamageTrap    = 10
	PowerDragon   = 30
	PowerBomb     = 50
	CooldownMax   = 4
	DefaultHeroHP = 100
)

// Интервал пробуждения героев (в тиках) между соседними героями волны
const DefaultWakeInterval = 3

// Имена стратегий поиска пути
const (
	StrategyShortest = "shortest"
	StrategySafest   = "safest"
)
