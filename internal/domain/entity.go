package domain

import (
	"fmt"
	"strings"
)

// EntityKind - семантический тип содержимого клетки.
// Ядро не знает ничего о символах и цветах, только о типе.
type EntityKind uint8

const (
	KindFloor EntityKind = iota
	KindWall
	KindTrap
	KindDragon
	KindBomb
)

var kindToString = map[EntityKind]string{
	KindFloor:  "Floor",
	KindWall:   "Wall",
	KindTrap:   "Trap",
	KindDragon: "Dragon",
	KindBomb:   "Bomb",
}

var stringToKind = map[string]EntityKind{
	"FLOOR":  KindFloor,
	"WALL":   KindWall,
	"TRAP":   KindTrap,
	"DRAGON": KindDragon,
	"BOMB":   KindBomb,
	"BOMBE":  KindBomb,
}

func (k EntityKind) String() string {
	if s, ok := kindToString[k]; ok {
		return s
	}
	return "Unknown"
}

// ParseKind конвертирует имя типа (без учета регистра) в EntityKind
func ParseKind(s string) (EntityKind, error) {
	if k, ok := stringToKind[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KindFloor, fmt.Errorf("%w: %q", ErrUnknownEntity, s)
}

// Entity - закрытый набор вариантов содержимого клетки.
// Реализации есть только в этом пакете.
type Entity interface {
	Kind() EntityKind
	Passable() bool
	// Damage - контактный урон при входе в клетку
	Damage() int
	Cost() int

	clone() Entity
}

// Monster - сущность, атакующая героев в своей зоне поражения
type Monster interface {
	Entity

	Range() []Coord
	// InitRange рассчитывает зону поражения от позиции размещения
	InitRange(at Coord, rows, cols int)
	InRange(c Coord) bool
	Power() int
	Armed() bool
	Trigger()
	Triggered() bool
	Cooldown() int
	// Update продвигает внутренний таймер на один тик.
	// Возвращает true, если монстра нужно убрать с карты.
	Update() bool
}

// Clone возвращает независимую копию сущности (nil для пола)
func Clone(e Entity) Entity {
	if e == nil {
		return nil
	}
	return e.clone()
}

// --- Floor ---

type Floor struct{}

func NewFloor() *Floor { return &Floor{} }

func (f *Floor) Kind() EntityKind { return KindFloor }
func (f *Floor) Passable() bool   { return true }
func (f *Floor) Damage() int      { return 0 }
func (f *Floor) Cost() int        { return CostFloor }
func (f *Floor) clone() Entity    { return &Floor{} }

// --- Wall ---

type Wall struct {
	cost int
}

func NewWall(cost int) *Wall { return &Wall{cost: cost} }

func (w *Wall) Kind() EntityKind { return KindWall }
func (w *Wall) Passable() bool   { return false }
func (w *Wall) Damage() int      { return 0 }
func (w *Wall) Cost() int        { return w.cost }
func (w *Wall) clone() Entity    { c := *w; return &c }

// --- Trap ---

type Trap struct {
	damage int
	cost   int
}

func NewTrap(damage, cost int) *Trap { return &Trap{damage: damage, cost: cost} }

func (t *Trap) Kind() EntityKind { return KindTrap }
func (t *Trap) Passable() bool   { return true }
func (t *Trap) Damage() int      { return t.damage }
func (t *Trap) Cost() int        { return t.cost }
func (t *Trap) clone() Entity    { c := *t; return &c }

// --- общая часть монстров ---

type threat struct {
	power     int
	cost      int
	triggered bool
	cells     []Coord
	lookup    map[Coord]struct{}
}

func (m *threat) setRange(cells []Coord) {
	m.cells = cells
	m.lookup = make(map[Coord]struct{}, len(cells))
	for _, c := range cells {
		m.lookup[c] = struct{}{}
	}
}

func (m *threat) Range() []Coord {
	out := make([]Coord, len(m.cells))
	copy(out, m.cells)
	return out
}

func (m *threat) InRange(c Coord) bool {
	_, ok := m.lookup[c]
	return ok
}

func (m *threat) Power() int      { return m.power }
func (m *threat) Passable() bool  { return true }
func (m *threat) Damage() int     { return 0 }
func (m *threat) Cost() int       { return m.cost }
func (m *threat) Trigger()        { m.triggered = true }
func (m *threat) Triggered() bool { return m.triggered }

func (m *threat) copyThreat() threat {
	c := *m
	c.cells = append([]Coord(nil), m.cells...)
	c.lookup = make(map[Coord]struct{}, len(m.lookup))
	for k := range m.lookup {
		c.lookup[k] = struct{}{}
	}
	return c
}

// --- Dragon ---

// Orientation - направление дыхания дракона
type Orientation uint8

const (
	OrientUp Orientation = iota
	OrientDown
	OrientLeft
	OrientRight
)

func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "U"
	case OrientDown:
		return "D"
	case OrientLeft:
		return "L"
	case OrientRight:
		return "R"
	}
	return "?"
}

// Delta возвращает шаг луча для направления
func (o Orientation) Delta() (int, int) {
	switch o {
	case OrientUp:
		return -1, 0
	case OrientDown:
		return 1, 0
	case OrientLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// ParseOrientation принимает U/D/L/R или полные английские названия
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "U", "UP":
		return OrientUp, nil
	case "D", "DOWN":
		return OrientDown, nil
	case "L", "LEFT":
		return OrientLeft, nil
	case "R", "RIGHT":
		return OrientRight, nil
	}
	return OrientRight, fmt.Errorf("%w: %q", ErrBadOrientation, s)
}

// Dragon бьет по лучу от своей клетки до края карты.
// Готов к атаке, пока cooldown == 0.
type Dragon struct {
	threat
	Orientation Orientation
	maxCooldown int
	cooldown    int
}

func NewDragon(o Orientation, power, cost, maxCooldown int) *Dragon {
	return &Dragon{
		threat:      threat{power: power, cost: cost},
		Orientation: o,
		maxCooldown: maxCooldown,
	}
}

func (d *Dragon) Kind() EntityKind { return KindDragon }
func (d *Dragon) Armed() bool      { return d.cooldown == 0 }
func (d *Dragon) Cooldown() int    { return d.cooldown }
func (d *Dragon) MaxCooldown() int { return d.maxCooldown }

func (d *Dragon) InitRange(at Coord, rows, cols int) {
	dr, dc := d.Orientation.Delta()
	var cells []Coord
	for c := at.Shift(dr, dc); c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols; c = c.Shift(dr, dc) {
		cells = append(cells, c)
	}
	d.setRange(cells)
}

func (d *Dragon) Update() bool {
	if d.triggered && d.cooldown == 0 {
		d.triggered = false
		d.cooldown = d.maxCooldown
		return false
	}
	if d.cooldown > 0 {
		d.cooldown--
	}
	return false
}

func (d *Dragon) clone() Entity {
	c := *d
	c.threat = d.copyThreat()
	return &c
}

// --- Bomb ---

// Bomb взрывается один раз и исчезает на следующем тике
type Bomb struct {
	threat
}

func NewBomb(power, cost int) *Bomb {
	return &Bomb{threat: threat{power: power, cost: cost}}
}

func (b *Bomb) Kind() EntityKind { return KindBomb }
func (b *Bomb) Armed() bool      { return true }
func (b *Bomb) Cooldown() int    { return 0 }
func (b *Bomb) Update() bool     { return b.triggered }

func (b *Bomb) InitRange(at Coord, rows, cols int) {
	cells := make([]Coord, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c := at.Shift(dr, dc)
			if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols {
				cells = append(cells, c)
			}
		}
	}
	b.setRange(cells)
}

func (b *Bomb) clone() Entity {
	c := *b
	c.threat = b.copyThreat()
	return &c
}
