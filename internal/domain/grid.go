package domain

import "fmt"

// Cell - клетка подземелья. Entity == nil означает пол.
type Cell struct {
	Pos    Coord
	Entity Entity
}

func (c *Cell) Kind() EntityKind {
	if c.Entity == nil {
		return KindFloor
	}
	return c.Entity.Kind()
}

func (c *Cell) IsFloor() bool { return c.Kind() == KindFloor }

func (c *Cell) Walkable() bool {
	return c.Entity == nil || c.Entity.Passable()
}

// Damage - контактный урон клетки
func (c *Cell) Damage() int {
	if c.Entity == nil {
		return 0
	}
	return c.Entity.Damage()
}

func (c *Cell) Dangerous() bool { return c.Damage() > 0 }

// Cost - стоимость стоящей в клетке постройки
func (c *Cell) Cost() int {
	if c.Entity == nil {
		return 0
	}
	return c.Entity.Cost()
}

// Set кладет сущность в клетку, заменяя прежнюю. Пол хранится как nil.
func (c *Cell) Set(e Entity) {
	if e != nil && e.Kind() == KindFloor {
		e = nil
	}
	c.Entity = e
}

// Monster возвращает монстра клетки, если он есть
func (c *Cell) Monster() (Monster, bool) {
	if c.Entity == nil {
		return nil, false
	}
	m, ok := c.Entity.(Monster)
	return m, ok
}

// PlacedMonster - монстр вместе с его клеткой
type PlacedMonster struct {
	Pos     Coord
	Monster Monster
}

// Grid - прямоугольная карта подземелья
type Grid struct {
	Rows  int
	Cols  int
	Entry Coord
	Exit  Coord

	cells [][]*Cell
}

// NewGrid создает пустую карту (все клетки - пол)
func NewGrid(rows, cols int, entry, exit Coord) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	g := &Grid{Rows: rows, Cols: cols, Entry: entry, Exit: exit}
	if !g.InBounds(entry) {
		return nil, fmt.Errorf("entry %s: %w", entry, ErrOutOfBounds)
	}
	if !g.InBounds(exit) {
		return nil, fmt.Errorf("exit %s: %w", exit, ErrOutOfBounds)
	}

	g.cells = make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = &Cell{Pos: Coord{Row: r, Col: c}}
		}
	}
	return g, nil
}

// Size возвращает количество клеток
func (g *Grid) Size() int { return g.Rows * g.Cols }

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Cell возвращает клетку по координате
func (g *Grid) Cell(c Coord) (*Cell, bool) {
	if !g.InBounds(c) {
		return nil, false
	}
	return g.cells[c.Row][c.Col], true
}

func (g *Grid) Walkable(c Coord) bool {
	cell, ok := g.Cell(c)
	return ok && cell.Walkable()
}

// ValidMove - единственный предикат расширения соседей при поиске пути
// и проверки хода героя: клетка в пределах карты и проходима.
func (g *Grid) ValidMove(c Coord) bool {
	return g.Walkable(c)
}

// Damage возвращает контактный урон клетки (0 вне карты)
func (g *Grid) Damage(c Coord) int {
	cell, ok := g.Cell(c)
	if !ok {
		return 0
	}
	return cell.Damage()
}

// Place ставит сущность в клетку и возвращает прежнюю.
// Для монстров сразу рассчитывается зона поражения.
func (g *Grid) Place(c Coord, e Entity) (Entity, error) {
	cell, ok := g.Cell(c)
	if !ok {
		return nil, fmt.Errorf("place at %s: %w", c, ErrOutOfBounds)
	}
	if m, ok := e.(Monster); ok {
		m.InitRange(c, g.Rows, g.Cols)
	}
	prev := cell.Entity
	cell.Set(e)
	return prev, nil
}

// Remove заменяет содержимое клетки полом и возвращает прежнее
func (g *Grid) Remove(c Coord) (Entity, error) {
	cell, ok := g.Cell(c)
	if !ok {
		return nil, fmt.Errorf("remove at %s: %w", c, ErrOutOfBounds)
	}
	prev := cell.Entity
	cell.Entity = nil
	return prev, nil
}

// Clear превращает все клетки в пол
func (g *Grid) Clear() {
	g.Each(func(cell *Cell) { cell.Entity = nil })
}

// Each обходит клетки построчно
func (g *Grid) Each(fn func(cell *Cell)) {
	for _, row := range g.cells {
		for _, cell := range row {
			fn(cell)
		}
	}
}

// Monsters возвращает монстров в порядке обхода строк
func (g *Grid) Monsters() []PlacedMonster {
	var out []PlacedMonster
	g.Each(func(cell *Cell) {
		if m, ok := cell.Monster(); ok {
			out = append(out, PlacedMonster{Pos: cell.Pos, Monster: m})
		}
	})
	return out
}

// TotalCost - суммарная стоимость всех построек на карте
func (g *Grid) TotalCost() int {
	total := 0
	g.Each(func(cell *Cell) { total += cell.Cost() })
	return total
}

// Clone делает глубокую копию карты вместе с состоянием монстров
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Entry: g.Entry, Exit: g.Exit}
	out.cells = make([][]*Cell, g.Rows)
	for r, row := range g.cells {
		out.cells[r] = make([]*Cell, g.Cols)
		for c, cell := range row {
			out.cells[r][c] = &Cell{Pos: cell.Pos, Entity: Clone(cell.Entity)}
		}
	}
	return out
}
