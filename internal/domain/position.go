package domain

import "fmt"

// Coord - координата клетки подземелья (строка, столбец)
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C - короткий конструктор координаты
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Shift возвращает новую координату со смещением
func (c Coord) Shift(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan возвращает манхэттенское расстояние до другой клетки
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Neighbors возвращает 4 соседние клетки в фиксированном порядке:
// вверх, вниз, влево, вправо. Границы не проверяются.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		c.Shift(-1, 0),
		c.Shift(1, 0),
		c.Shift(0, -1),
		c.Shift(0, 1),
	}
}

// IsAdjacent возвращает true, если клетки соседние по стороне
func (c Coord) IsAdjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
