package dungeon

import (
	"errors"
	"math/rand"

	"github.com/RemiF1908/pcd/internal/domain"
)

// Константы генерации
const (
	DefaultRows     = 15
	DefaultCols     = 25
	DefaultMaxRooms = 6
	MinSize         = 3
	MaxSize         = 7
)

var ErrGeneration = errors.New("dungeon generation failed")

// Rect - Вспомогательная структура для комнаты (строка, столбец, высота, ширина)
type Rect struct {
	Row, Col, H, W int
}

func (r Rect) Center() domain.Coord {
	return domain.C(r.Row+r.H/2, r.Col+r.W/2)
}

func (r Rect) Intersects(other Rect) bool {
	return r.Col <= other.Col+other.W && r.Col+r.W >= other.Col &&
		r.Row <= other.Row+other.H && r.Row+r.H >= other.Row
}

// Generator вырезает комнаты и коридоры в сплошном камне.
// Вход - центр первой комнаты, выход - центр последней.
type Generator struct {
	rng      *rand.Rand
	rows     int
	cols     int
	maxRooms int
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		rows:     DefaultRows,
		cols:     DefaultCols,
		maxRooms: DefaultMaxRooms,
	}
}

func (g *Generator) WithSize(rows, cols int) *Generator {
	g.rows = rows
	g.cols = cols
	return g
}

func (g *Generator) WithRooms(maxRooms int) *Generator {
	g.maxRooms = maxRooms
	return g
}

func (g *Generator) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return g.rng.Intn(max-min+1) + min
}

// Generate строит карту. Каменные стены бесплатны: их нельзя продать.
func (g *Generator) Generate() (*domain.Grid, error) {
	if g.rows < MinSize+2 || g.cols < MinSize+2 {
		return nil, ErrGeneration
	}

	// 1. Собираем комнаты
	var rooms []Rect
	for attempt := 0; attempt < g.maxRooms*10 && len(rooms) < g.maxRooms; attempt++ {
		h := g.randRange(MinSize, min(MaxSize, g.rows-2))
		w := g.randRange(MinSize, min(MaxSize, g.cols-2))
		room := Rect{
			Row: g.randRange(0, g.rows-h-1),
			Col: g.randRange(0, g.cols-w-1),
			H:   h,
			W:   w,
		}

		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			rooms = append(rooms, room)
		}
	}
	if len(rooms) < 2 {
		return nil, ErrGeneration
	}

	entry := rooms[0].Center()
	exit := rooms[len(rooms)-1].Center()
	grid, err := domain.NewGrid(g.rows, g.cols, entry, exit)
	if err != nil {
		return nil, err
	}

	// 2. Заполняем камнем
	grid.Each(func(cell *domain.Cell) { cell.Set(domain.NewWall(0)) })

	// 3. Вырезаем комнаты и соединяем с предыдущей
	for i, room := range rooms {
		carveRoom(grid, room)
		if i == 0 {
			continue
		}
		prev := rooms[i-1].Center()
		cur := room.Center()
		if g.rng.Intn(2) == 0 {
			carveHCorridor(grid, prev.Col, cur.Col, prev.Row)
			carveVCorridor(grid, prev.Row, cur.Row, cur.Col)
		} else {
			carveVCorridor(grid, prev.Row, cur.Row, prev.Col)
			carveHCorridor(grid, prev.Col, cur.Col, cur.Row)
		}
	}
	return grid, nil
}

// --- Вспомогательные функции ---

func carveRoom(grid *domain.Grid, room Rect) {
	for r := room.Row + 1; r < room.Row+room.H; r++ {
		for c := room.Col + 1; c < room.Col+room.W; c++ {
			_, _ = grid.Remove(domain.C(r, c))
		}
	}
}

func carveHCorridor(grid *domain.Grid, c1, c2, row int) {
	for c := min(c1, c2); c <= max(c1, c2); c++ {
		_, _ = grid.Remove(domain.C(row, c))
	}
}

func carveVCorridor(grid *domain.Grid, r1, r2, col int) {
	for r := min(r1, r2); r <= max(r1, r2); r++ {
		_, _ = grid.Remove(domain.C(r, col))
	}
}
