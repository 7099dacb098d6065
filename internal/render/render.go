package render

import (
	"strings"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/api"
)

// Палитра клеток терминального вида
var (
	GlyphFloor    = MakeGlyph(0x444444, '.')
	GlyphWall     = MakeGlyph(0x888888, '#')
	GlyphTrap     = MakeGlyph(0xD97706, '^')
	GlyphDragon   = MakeGlyph(0xDC2626, 'D')
	GlyphDragonCD = MakeGlyph(0x7F1D1D, 'd') // дракон на перезарядке
	GlyphBomb     = MakeGlyph(0xF59E0B, 'B')
	GlyphEntry    = MakeGlyph(0x22D3EE, 'E')
	GlyphExit     = MakeGlyph(0xFACC15, 'X')
	GlyphHero     = MakeGlyph(0x22C55E, '@')
	GlyphDeadHero = MakeGlyph(0x6B7280, '%')
	GlyphPath     = MakeGlyph(0x38BDF8, '*')
)

var typeGlyph = map[string]Glyph{
	domain.KindWall.String():   GlyphWall,
	domain.KindTrap.String():   GlyphTrap,
	domain.KindDragon.String(): GlyphDragon,
	domain.KindBomb.String():   GlyphBomb,
}

// Canvas - матрица глифов размера карты
type Canvas struct {
	Rows, Cols int
	cells      []Glyph
}

// FromView рисует карту: постройки, вход и выход, затем героев поверх
func FromView(v api.GridView) *Canvas {
	c := &Canvas{Rows: v.Rows, Cols: v.Cols, cells: make([]Glyph, v.Rows*v.Cols)}
	for i := range c.cells {
		c.cells[i] = GlyphFloor
	}

	c.Set(v.Entry[0], v.Entry[1], GlyphEntry)
	c.Set(v.Exit[0], v.Exit[1], GlyphExit)

	for _, cell := range v.Cells {
		g, ok := typeGlyph[cell.Type]
		if !ok {
			continue
		}
		if cell.Type == domain.KindDragon.String() && !cell.Armed {
			g = GlyphDragonCD
		}
		c.Set(cell.Row, cell.Col, g)
	}

	for _, h := range v.Heroes {
		switch h.State {
		case domain.HeroAlive.String(), domain.HeroGoal.String():
			c.Set(h.Row, h.Col, GlyphHero)
		case domain.HeroDead.String():
			c.Set(h.Row, h.Col, GlyphDeadHero)
		}
	}
	return c
}

// Overlay отмечает путь, не затирая вход и выход
func (c *Canvas) Overlay(path []domain.Coord) {
	for _, p := range path {
		if g, ok := c.At(p.Row, p.Col); ok && (g == GlyphEntry || g == GlyphExit) {
			continue
		}
		c.Set(p.Row, p.Col, GlyphPath)
	}
}

func (c *Canvas) Set(row, col int, g Glyph) {
	if row < 0 || col < 0 || row >= c.Rows || col >= c.Cols {
		return
	}
	c.cells[row*c.Cols+col] = g
}

func (c *Canvas) At(row, col int) (Glyph, bool) {
	if row < 0 || col < 0 || row >= c.Rows || col >= c.Cols {
		return 0, false
	}
	return c.cells[row*c.Cols+col], true
}

// String - построчный вывод. color включает ANSI-раскраску.
func (c *Canvas) String(color bool) string {
	var sb strings.Builder
	for r := 0; r < c.Rows; r++ {
		for col := 0; col < c.Cols; col++ {
			g := c.cells[r*c.Cols+col]
			if color {
				sb.WriteString(g.ANSI())
			} else {
				sb.WriteByte(g.Char())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
