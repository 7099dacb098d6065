package dungeon

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/RemiF1908/pcd/pkg/utils"
	"github.com/sirupsen/logrus"
)

var ErrMalformed = errors.New("malformed dungeon document")

// Имена типов в сохранениях
const (
	TypeFloor  = "Floor"
	TypeWall   = "Wall"
	TypeTrap   = "Trap"
	TypeDragon = "Dragon"
	TypeBomb   = "Bombe"
)

var kindToType = map[domain.EntityKind]string{
	domain.KindFloor:  TypeFloor,
	domain.KindWall:   TypeWall,
	domain.KindTrap:   TypeTrap,
	domain.KindDragon: TypeDragon,
	domain.KindBomb:   TypeBomb,
}

// Document - сохраненное подземелье
type Document struct {
	Dimension     [2]int      `json:"dimension"`
	Entry         [2]int      `json:"entry"`
	Exit          [2]int      `json:"exit"`
	Grid          [][]CellDoc `json:"grid"`
	Heroes        []HeroDoc   `json:"heroes,omitempty"`
	LevelID       *int        `json:"level_id,omitempty"`
	CurrentBudget *int        `json:"current_budget,omitempty"`
}

// CellDoc - одна клетка. Для монстров Damage хранит силу удара.
type CellDoc struct {
	Type        string `json:"type"`
	Position    [2]int `json:"position"`
	Damage      *int   `json:"damage,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	Cost        *int   `json:"cost,omitempty"`
}

type HeroDoc struct {
	Position  [2]int `json:"position"`
	PVCurrent int    `json:"pv_current"`
	PVTotal   int    `json:"pv_total"`
	Strategy  string `json:"strategy"`
}

func pair(c domain.Coord) [2]int  { return [2]int{c.Row, c.Col} }
func coord(p [2]int) domain.Coord { return domain.C(p[0], p[1]) }
func intPtr(v int) *int           { return &v }

// Encode сохраняет карту и героев
func Encode(g *domain.Grid, heroes []*domain.Hero) *Document {
	doc := &Document{
		Dimension: [2]int{g.Rows, g.Cols},
		Entry:     pair(g.Entry),
		Exit:      pair(g.Exit),
		Grid:      make([][]CellDoc, g.Rows),
	}
	for r := range doc.Grid {
		doc.Grid[r] = make([]CellDoc, 0, g.Cols)
	}

	g.Each(func(cell *domain.Cell) {
		cd := CellDoc{Type: kindToType[cell.Kind()], Position: pair(cell.Pos)}
		if e := cell.Entity; e != nil {
			cd.Cost = intPtr(e.Cost())
			switch v := e.(type) {
			case *domain.Trap:
				cd.Damage = intPtr(v.Damage())
			case *domain.Dragon:
				cd.Damage = intPtr(v.Power())
				cd.Orientation = v.Orientation.String()
			case *domain.Bomb:
				cd.Damage = intPtr(v.Power())
			}
		}
		doc.Grid[cell.Pos.Row] = append(doc.Grid[cell.Pos.Row], cd)
	})

	for _, h := range heroes {
		doc.Heroes = append(doc.Heroes, HeroDoc{
			Position:  pair(h.Pos),
			PVCurrent: h.HP,
			PVTotal:   h.MaxHP,
			Strategy:  h.Strategy,
		})
	}
	return doc
}

// WithMeta добавляет номер уровня и текущий бюджет
func (d *Document) WithMeta(levelID, budget int) *Document {
	d.LevelID = intPtr(levelID)
	d.CurrentBudget = intPtr(budget)
	return d
}

// DecodeGrid восстанавливает карту. Неизвестные типы клеток становятся полом.
func (d *Document) DecodeGrid(rules domain.Rules) (*domain.Grid, error) {
	g, err := domain.NewGrid(d.Dimension[0], d.Dimension[1], coord(d.Entry), coord(d.Exit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	log := logger.Log.WithFields(logrus.Fields{"component": "dungeon_codec"})
	for r, row := range d.Grid {
		for c, cd := range row {
			at := domain.C(r, c)
			if !g.InBounds(at) {
				log.WithField("pos", at.String()).Debug("Cell outside dimension skipped")
				continue
			}
			e, err := cd.entity(rules)
			if err != nil {
				log.WithError(err).WithField("pos", at.String()).Debug("Unknown cell degraded to floor")
				continue
			}
			if _, err := g.Place(at, e); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func (cd CellDoc) entity(rules domain.Rules) (domain.Entity, error) {
	kind, err := domain.ParseKind(cd.Type)
	if err != nil {
		return nil, err
	}
	// Постройки без cost - часть карты, игрок за них не платил
	cost := orDefault(cd.Cost, 0)

	switch kind {
	case domain.KindWall:
		return domain.NewWall(cost), nil
	case domain.KindTrap:
		return domain.NewTrap(orDefault(cd.Damage, rules.TrapDamage), cost), nil
	case domain.KindDragon:
		o := domain.OrientRight
		if cd.Orientation != "" {
			if o, err = domain.ParseOrientation(cd.Orientation); err != nil {
				return nil, err
			}
		}
		return domain.NewDragon(o, orDefault(cd.Damage, rules.DragonPower), cost, rules.DragonCooldown), nil
	case domain.KindBomb:
		return domain.NewBomb(orDefault(cd.Damage, rules.BombPower), cost), nil
	}
	return nil, nil
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// DecodeHeroes восстанавливает героев из сохранения
func (d *Document) DecodeHeroes() []*domain.Hero {
	out := make([]*domain.Hero, 0, len(d.Heroes))
	for i, hd := range d.Heroes {
		h := domain.NewHero(utils.GenerateID("hero"), fmt.Sprintf("Hero %d", i+1), hd.PVTotal, hd.Strategy)
		if hd.PVCurrent > 0 && hd.PVCurrent < h.MaxHP {
			h.HP = hd.PVCurrent
		}
		h.Pos = coord(hd.Position)
		out = append(out, h)
	}
	return out
}

func Marshal(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}
