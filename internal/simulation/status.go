package simulation

import (
	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/api"
)

// Status возвращает краткий снимок состояния
func (s *Simulation) Status() api.StatusSnapshot {
	return api.StatusSnapshot{
		Level:       s.level.ID,
		Ticks:       s.ticks,
		Score:       s.score,
		TotalScore:  s.totalScore,
		AliveHeroes: s.AliveHeroes(),
		Budget:      s.budget,
		State:       s.state.String(),
	}
}

// GridView собирает данные карты для отображения.
// Пол не передается: клиент считает пустые клетки полом.
func (s *Simulation) GridView() api.GridView {
	g := s.grid
	view := api.GridView{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Entry:  [2]int{g.Entry.Row, g.Entry.Col},
		Exit:   [2]int{g.Exit.Row, g.Exit.Col},
		Cells:  []api.CellView{},
		Heroes: make([]api.HeroView, 0, len(s.heroes)),
	}

	g.Each(func(cell *domain.Cell) {
		if cell.IsFloor() {
			return
		}
		cv := api.CellView{
			Row:    cell.Pos.Row,
			Col:    cell.Pos.Col,
			Type:   cell.Kind().String(),
			Damage: cell.Damage(),
		}
		if m, ok := cell.Monster(); ok {
			cv.Damage = m.Power()
			cv.Armed = m.Armed()
			cv.Cooldown = m.Cooldown()
		}
		if d, ok := cell.Entity.(*domain.Dragon); ok {
			cv.Orientation = d.Orientation.String()
		}
		view.Cells = append(view.Cells, cv)
	})

	for _, h := range s.heroes {
		view.Heroes = append(view.Heroes, api.HeroView{
			ID:    h.ID,
			Name:  h.Name,
			Row:   h.Pos.Row,
			Col:   h.Pos.Col,
			HP:    h.HP,
			MaxHP: h.MaxHP,
			State: h.State.String(),
			Steps: h.Steps,
		})
	}
	return view
}

// ResultView конвертирует итог волны в DTO
func ResultView(r *WaveResult) *api.WaveResultView {
	if r == nil {
		return nil
	}
	return &api.WaveResultView{
		HeroesKilled:     r.HeroesKilled,
		HeroesSurvived:   r.HeroesSurvived,
		ConstructionCost: r.ConstructionCost,
		Score:            r.Score,
		Turns:            r.Turns,
		TreasureReached:  r.TreasureReached,
	}
}
