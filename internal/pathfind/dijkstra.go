package pathfind

import "github.com/RemiF1908/pcd/internal/domain"

// Safest - Дейкстра, вес ребра = урон клетки назначения.
// При равном уроне выбирается более короткий путь.
type Safest struct{}

func (Safest) Name() string { return domain.StrategySafest }

type cost struct {
	hazard int
	steps  int
}

func (c cost) less(o cost) bool {
	if c.hazard != o.hazard {
		return c.hazard < o.hazard
	}
	return c.steps < o.steps
}

func (s Safest) FindPath(g *domain.Grid, start, goal domain.Coord) []domain.Coord {
	if path, done := trivial(g, start, goal); done {
		return path
	}

	var open frontier
	dist := map[domain.Coord]cost{start: {}}
	cameFrom := make(map[domain.Coord]domain.Coord)
	closed := make(map[domain.Coord]bool)

	open.push(start, 0, 0)

	for !open.empty() {
		cur := open.pop().Value
		if closed[cur] {
			continue // устаревшая запись
		}
		if cur == goal {
			return reconstruct(cameFrom, start, goal)
		}
		closed[cur] = true

		d := dist[cur]
		for _, n := range cur.Neighbors() {
			if closed[n] || !g.ValidMove(n) {
				continue
			}
			nd := cost{hazard: d.hazard + g.Damage(n), steps: d.steps + 1}
			if old, seen := dist[n]; seen && !nd.less(old) {
				continue
			}
			dist[n] = nd
			cameFrom[n] = cur
			open.push(n, nd.hazard, nd.steps)
		}
	}
	return unreachable(s.Name(), start, goal)
}
