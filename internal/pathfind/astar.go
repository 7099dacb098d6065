package pathfind

import "github.com/RemiF1908/pcd/internal/domain"

// Shortest - A* с единичной стоимостью шага и манхэттенской эвристикой.
// Ловушки не влияют на стоимость, блокируют только стены.
type Shortest struct{}

func (Shortest) Name() string { return domain.StrategyShortest }

func (s Shortest) FindPath(g *domain.Grid, start, goal domain.Coord) []domain.Coord {
	if path, done := trivial(g, start, goal); done {
		return path
	}

	var open frontier
	gScore := map[domain.Coord]int{start: 0}
	cameFrom := make(map[domain.Coord]domain.Coord)
	closed := make(map[domain.Coord]bool)

	h := start.Manhattan(goal)
	open.push(start, h, h)

	for !open.empty() {
		cur := open.pop().Value
		if closed[cur] {
			continue
		}
		if cur == goal {
			return reconstruct(cameFrom, start, goal)
		}
		closed[cur] = true

		for _, n := range cur.Neighbors() {
			if closed[n] || !g.ValidMove(n) {
				continue
			}
			tentative := gScore[cur] + 1
			if old, seen := gScore[n]; seen && tentative >= old {
				continue
			}
			gScore[n] = tentative
			cameFrom[n] = cur
			h := n.Manhattan(goal)
			open.push(n, tentative+h, h)
		}
	}
	return unreachable(s.Name(), start, goal)
}
