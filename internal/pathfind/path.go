package pathfind

import (
	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

// trivial обрабатывает общие крайние случаи обеих стратегий.
// Второе значение false означает, что нужен настоящий поиск.
func trivial(g *domain.Grid, start, goal domain.Coord) ([]domain.Coord, bool) {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return []domain.Coord{}, true
	}
	if start == goal {
		return []domain.Coord{start}, true
	}
	return nil, false
}

// reconstruct восстанавливает путь по цепочке предков
func reconstruct(cameFrom map[domain.Coord]domain.Coord, start, goal domain.Coord) []domain.Coord {
	path := []domain.Coord{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func unreachable(strategy string, start, goal domain.Coord) []domain.Coord {
	logger.Log.WithFields(logrus.Fields{
		"component": "pathfind",
		"strategy":  strategy,
		"from":      start.String(),
		"to":        goal.String(),
	}).Debug("Goal unreachable")
	return []domain.Coord{}
}

// HazardCost суммирует контактный урон клеток пути (без стартовой)
func HazardCost(g *domain.Grid, path []domain.Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += g.Damage(path[i])
	}
	return total
}
