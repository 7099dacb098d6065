package simulation

import (
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/sirupsen/logrus"
)

// PlaceEntity ставит сущность в клетку с учетом бюджета.
// Стоимость прежней постройки возвращается в бюджет до проверки.
// Нехватка бюджета - не ошибка: возвращается false и ничего не меняется.
func (s *Simulation) PlaceEntity(c domain.Coord, e domain.Entity) (bool, error) {
	if s.Started() {
		return false, domain.ErrSimulationStarted
	}
	cell, ok := s.grid.Cell(c)
	if !ok {
		return false, fmt.Errorf("place at %s: %w", c, domain.ErrOutOfBounds)
	}

	refund := s.refundable(cell.Cost())
	cost := 0
	if e != nil {
		cost = e.Cost()
	}
	available := s.budget + refund
	if cost > available {
		s.log().WithFields(logrus.Fields{
			"pos":       c.String(),
			"cost":      cost,
			"available": available,
		}).Debug("Not enough budget, placement skipped")
		return false, nil
	}

	if _, err := s.grid.Place(c, e); err != nil {
		return false, err
	}
	s.budget = available - cost
	return true, nil
}

// RemoveEntity заменяет клетку полом и возвращает ее стоимость в бюджет
func (s *Simulation) RemoveEntity(c domain.Coord) (int, error) {
	if s.Started() {
		return 0, domain.ErrSimulationStarted
	}
	prev, err := s.grid.Remove(c)
	if err != nil {
		return 0, err
	}
	refund := 0
	if prev != nil {
		refund = s.refundable(prev.Cost())
	}
	s.budget += refund
	return refund, nil
}

// ResetGrid очищает карту, возвращая в бюджет стоимость всех построек
func (s *Simulation) ResetGrid() (int, error) {
	if s.Started() {
		return 0, domain.ErrSimulationStarted
	}
	refund := s.refundable(s.grid.TotalCost())
	s.budget += refund
	s.grid.Clear()
	s.log().WithField("refund", refund).Info("Grid cleared")
	return refund, nil
}

// refundable ограничивает возврат потраченным на уровне,
// чтобы бюджет не превышал бюджет уровня
func (s *Simulation) refundable(cost int) int {
	spent := max(0, s.level.Budget-s.budget)
	return min(max(0, cost), spent)
}
