package engine

import (
	"fmt"

	"github.com/RemiF1908/pcd/internal/engine/handlers/actions"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/sirupsen/logrus"
)

// campaignSwitcher выдает уровни кампании по порядку
type campaignSwitcher struct {
	svc *GameService
}

func (s *GameService) switcher() campaignSwitcher {
	return campaignSwitcher{svc: s}
}

// NextLevel отмечает текущий уровень пройденным и собирает следующий.
// Вызывается под блокировкой сервиса.
func (c campaignSwitcher) NextLevel() (*simulation.Level, error) {
	s := c.svc
	m := s.campaign

	cur, ok := m.Current()
	if !ok {
		return nil, actions.ErrCampaignComplete
	}
	res := s.sim.LastResult()
	if res == nil || !m.CheckWin(*res) {
		return nil, simulation.ErrLevelNotCleared
	}
	m.Complete(cur.ID)

	if !m.HasMore() {
		m.Advance()
		s.log().WithField("completed", m.Completed()).Info("Campaign complete")
		return nil, actions.ErrCampaignComplete
	}

	next := m.Campaign().Levels[m.Index()+1]
	lvl, err := m.Campaign().BuildLevel(next, s.cfg.BuildOptions(s.registry))
	if err != nil {
		return nil, fmt.Errorf("next level %d: %w", next.ID, err)
	}
	m.Advance()

	s.log().WithFields(logrus.Fields{"from": cur.ID, "to": next.ID}).Info("Campaign level switched")
	return lvl, nil
}
