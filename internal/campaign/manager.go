package campaign

import (
	"slices"

	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Manager ведет прохождение кампании по порядку уровней
type Manager struct {
	campaign  *Campaign
	index     int
	completed []int
}

func NewManager(c *Campaign) *Manager {
	return &Manager{campaign: c}
}

func (m *Manager) Campaign() *Campaign { return m.campaign }
func (m *Manager) Info() Info          { return m.campaign.Info }
func (m *Manager) Index() int          { return m.index }

// Current возвращает конфиг текущего уровня
func (m *Manager) Current() (LevelConfig, bool) {
	if m.index < len(m.campaign.Levels) {
		return m.campaign.Levels[m.index], true
	}
	return LevelConfig{}, false
}

func (m *Manager) ByID(id int) (LevelConfig, bool) {
	for _, l := range m.campaign.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}

// Advance переходит к следующему уровню
func (m *Manager) Advance() (LevelConfig, bool) {
	if m.index < len(m.campaign.Levels) {
		m.index++
	}
	next, ok := m.Current()
	logger.Log.WithFields(logrus.Fields{
		"component": "campaign",
		"index":     m.index,
		"done":      !ok,
	}).Info("Campaign advanced")
	return next, ok
}

// HasMore - остался ли уровень после текущего
func (m *Manager) HasMore() bool {
	return m.index < len(m.campaign.Levels)-1
}

func (m *Manager) Complete(id int) {
	if !m.IsCompleted(id) {
		m.completed = append(m.completed, id)
	}
}

func (m *Manager) IsCompleted(id int) bool {
	return slices.Contains(m.completed, id)
}

func (m *Manager) Completed() []int {
	return slices.Clone(m.completed)
}

// CheckWin - уровень пройден, если не выжил ни один герой
func (m *Manager) CheckWin(result simulation.WaveResult) bool {
	return result.Won()
}

func (m *Manager) Reset() {
	m.index = 0
	m.completed = nil
}
