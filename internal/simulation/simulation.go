package simulation

import (
	"errors"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrLevelNotCleared = errors.New("level not cleared: all heroes must be dead")

// State - состояние волны
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateTreasureReached // поражение: герой дошел до сокровища
	StateAllHeroesDead   // победа обороны
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTreasureReached:
		return "treasure_reached"
	case StateAllHeroesDead:
		return "all_heroes_dead"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Terminal - волна завершилась победой или поражением
func (s State) Terminal() bool {
	return s == StateTreasureReached || s == StateAllHeroesDead
}

// Simulation - изменяемое состояние одной игровой сессии.
// Время продвигает только вызывающий код через Step.
type Simulation struct {
	registry *pathfind.Registry
	level    *Level
	grid     *domain.Grid
	heroes   []*domain.Hero

	budget          int
	ticks           int
	state           State
	treasureReached bool
	allHeroesDead   bool
	activation      int
	observer        *DamageObserver
	lastResult      *WaveResult
	score           int
	totalScore      int
}

// New создает симуляцию для уровня
func New(level *Level, registry *pathfind.Registry) *Simulation {
	s := &Simulation{
		registry: registry,
		observer: NewDamageObserver(),
	}
	s.load(level)
	return s
}

func (s *Simulation) log() *logrus.Entry {
	fields := logrus.Fields{"component": "simulation", "tick": s.ticks}
	if s.level != nil {
		fields["level_id"] = s.level.ID
	}
	return logger.Log.WithFields(fields)
}

func (s *Simulation) load(level *Level) {
	s.level = level
	s.grid = level.Dungeon()
	s.heroes = level.Heroes()
	s.budget = level.Budget
	s.ticks = 0
	s.score = 0
	s.state = StateIdle
	s.treasureReached = false
	s.allHeroesDead = false
	s.activation = 0
	s.lastResult = nil
	s.observer.Reset()
}

// Launch ставит всех героев на вход и заново считает пути.
// Если хотя бы один путь пустой, волна не стартует и состояние не меняется.
func (s *Simulation) Launch() bool {
	log := s.log()
	if s.state == StateRunning {
		log.Warn("Launch ignored: wave already running")
		return false
	}
	if len(s.heroes) == 0 {
		log.Warn("Launch aborted: level has no heroes")
		return false
	}

	entry, exit := s.grid.Entry, s.grid.Exit
	paths := make([][]domain.Coord, len(s.heroes))
	for i, h := range s.heroes {
		path, err := s.registry.FindPath(h.Strategy, s.grid, entry, exit)
		if err != nil {
			log.WithError(err).WithField("hero", h.Name).Warn("Launch aborted: bad strategy")
			return false
		}
		if len(path) == 0 {
			log.WithFields(logrus.Fields{"hero": h.Name, "strategy": h.Strategy}).Warn("Launch aborted: no path to treasure")
			return false
		}
		paths[i] = path
	}

	// повторный запуск начинает волну с нуля, бюджет не трогаем
	s.ticks = 0
	s.treasureReached = false
	s.allHeroesDead = false
	s.lastResult = nil
	s.observer.Reset()

	for i, h := range s.heroes {
		h.Restore(entry)
		h.Path = paths[i]
		h.WakeDelay = i * s.level.WakeInterval
	}
	s.activation = 0
	s.state = StateRunning

	log.WithField("heroes", len(s.heroes)).Info("Wave launched")
	return true
}

// Step продвигает волну на один тик.
// Возвращает итог, только если волна завершилась именно на этом тике.
func (s *Simulation) Step() *WaveResult {
	if s.state != StateRunning {
		return nil
	}
	log := s.log()

	// 0. Пробуждение героев по очереди
	for _, h := range s.heroes {
		if h.IsDormant() && h.WakeDelay <= s.activation {
			h.Awake()
			log.WithField("hero", h.Name).Debug("Hero entered the dungeon")
		}
	}
	s.activation++

	// 1. Таймеры монстров
	for _, pm := range s.grid.Monsters() {
		if pm.Monster.Update() {
			_, _ = s.grid.Remove(pm.Pos)
			log.WithField("pos", pm.Pos.String()).Debug("Spent monster removed")
		}
	}
	monsters := s.grid.Monsters()

	// 2. Ходы героев строго по порядку
	for _, h := range s.heroes {
		if !h.IsAlive() {
			continue
		}
		next, ok := h.NextMove()
		if !ok {
			log.WithField("hero", h.Name).Debug("Hero has no next step, stays")
			continue
		}
		if !s.grid.ValidMove(next) {
			log.WithFields(logrus.Fields{"hero": h.Name, "to": next.String()}).Debug("Invalid move, hero stays")
			continue
		}

		h.MoveTo(next)
		s.observer.Notify(h.TakeDamage(s.grid.Damage(next)))

		for _, pm := range monsters {
			if !h.IsAlive() {
				break
			}
			m := pm.Monster
			if m.Armed() && m.InRange(next) {
				m.Trigger()
				s.observer.Notify(h.TakeDamage(m.Power()))
			}
		}

		if h.IsDead() {
			log.WithField("hero", h.Name).Info("Hero died")
			continue
		}
		if next == s.grid.Exit {
			h.ReachGoal()
			s.treasureReached = true
			log.WithField("hero", h.Name).Info("Treasure reached")
			break
		}
	}

	// 3. Все герои мертвы
	s.allHeroesDead = s.everyHeroDead()

	// 4. Тик
	s.ticks++

	switch {
	case s.treasureReached:
		s.state = StateTreasureReached
	case s.allHeroesDead:
		s.state = StateAllHeroesDead
	default:
		return nil
	}
	return s.finish()
}

func (s *Simulation) everyHeroDead() bool {
	if len(s.heroes) == 0 {
		return false
	}
	for _, h := range s.heroes {
		if !h.IsDead() {
			return false
		}
	}
	return true
}

func (s *Simulation) finish() *WaveResult {
	killed, totalHP := 0, 0
	for _, h := range s.heroes {
		if h.IsDead() {
			killed++
		}
		totalHP += h.MaxHP
	}

	res := &WaveResult{
		HeroesKilled:     killed,
		HeroesSurvived:   len(s.heroes) - killed,
		ConstructionCost: s.level.Budget - s.budget,
		Turns:            s.ticks,
		TreasureReached:  s.treasureReached,
	}
	res.Score = ComputeScore(ScoreInput{
		Ticks:           s.ticks,
		Width:           s.grid.Cols,
		Height:          s.grid.Rows,
		Killed:          killed,
		TotalHeroes:     len(s.heroes),
		DamageDealt:     s.observer.Total(),
		TotalHeroHP:     totalHP,
		TreasureReached: s.treasureReached,
	})
	s.score = res.Score
	s.lastResult = res

	s.log().WithFields(logrus.Fields{
		"state":  s.state.String(),
		"killed": res.HeroesKilled,
		"score":  res.Score,
	}).Info("Wave finished")
	return res
}

// Stop останавливает идущую волну. Остановленную волну можно запустить заново.
func (s *Simulation) Stop() bool {
	if s.state != StateRunning {
		return false
	}
	s.state = StateStopped
	s.log().Info("Wave stopped")
	return true
}

// Reset возвращает уровень к исходному состоянию: тики, очки и бюджет
// сбрасываются, герои ждут у входа, карта очищается.
func (s *Simulation) Reset() {
	s.ticks = 0
	s.score = 0
	s.budget = s.level.Budget
	s.state = StateIdle
	s.treasureReached = false
	s.allHeroesDead = false
	s.activation = 0
	s.lastResult = nil
	s.observer.Reset()
	for _, h := range s.heroes {
		h.Restore(s.grid.Entry)
	}
	s.grid.Clear()
	s.log().Info("Simulation reset")
}

// LoadLevel безусловно заменяет текущий уровень
func (s *Simulation) LoadLevel(level *Level) {
	s.load(level)
	s.log().WithField("name", level.Name).Info("Level loaded")
}

// NextLevel переходит на следующий уровень после победной волны.
// Очки завершенной волны добавляются к общему счету.
func (s *Simulation) NextLevel(level *Level) error {
	if s.state != StateAllHeroesDead {
		return ErrLevelNotCleared
	}
	s.totalScore += s.score
	s.load(level)
	s.log().WithFields(logrus.Fields{"name": level.Name, "totalScore": s.totalScore}).Info("Advanced to next level")
	return nil
}

// RestoreBudget выставляет бюджет при загрузке сохранения
func (s *Simulation) RestoreBudget(budget int) {
	s.budget = max(0, budget)
}

// --- Доступ на чтение ---

func (s *Simulation) Level() *Level                { return s.level }
func (s *Simulation) Grid() *domain.Grid           { return s.grid }
func (s *Simulation) Registry() *pathfind.Registry { return s.registry }
func (s *Simulation) Budget() int                  { return s.budget }
func (s *Simulation) Ticks() int                   { return s.ticks }
func (s *Simulation) State() State                 { return s.state }
func (s *Simulation) Started() bool                { return s.state == StateRunning }
func (s *Simulation) TreasureReached() bool        { return s.treasureReached }
func (s *Simulation) AllHeroesDead() bool          { return s.allHeroesDead }
func (s *Simulation) Observer() *DamageObserver    { return s.observer }
func (s *Simulation) LastResult() *WaveResult      { return s.lastResult }
func (s *Simulation) Score() int                   { return s.score }
func (s *Simulation) TotalScore() int              { return s.totalScore }

// Heroes возвращает героев волны (в порядке ростера)
func (s *Simulation) Heroes() []*domain.Hero {
	return s.heroes
}

// AliveHeroes - количество активных героев
func (s *Simulation) AliveHeroes() int {
	n := 0
	for _, h := range s.heroes {
		if h.IsAlive() {
			n++
		}
	}
	return n
}

// HeroPositions возвращает координаты активных героев
func (s *Simulation) HeroPositions() []domain.Coord {
	out := make([]domain.Coord, 0, len(s.heroes))
	for _, h := range s.heroes {
		if h.IsAlive() {
			out = append(out, h.Pos)
		}
	}
	return out
}
