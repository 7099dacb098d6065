package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RemiF1908/pcd/internal/campaign"
	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/internal/engine/handlers/actions"
	"github.com/RemiF1908/pcd/internal/infrastructure/storage"
	"github.com/RemiF1908/pcd/internal/network"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("unknown action")

// Option настраивает GameService при создании
type Option func(*GameService)

func WithStore(store storage.DungeonStore) Option {
	return func(s *GameService) { s.store = store }
}

func WithCampaign(m *campaign.Manager) Option {
	return func(s *GameService) { s.campaign = m }
}

func WithHub(hub *network.Broadcaster) Option {
	return func(s *GameService) { s.Hub = hub }
}

func WithRegistry(r *pathfind.Registry) Option {
	return func(s *GameService) { s.registry = r }
}

// WithJournal включает запись каждой волны в бинарный журнал
func WithJournal(js *storage.JournalService) Option {
	return func(s *GameService) { s.journals = js }
}

// GameService владеет симуляцией и выполняет команды над ней.
// Мьютекс нужен только для чтения снимков из других горутин.
type GameService struct {
	mu sync.Mutex

	cfg      Config
	registry *pathfind.Registry
	sim      *simulation.Simulation
	store    storage.DungeonStore
	campaign *campaign.Manager

	Hub *network.Broadcaster

	journals    *storage.JournalService
	journal     *storage.Journal
	lastJournal string

	Logs []api.LogEntry

	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config, level *simulation.Level, opts ...Option) *GameService {
	s := &GameService{
		cfg:      cfg,
		Logs:     []api.LogEntry{},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = pathfind.DefaultRegistry()
	}
	if s.Hub == nil {
		s.Hub = network.NewBroadcaster()
	}
	s.sim = simulation.New(level, s.registry)

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionPlace] = handlers.WithPayload(actions.HandlePlace)
	s.handlers[domain.ActionRemove] = handlers.WithPayload(actions.HandleRemove)
	s.handlers[domain.ActionLaunch] = handlers.WithEmptyPayload(actions.HandleLaunch)
	s.handlers[domain.ActionStop] = handlers.WithEmptyPayload(actions.HandleStop)
	s.handlers[domain.ActionStep] = handlers.WithPayload(actions.HandleStep)
	s.handlers[domain.ActionReset] = handlers.WithEmptyPayload(actions.HandleReset)
	s.handlers[domain.ActionResetGrid] = handlers.WithEmptyPayload(actions.HandleResetGrid)
	s.handlers[domain.ActionNextLevel] = handlers.WithEmptyPayload(actions.HandleNextLevel)
	s.handlers[domain.ActionExport] = handlers.WithPayload(actions.HandleExport)
	s.handlers[domain.ActionImport] = handlers.WithPayload(actions.HandleImport)
	s.handlers[domain.ActionList] = handlers.WithEmptyPayload(actions.HandleList)
}

func (s *GameService) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{"component": "game_service", "level_id": s.sim.Level().ID})
}

// ProcessCommand выполняет команду, рассылает и возвращает новое состояние.
// Ошибка команды не прерывает работу: она попадает в ответ и в логи.
func (s *GameService) ProcessCommand(ctx context.Context, cmd api.ClientCommand) api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := domain.ParseAction(cmd.Action)
	handler, ok := s.handlers[action]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
		s.log().WithError(err).Warn("Command rejected")
		s.AddLog(err.Error(), "ERROR")
		return s.publish(handlers.Result{}, err)
	}

	hctx := handlers.Context{
		Ctx:   ctx,
		Sim:   s.sim,
		Rules: s.cfg.Rules,
		Store: s.store,
	}
	if s.campaign != nil {
		hctx.Switcher = s.switcher()
	}

	result, err := handler(hctx, cmd.Payload)
	if err != nil {
		s.log().WithError(err).WithField("action", action.String()).Warn("Command rejected")
		s.AddLog(err.Error(), "ERROR")
	} else if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}

	s.record()
	return s.publish(result, err)
}

// Tick продвигает идущую волну на один тик. false, если волна не идет.
func (s *GameService) Tick() (api.ServerResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sim.Started() {
		return s.response(handlers.Result{}, nil), false
	}

	var result handlers.Result
	if res := s.sim.Step(); res != nil {
		var err error
		if result, err = actions.WaveFinished(s.sim, res); err != nil {
			s.log().WithError(err).Error("Wave result encoding failed")
		}
		s.AddLog(result.Msg, result.MsgType)
	}

	s.record()
	return s.publish(result, nil), true
}

// Snapshot возвращает текущее состояние без рассылки
func (s *GameService) Snapshot() api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(handlers.Result{}, nil)
}

func (s *GameService) Status() api.StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Status()
}

// Running - идет ли волна
func (s *GameService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Started()
}

// LoadLevel заменяет уровень (например, из кампании или пресета)
func (s *GameService) LoadLevel(level *simulation.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.LoadLevel(level)
	s.journal = nil
	s.AddLog(fmt.Sprintf("Уровень %d: %s.", level.ID, level.Name), "INFO")
	s.publish(handlers.Result{Event: domain.EventLevelChanged}, nil)
}

// LastJournal - путь к последнему сохраненному журналу волны
func (s *GameService) LastJournal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastJournal
}

// publish собирает ответ, рассылает его и очищает накопленные логи
func (s *GameService) publish(result handlers.Result, err error) api.ServerResponse {
	resp := s.response(result, err)
	s.Hub.Broadcast(resp)
	s.Logs = []api.LogEntry{}
	return resp
}

func (s *GameService) response(result handlers.Result, err error) api.ServerResponse {
	status := s.sim.Status()
	grid := s.sim.GridView()

	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	resp := api.ServerResponse{
		Type:   "UPDATE",
		Tick:   s.sim.Ticks(),
		Status: &status,
		Grid:   &grid,
		Result: simulation.ResultView(s.sim.LastResult()),
		Logs:   logsCopy,
	}
	if err != nil {
		resp.Type = "ERROR"
		resp.Error = err.Error()
	}
	switch result.Event {
	case domain.EventUnknown:
	case domain.EventTreasureReached, domain.EventAllHeroesDead:
		resp.Type = "WAVE_RESULT"
		resp.Event = result.Event.String()
	default:
		resp.Event = result.Event.String()
	}
	if len(result.Data) > 0 {
		data := result.Data
		resp.Data = &data
	}
	return resp
}

// record ведет журнал волны: начинает на запуске, пишет кадр на каждый тик,
// сохраняет файл, когда волна закончилась или остановлена
func (s *GameService) record() {
	if s.journals == nil {
		return
	}
	running := s.sim.Started()

	if s.journal == nil {
		if !running {
			return
		}
		g := s.sim.Grid()
		s.journal = storage.NewJournal(s.sim.Level().ID, g.Rows, g.Cols)
	}

	if n := len(s.journal.Frames); n == 0 || s.journal.Frames[n-1].Tick != s.sim.Ticks() {
		s.journal.CaptureFrame(s.sim.Ticks(), s.sim.Heroes())
	}
	if running {
		return
	}

	path, err := s.journals.Save(s.journal)
	if err != nil {
		s.log().WithError(err).Warn("Wave journal not saved")
	} else {
		s.lastJournal = path
	}
	s.journal = nil
}

// AddLog добавляет запись в журнал событий текущего ответа
func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.sim.Level().ID, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
	}).Debug(text)
}
