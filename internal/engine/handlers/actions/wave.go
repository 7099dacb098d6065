package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/api"
)

var (
	ErrLaunchRejected = errors.New("wave cannot be launched")
	ErrNotRunning     = errors.New("wave is not running")
)

func HandleLaunch(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Sim.Launch() {
		return handlers.EmptyResult(), ErrLaunchRejected
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Волна запущена: %d героев.", len(ctx.Sim.Heroes())),
		MsgType: "WAVE",
		Event:   domain.EventWaveLaunched,
	}, nil
}

func HandleStop(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Sim.Stop() {
		return handlers.EmptyResult(), ErrNotRunning
	}
	return handlers.Result{Msg: "Волна остановлена.", MsgType: "WAVE", Event: domain.EventWaveStopped}, nil
}

// HandleStep продвигает волну на Count тиков (минимум один) или до ее конца
func HandleStep(ctx handlers.Context, p api.StepPayload) (handlers.Result, error) {
	if !ctx.Sim.Started() {
		return handlers.EmptyResult(), ErrNotRunning
	}

	for i := 0; i < max(1, p.Count); i++ {
		if res := ctx.Sim.Step(); res != nil {
			return WaveFinished(ctx.Sim, res)
		}
	}
	return handlers.EmptyResult(), nil
}

// WaveFinished собирает результат завершенной волны
func WaveFinished(sim *simulation.Simulation, res *simulation.WaveResult) (handlers.Result, error) {
	data, err := json.Marshal(simulation.ResultView(res))
	if err != nil {
		return handlers.EmptyResult(), err
	}

	out := handlers.Result{MsgType: "WAVE", Data: data}
	if res.TreasureReached {
		out.Event = domain.EventTreasureReached
		out.Msg = fmt.Sprintf("Герои добрались до сокровища за %d тиков.", res.Turns)
	} else {
		out.Event = domain.EventAllHeroesDead
		out.Msg = fmt.Sprintf("Все герои погибли за %d тиков. Очки: %d.", res.Turns, res.Score)
	}
	return out, nil
}

func HandleReset(ctx handlers.Context) (handlers.Result, error) {
	ctx.Sim.Reset()
	return handlers.Info("Уровень сброшен."), nil
}
