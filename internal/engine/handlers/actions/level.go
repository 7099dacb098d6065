package actions

import (
	"errors"
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/internal/simulation"
)

var (
	ErrNoCampaign       = errors.New("no campaign loaded")
	ErrCampaignComplete = errors.New("campaign complete")
)

// HandleNextLevel переводит на следующий уровень после победной волны
func HandleNextLevel(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Switcher == nil {
		return handlers.EmptyResult(), ErrNoCampaign
	}
	if ctx.Sim.State() != simulation.StateAllHeroesDead {
		return handlers.EmptyResult(), simulation.ErrLevelNotCleared
	}

	next, err := ctx.Switcher.NextLevel()
	if errors.Is(err, ErrCampaignComplete) {
		return handlers.Result{
			Msg:     fmt.Sprintf("Кампания пройдена! Итого очков: %d.", ctx.Sim.TotalScore()+ctx.Sim.Score()),
			MsgType: "WAVE",
			Event:   domain.EventCampaignComplete,
		}, nil
	}
	if err != nil {
		return handlers.EmptyResult(), err
	}

	if err := ctx.Sim.NextLevel(next); err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Уровень %d: %s.", next.ID, next.Name),
		MsgType: "INFO",
		Event:   domain.EventLevelChanged,
	}, nil
}
