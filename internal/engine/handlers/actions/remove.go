package actions

import (
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/pkg/api"
)

func HandleRemove(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	at := domain.C(p.Row, p.Col)
	refund, err := ctx.Sim.RemoveEntity(at)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	if refund == 0 {
		return handlers.EmptyResult(), nil
	}
	return handlers.Info(fmt.Sprintf("Клетка %s очищена, возврат %d.", at, refund)), nil
}

func HandleResetGrid(ctx handlers.Context) (handlers.Result, error) {
	refund, err := ctx.Sim.ResetGrid()
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Info(fmt.Sprintf("Карта очищена, возврат %d.", refund)), nil
}
