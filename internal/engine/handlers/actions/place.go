package actions

import (
	"fmt"
	"strings"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/pkg/api"
)

// HandlePlace ставит сущность на клетку. Нехватка бюджета - не ошибка, а предупреждение.
func HandlePlace(ctx handlers.Context, p api.PlacePayload) (handlers.Result, error) {
	spec := strings.TrimSpace(p.Entity)
	if p.Orientation != "" {
		spec += ":" + p.Orientation
	}
	e, err := ctx.Rules.Parse(spec)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	at := domain.C(p.Row, p.Col)
	placed, err := ctx.Sim.PlaceEntity(at, e)
	if err != nil {
		return handlers.EmptyResult(), err
	}

	kind := domain.KindFloor
	if e != nil {
		kind = e.Kind()
	}
	if !placed {
		return handlers.Result{
			Msg:     fmt.Sprintf("Не хватает бюджета на %s в %s (осталось %d).", kind, at, ctx.Sim.Budget()),
			MsgType: "WARN",
		}, nil
	}
	return handlers.Info(fmt.Sprintf("%s построен в %s, бюджет %d.", kind, at, ctx.Sim.Budget())), nil
}
