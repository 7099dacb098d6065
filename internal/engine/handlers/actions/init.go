package actions

import (
	"fmt"

	"github.com/RemiF1908/pcd/internal/engine/handlers"
)

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	lvl := ctx.Sim.Level()
	return handlers.Info(fmt.Sprintf("Уровень %d \"%s\": бюджет %d, героев %d.",
		lvl.ID, lvl.Name, ctx.Sim.Budget(), lvl.HeroCount())), nil
}
