package actions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/dungeon"
)

var ErrNoStore = errors.New("dungeon store is not configured")

// HandleExport сохраняет текущую карту, героев уровня и остаток бюджета
func HandleExport(ctx handlers.Context, p api.DungeonPayload) (handlers.Result, error) {
	if ctx.Store == nil {
		return handlers.EmptyResult(), ErrNoStore
	}
	lvl := ctx.Sim.Level()
	doc := dungeon.Encode(ctx.Sim.Grid(), lvl.Heroes()).WithMeta(lvl.ID, ctx.Sim.Budget())
	if err := ctx.Store.Save(ctx.Ctx, p.Name, doc); err != nil {
		return handlers.EmptyResult(), fmt.Errorf("export %q: %w", p.Name, err)
	}
	return handlers.Info(fmt.Sprintf("Подземелье сохранено как %q.", p.Name)), nil
}

// HandleImport загружает сохранение как новый уровень с параметрами текущего
func HandleImport(ctx handlers.Context, p api.DungeonPayload) (handlers.Result, error) {
	if ctx.Store == nil {
		return handlers.EmptyResult(), ErrNoStore
	}
	if ctx.Sim.Started() {
		return handlers.EmptyResult(), domain.ErrSimulationStarted
	}

	doc, err := ctx.Store.Load(ctx.Ctx, p.Name)
	if err != nil {
		return handlers.EmptyResult(), fmt.Errorf("import %q: %w", p.Name, err)
	}
	g, err := doc.DecodeGrid(ctx.Rules)
	if err != nil {
		return handlers.EmptyResult(), fmt.Errorf("import %q: %w", p.Name, err)
	}

	cur := ctx.Sim.Level()
	b := simulation.NewLevelBuilder(ctx.Sim.Registry()).
		WithID(cur.ID).
		WithName(cur.Name).
		WithDifficulty(cur.Difficulty).
		WithBudget(cur.Budget).
		WithWakeInterval(cur.WakeInterval).
		WithDungeon(g)
	if doc.LevelID != nil {
		b.WithID(*doc.LevelID)
	}

	heroes := doc.DecodeHeroes()
	if len(heroes) == 0 {
		heroes = cur.Heroes()
	}
	for _, h := range heroes {
		b.AddHeroInstance(h)
	}

	lvl, err := b.Build()
	if err != nil {
		return handlers.EmptyResult(), err
	}
	ctx.Sim.LoadLevel(lvl)
	if doc.CurrentBudget != nil {
		ctx.Sim.RestoreBudget(*doc.CurrentBudget)
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Подземелье %q загружено (%dx%d).", p.Name, g.Rows, g.Cols),
		MsgType: "INFO",
		Event:   domain.EventLevelChanged,
	}, nil
}

func HandleList(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Store == nil {
		return handlers.EmptyResult(), ErrNoStore
	}
	names, err := ctx.Store.List(ctx.Ctx)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	data, err := json.Marshal(names)
	if err != nil {
		return handlers.EmptyResult(), err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Сохранений: %d.", len(names)),
		MsgType: "INFO",
		Data:    data,
	}, nil
}
