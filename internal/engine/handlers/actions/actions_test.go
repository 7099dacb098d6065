package actions

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine/handlers"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// testCtx - поле 3x3 без построек, герой 50 HP:
// [ E . . ]
// [ . . . ]
// [ . . X ]
func testCtx(t *testing.T) handlers.Context {
	t.Helper()
	g, err := domain.NewGrid(3, 3, domain.C(0, 0), domain.C(2, 2))
	require.NoError(t, err)

	reg := pathfind.DefaultRegistry()
	lvl, err := simulation.NewLevelBuilder(reg).
		WithBudget(150).
		WithDungeon(g).
		AddHero(50, domain.StrategyShortest).
		Build()
	require.NoError(t, err)

	return handlers.Context{
		Ctx:   context.Background(),
		Sim:   simulation.New(lvl, reg),
		Rules: domain.DefaultRules(),
	}
}

func TestHandlePlace(t *testing.T) {
	tests := []struct {
		name    string
		payload api.PlacePayload
		budget  int
		kind    domain.EntityKind
	}{
		{name: "wall", payload: api.PlacePayload{Row: 1, Col: 1, Entity: "wall"}, budget: 110, kind: domain.KindWall},
		{name: "trap upper case", payload: api.PlacePayload{Row: 1, Col: 1, Entity: "TRAP"}, budget: 120, kind: domain.KindTrap},
		{name: "dragon facing down", payload: api.PlacePayload{Row: 0, Col: 2, Entity: "dragon", Orientation: "D"}, budget: 50, kind: domain.KindDragon},
		{name: "bomb", payload: api.PlacePayload{Row: 1, Col: 0, Entity: "bomb"}, budget: 70, kind: domain.KindBomb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testCtx(t)
			res, err := HandlePlace(ctx, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, "INFO", res.MsgType)
			assert.Equal(t, tt.budget, ctx.Sim.Budget())

			cell, ok := ctx.Sim.Grid().Cell(domain.C(tt.payload.Row, tt.payload.Col))
			require.True(t, ok)
			assert.Equal(t, tt.kind, cell.Kind())
		})
	}
}

func TestHandlePlace_DragonOrientation(t *testing.T) {
	ctx := testCtx(t)
	_, err := HandlePlace(ctx, api.PlacePayload{Row: 0, Col: 2, Entity: "dragon", Orientation: "D"})
	require.NoError(t, err)

	cell, _ := ctx.Sim.Grid().Cell(domain.C(0, 2))
	d, ok := cell.Entity.(*domain.Dragon)
	require.True(t, ok)
	assert.Equal(t, domain.OrientDown, d.Orientation)
	assert.True(t, d.InRange(domain.C(2, 2)))
}

func TestHandlePlace_Errors(t *testing.T) {
	ctx := testCtx(t)

	_, err := HandlePlace(ctx, api.PlacePayload{Row: 0, Col: 1, Entity: "wall", Orientation: "L"})
	assert.Error(t, err, "orientation only for dragons")

	_, err = HandlePlace(ctx, api.PlacePayload{Row: 0, Col: 1, Entity: "dragon", Orientation: "X"})
	assert.ErrorIs(t, err, domain.ErrBadOrientation)

	_, err = HandlePlace(ctx, api.PlacePayload{Row: 9, Col: 9, Entity: "wall"})
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	assert.Equal(t, 150, ctx.Sim.Budget())
}

func TestHandleRemove(t *testing.T) {
	ctx := testCtx(t)
	_, err := HandlePlace(ctx, api.PlacePayload{Row: 1, Col: 1, Entity: "trap"})
	require.NoError(t, err)

	res, err := HandleRemove(ctx, api.PositionPayload{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Contains(t, res.Msg, "30")
	assert.Equal(t, 150, ctx.Sim.Budget())

	res, err = HandleRemove(ctx, api.PositionPayload{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Empty(t, res.Msg, "empty cell gives nothing back")
}

func TestWaveHandlers(t *testing.T) {
	ctx := testCtx(t)

	_, err := HandleStop(ctx)
	assert.ErrorIs(t, err, ErrNotRunning)

	res, err := HandleLaunch(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.EventWaveLaunched, res.Event)

	_, err = HandleLaunch(ctx)
	assert.ErrorIs(t, err, ErrLaunchRejected)

	_, err = HandlePlace(ctx, api.PlacePayload{Row: 1, Col: 1, Entity: "wall"})
	assert.ErrorIs(t, err, domain.ErrSimulationStarted)

	res, err = HandleStep(ctx, api.StepPayload{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.EventUnknown, res.Event)
	assert.Equal(t, 2, ctx.Sim.Ticks())

	res, err = HandleStop(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.EventWaveStopped, res.Event)

	_, err = HandleLaunch(ctx)
	require.NoError(t, err, "stopped wave can be relaunched")
	assert.Equal(t, 0, ctx.Sim.Ticks())

	res, err = HandleStep(ctx, api.StepPayload{Count: api.MaxStepsPerCommand})
	require.NoError(t, err)
	assert.Equal(t, domain.EventTreasureReached, res.Event)
	assert.Equal(t, 4, ctx.Sim.Ticks())
	assert.NotEmpty(t, res.Data)
}

type fakeSwitcher struct {
	level *simulation.Level
	err   error
	calls int
}

func (f *fakeSwitcher) NextLevel() (*simulation.Level, error) {
	f.calls++
	return f.level, f.err
}

func killAll(t *testing.T, ctx handlers.Context) {
	t.Helper()
	// ловушки на обоих соседях входа, герой гибнет на первом шаге
	for _, c := range []domain.Coord{domain.C(0, 1), domain.C(1, 0)} {
		placed, err := ctx.Sim.PlaceEntity(c, domain.NewTrap(100, 0))
		require.NoError(t, err)
		require.True(t, placed)
	}
	_, err := HandleLaunch(ctx)
	require.NoError(t, err)
	res, err := HandleStep(ctx, api.StepPayload{Count: 5})
	require.NoError(t, err)
	require.Equal(t, domain.EventAllHeroesDead, res.Event)
}

func TestHandleNextLevel(t *testing.T) {
	t.Run("no campaign", func(t *testing.T) {
		_, err := HandleNextLevel(testCtx(t))
		assert.ErrorIs(t, err, ErrNoCampaign)
	})

	t.Run("not cleared", func(t *testing.T) {
		ctx := testCtx(t)
		sw := &fakeSwitcher{}
		ctx.Switcher = sw
		_, err := HandleNextLevel(ctx)
		assert.ErrorIs(t, err, simulation.ErrLevelNotCleared)
		assert.Zero(t, sw.calls)
	})

	t.Run("switches level", func(t *testing.T) {
		ctx := testCtx(t)
		next := testCtx(t).Sim.Level()
		ctx.Switcher = &fakeSwitcher{level: next}
		killAll(t, ctx)
		score := ctx.Sim.Score()

		res, err := HandleNextLevel(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.EventLevelChanged, res.Event)
		assert.Same(t, next, ctx.Sim.Level())
		assert.Equal(t, score, ctx.Sim.TotalScore())
	})

	t.Run("campaign complete", func(t *testing.T) {
		ctx := testCtx(t)
		ctx.Switcher = &fakeSwitcher{err: ErrCampaignComplete}
		killAll(t, ctx)

		res, err := HandleNextLevel(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.EventCampaignComplete, res.Event)
	})

	t.Run("switcher failure", func(t *testing.T) {
		ctx := testCtx(t)
		boom := errors.New("boom")
		ctx.Switcher = &fakeSwitcher{err: boom}
		killAll(t, ctx)

		_, err := HandleNextLevel(ctx)
		assert.ErrorIs(t, err, boom)
	})
}

func TestDungeonHandlers_NoStore(t *testing.T) {
	ctx := testCtx(t)
	_, err := HandleExport(ctx, api.DungeonPayload{Name: "a"})
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = HandleImport(ctx, api.DungeonPayload{Name: "a"})
	assert.ErrorIs(t, err, ErrNoStore)
	_, err = HandleList(ctx)
	assert.ErrorIs(t, err, ErrNoStore)
}
