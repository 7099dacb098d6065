package simulation

import (
	"testing"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/pkg/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placementSim(t *testing.T, budget int) *Simulation {
	return newSim(t, simSetup{
		rows: 4, cols: 4,
		entry: domain.C(0, 0), exit: domain.C(3, 3),
		budget: budget,
		heroes: []heroSpec{{hp: 100, strategy: "shortest"}},
	})
}

func TestPlaceEntity_WallOverTrapRefunds(t *testing.T) {
	s := placementSim(t, 130)
	rules := domain.DefaultRules()

	placed, err := s.PlaceEntity(domain.C(1, 1), domain.NewTrap(rules.TrapDamage, 30))
	require.NoError(t, err)
	require.True(t, placed)
	require.Equal(t, 100, s.Budget())

	placed, err = s.PlaceEntity(domain.C(1, 1), domain.NewWall(40))
	require.NoError(t, err)
	require.True(t, placed)
	assert.Equal(t, 100+30-40, s.Budget())

	cell, _ := s.Grid().Cell(domain.C(1, 1))
	assert.Equal(t, domain.KindWall, cell.Kind())
}

func TestPlaceEntity_RoundTrip(t *testing.T) {
	rules := domain.DefaultRules()
	for _, spec := range []string{"wall", "trap", "dragon:L", "bomb"} {
		t.Run(spec, func(t *testing.T) {
			s := placementSim(t, 500)
			e, err := rules.Parse(spec)
			require.NoError(t, err)

			placed, err := s.PlaceEntity(domain.C(2, 1), e)
			require.NoError(t, err)
			require.True(t, placed)
			assert.Equal(t, 500-e.Cost(), s.Budget())

			refund, err := s.RemoveEntity(domain.C(2, 1))
			require.NoError(t, err)
			assert.Equal(t, e.Cost(), refund)
			assert.Equal(t, 500, s.Budget())

			cell, _ := s.Grid().Cell(domain.C(2, 1))
			assert.True(t, cell.IsFloor())
		})
	}
}

func TestPlaceEntity_BudgetTooLowIsSilent(t *testing.T) {
	s := placementSim(t, 50)

	placed, err := s.PlaceEntity(domain.C(1, 1), domain.NewDragon(domain.OrientUp, 30, 100, 4))
	assert.NoError(t, err)
	assert.False(t, placed)
	assert.Equal(t, 50, s.Budget())

	cell, _ := s.Grid().Cell(domain.C(1, 1))
	assert.True(t, cell.IsFloor())

	// замена с возвратом может уложиться в бюджет
	placed, _ = s.PlaceEntity(domain.C(1, 1), domain.NewWall(40))
	require.True(t, placed)
	require.Equal(t, 10, s.Budget())
	placed, _ = s.PlaceEntity(domain.C(1, 1), domain.NewWall(50))
	assert.True(t, placed, "10 left + 40 refund covers 50")
	assert.Equal(t, 0, s.Budget())
}

func TestPlaceEntity_OutOfBounds(t *testing.T) {
	s := placementSim(t, 100)

	_, err := s.PlaceEntity(domain.C(4, 0), domain.NewWall(40))
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = s.RemoveEntity(domain.C(0, -1))
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)
	assert.Equal(t, 100, s.Budget())
}

func TestPlaceEntity_RejectedMidRun(t *testing.T) {
	s := placementSim(t, 100)
	_, _ = s.PlaceEntity(domain.C(2, 2), domain.NewTrap(10, 30))
	require.True(t, s.Launch())

	placed, err := s.PlaceEntity(domain.C(1, 1), domain.NewWall(40))
	assert.ErrorIs(t, err, domain.ErrSimulationStarted)
	assert.False(t, placed)

	_, err = s.RemoveEntity(domain.C(2, 2))
	assert.ErrorIs(t, err, domain.ErrSimulationStarted)

	_, err = s.ResetGrid()
	assert.ErrorIs(t, err, domain.ErrSimulationStarted)

	assert.Equal(t, 70, s.Budget())
	assert.Equal(t, 30, s.Grid().TotalCost())
}

func TestResetGrid_RefundsEverything(t *testing.T) {
	s := placementSim(t, 300)
	_, _ = s.PlaceEntity(domain.C(1, 1), domain.NewWall(40))
	_, _ = s.PlaceEntity(domain.C(1, 2), domain.NewTrap(10, 30))
	_, _ = s.PlaceEntity(domain.C(2, 2), domain.NewBomb(50, 80))
	require.Equal(t, 150, s.Budget())

	refund, err := s.ResetGrid()
	require.NoError(t, err)
	assert.Equal(t, 150, refund)
	assert.Equal(t, 300, s.Budget())
	assert.Empty(t, s.Grid().Monsters())
}

func TestRemoveEntity_FloorRefundsNothing(t *testing.T) {
	s := placementSim(t, 100)
	refund, err := s.RemoveEntity(domain.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, refund)
	assert.Equal(t, 100, s.Budget())
}

// loadedSim строит уровень из сохраненной карты, как кампания или IMPORT
func loadedSim(t *testing.T, raw string, budget int) *Simulation {
	t.Helper()
	doc, err := dungeon.Unmarshal([]byte(raw))
	require.NoError(t, err)
	g, err := doc.DecodeGrid(domain.DefaultRules())
	require.NoError(t, err)

	reg := pathfind.DefaultRegistry()
	lvl, err := NewLevelBuilder(reg).WithBudget(budget).WithDungeon(g).AddHero(100, "shortest").Build()
	require.NoError(t, err)
	return New(lvl, reg)
}

func TestPrebuiltEntities_NoBudgetLeak(t *testing.T) {
	const noCost = `{"dimension":[3,3],"entry":[0,0],"exit":[2,2],"grid":[[{"type":"Floor","position":[0,0]},{"type":"Wall","position":[0,1]}]]}`
	const withCost = `{"dimension":[3,3],"entry":[0,0],"exit":[2,2],"grid":[[{"type":"Floor","position":[0,0]},{"type":"Wall","position":[0,1],"cost":40}]]}`

	t.Run("remove wall without cost", func(t *testing.T) {
		s := loadedSim(t, noCost, 100)
		refund, err := s.RemoveEntity(domain.C(0, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, refund)
		assert.Equal(t, 100, s.Budget())
	})

	t.Run("reset grid without cost", func(t *testing.T) {
		s := loadedSim(t, noCost, 100)
		refund, err := s.ResetGrid()
		require.NoError(t, err)
		assert.Equal(t, 0, refund)
		assert.Equal(t, 100, s.Budget())
	})

	t.Run("priced prebuilt refunds at most what was spent", func(t *testing.T) {
		s := loadedSim(t, withCost, 100)
		refund, err := s.RemoveEntity(domain.C(0, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, refund)

		s = loadedSim(t, withCost, 100)
		placed, err := s.PlaceEntity(domain.C(1, 1), domain.NewTrap(10, 30))
		require.NoError(t, err)
		require.True(t, placed)
		refund, err = s.ResetGrid()
		require.NoError(t, err)
		assert.Equal(t, 30, refund)
		assert.Equal(t, 100, s.Budget())
	})

	t.Run("construction cost never negative", func(t *testing.T) {
		s := loadedSim(t, noCost, 100)
		_, err := s.ResetGrid()
		require.NoError(t, err)
		require.True(t, s.Launch())
		res := runUntilDone(t, s, 20)
		assert.True(t, res.TreasureReached)
		assert.Equal(t, 0, res.ConstructionCost)
	})
}
