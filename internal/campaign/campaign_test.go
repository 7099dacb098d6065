package campaign

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/dungeon"
	"github.com/RemiF1908/pcd/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const campaignYAML = `
campaign:
  name: Test Campaign
  description: two levels
levels:
  - id: 1
    name: First
    difficulty: 1
    budget: 150
    dungeon_file: dungeons/one.json
    heroes:
      - pv: 50
        strategy: safest
      - pv: 60
        strategy: shortest
  - id: 2
    name: Second
    difficulty: 2
    budget: 90
    dungeon_file: dungeons/one.json
`

func writeDungeon(t *testing.T, dir string) {
	t.Helper()
	g, err := domain.NewGrid(3, 4, domain.C(0, 0), domain.C(2, 3))
	require.NoError(t, err)
	_, err = g.Place(domain.C(1, 1), domain.NewWall(domain.CostWall))
	require.NoError(t, err)

	hero := domain.NewHero("h1", "Doc Hero", 70, domain.StrategyShortest)
	data, err := dungeon.Marshal(dungeon.Encode(g, []*domain.Hero{hero}))
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dungeons"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dungeons", "one.json"), data, 0o644))
}

func writeCampaign(t *testing.T, name, body string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	writeDungeon(t, dir)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return dir, path
}

func TestLoad_YAML(t *testing.T) {
	dir, path := writeCampaign(t, "campaign.yaml", campaignYAML)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Campaign", c.Info.Name)
	require.Len(t, c.Levels, 2)
	assert.Equal(t, 150, c.Levels[0].Budget)
	assert.Equal(t, []HeroConfig{{PV: 50, Strategy: "safest"}, {PV: 60, Strategy: "shortest"}}, c.Levels[0].Heroes)
	assert.Equal(t, filepath.Join(dir, "dungeons", "one.json"), c.DungeonPath(c.Levels[0]))
}

func TestLoad_JSON(t *testing.T) {
	body := `{"campaign":{"name":"J"},"levels":[{"id":7,"budget":10,"dungeon_file":"dungeons/one.json"}]}`
	_, path := writeCampaign(t, "campaign.json", body)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "J", c.Info.Name)
	assert.Equal(t, 7, c.Levels[0].ID)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("no levels", func(t *testing.T) {
		_, path := writeCampaign(t, "c.yaml", "campaign:\n  name: empty\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrEmptyCampaign)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		body := "levels:\n  - id: 1\n  - id: 1\n"
		_, path := writeCampaign(t, "c.yaml", body)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, path := writeCampaign(t, "c.yml", "levels: [")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestBuildLevel(t *testing.T) {
	_, path := writeCampaign(t, "campaign.yaml", campaignYAML)
	c, err := Load(path)
	require.NoError(t, err)
	opts := BuildOptions{Rules: domain.DefaultRules(), Registry: pathfind.DefaultRegistry(), WakeInterval: 2}

	t.Run("heroes from config", func(t *testing.T) {
		lvl, err := c.BuildLevel(c.Levels[0], opts)
		require.NoError(t, err)

		assert.Equal(t, "First", lvl.Name)
		assert.Equal(t, 150, lvl.Budget)
		assert.Equal(t, 2, lvl.WakeInterval)
		heroes := lvl.Heroes()
		require.Len(t, heroes, 2)
		assert.Equal(t, 50, heroes[0].MaxHP)
		assert.Equal(t, domain.StrategyShortest, heroes[1].Strategy)
		assert.NotEmpty(t, heroes[0].Path)

		cell, ok := lvl.Dungeon().Cell(domain.C(1, 1))
		require.True(t, ok)
		assert.Equal(t, domain.KindWall, cell.Kind())
	})

	t.Run("heroes from dungeon file", func(t *testing.T) {
		lvl, err := c.BuildLevel(c.Levels[1], opts)
		require.NoError(t, err)
		heroes := lvl.Heroes()
		require.Len(t, heroes, 1)
		assert.Equal(t, 70, heroes[0].MaxHP)
	})

	t.Run("no dungeon file", func(t *testing.T) {
		_, err := c.BuildLevel(LevelConfig{ID: 9}, opts)
		assert.Error(t, err)
	})
}

func TestManager(t *testing.T) {
	c := &Campaign{
		Info:   Info{Name: "M"},
		Levels: []LevelConfig{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	m := NewManager(c)

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, 1, cur.ID)
	assert.True(t, m.HasMore())

	byID, ok := m.ByID(3)
	require.True(t, ok)
	assert.Equal(t, 3, byID.ID)
	_, ok = m.ByID(42)
	assert.False(t, ok)

	m.Complete(1)
	m.Complete(1)
	assert.Equal(t, []int{1}, m.Completed())
	assert.True(t, m.IsCompleted(1))

	next, ok := m.Advance()
	require.True(t, ok)
	assert.Equal(t, 2, next.ID)

	next, ok = m.Advance()
	require.True(t, ok)
	assert.Equal(t, 3, next.ID)
	assert.False(t, m.HasMore())

	_, ok = m.Advance()
	assert.False(t, ok)
	_, ok = m.Advance()
	assert.False(t, ok)

	m.Reset()
	cur, ok = m.Current()
	require.True(t, ok)
	assert.Equal(t, 1, cur.ID)
	assert.Empty(t, m.Completed())
	assert.Equal(t, "M", m.Info().Name)
}

func TestManager_CheckWin(t *testing.T) {
	m := NewManager(&Campaign{Levels: []LevelConfig{{ID: 1}}})
	assert.True(t, m.CheckWin(simulation.WaveResult{HeroesKilled: 2}))
	assert.False(t, m.CheckWin(simulation.WaveResult{HeroesKilled: 1, HeroesSurvived: 1}))
}
