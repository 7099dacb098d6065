package dungeon

import (
	"testing"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGrid(t *testing.T) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(3, 4, domain.C(0, 0), domain.C(2, 3))
	require.NoError(t, err)
	rules := domain.DefaultRules()
	_, _ = g.Place(domain.C(0, 1), domain.NewWall(rules.WallCost))
	_, _ = g.Place(domain.C(1, 1), domain.NewTrap(25, rules.TrapCost))
	_, _ = g.Place(domain.C(1, 3), domain.NewDragon(domain.OrientLeft, 35, rules.DragonCost, rules.DragonCooldown))
	_, _ = g.Place(domain.C(2, 0), domain.NewBomb(rules.BombPower, rules.BombCost))
	_, _ = g.Place(domain.C(0, 3), domain.NewWall(0))
	return g
}

func TestCodec_RoundTrip(t *testing.T) {
	rules := domain.DefaultRules()
	g := sampleGrid(t)
	hero := domain.NewHero("h1", "Hero 1", 100, "safest")
	hero.HP = 60

	data, err := Marshal(Encode(g, []*domain.Hero{hero}).WithMeta(3, 55))
	require.NoError(t, err)

	doc, err := Unmarshal(data)
	require.NoError(t, err)
	require.NotNil(t, doc.LevelID)
	assert.Equal(t, 3, *doc.LevelID)
	assert.Equal(t, 55, *doc.CurrentBudget)

	back, err := doc.DecodeGrid(rules)
	require.NoError(t, err)
	assert.Equal(t, g.Rows, back.Rows)
	assert.Equal(t, g.Entry, back.Entry)
	assert.Equal(t, g.Exit, back.Exit)
	assert.Equal(t, g.TotalCost(), back.TotalCost())

	g.Each(func(cell *domain.Cell) {
		other, ok := back.Cell(cell.Pos)
		require.True(t, ok)
		assert.Equal(t, cell.Kind(), other.Kind(), "at %s", cell.Pos)
		assert.Equal(t, cell.Damage(), other.Damage(), "at %s", cell.Pos)
	})

	dragonCell, _ := back.Cell(domain.C(1, 3))
	d := dragonCell.Entity.(*domain.Dragon)
	assert.Equal(t, domain.OrientLeft, d.Orientation)
	assert.Equal(t, 35, d.Power())
	assert.True(t, d.InRange(domain.C(1, 0)), "range recomputed on load")

	heroes := doc.DecodeHeroes()
	require.Len(t, heroes, 1)
	assert.Equal(t, 60, heroes[0].HP)
	assert.Equal(t, 100, heroes[0].MaxHP)
	assert.Equal(t, "safest", heroes[0].Strategy)
}

func TestCodec_PersistedFormat(t *testing.T) {
	raw := `{
	  "dimension": [2, 3],
	  "entry": [0, 0],
	  "exit": [1, 2],
	  "grid": [
	    [{"type": "Floor", "position": [0, 0]}, {"type": "Trap", "position": [0, 1], "damage": 10}, {"type": "Lava", "position": [0, 2]}],
	    [{"type": "Bombe", "position": [1, 0]}, {"type": "Dragon", "position": [1, 1], "orientation": "U"}, {"type": "Wall", "position": [1, 2]}]
	  ],
	  "heroes": [{"position": [0, 0], "pv_current": 100, "pv_total": 100, "strategy": "shortest"}]
	}`
	doc, err := Unmarshal([]byte(raw))
	require.NoError(t, err)
	assert.Nil(t, doc.LevelID)

	g, err := doc.DecodeGrid(domain.DefaultRules())
	require.NoError(t, err)

	tests := []struct {
		at   domain.Coord
		kind domain.EntityKind
	}{
		{domain.C(0, 0), domain.KindFloor},
		{domain.C(0, 1), domain.KindTrap},
		{domain.C(0, 2), domain.KindFloor}, // неизвестный тип
		{domain.C(1, 0), domain.KindBomb},
		{domain.C(1, 1), domain.KindDragon},
		{domain.C(1, 2), domain.KindWall},
	}
	for _, tt := range tests {
		cell, _ := g.Cell(tt.at)
		assert.Equal(t, tt.kind, cell.Kind(), "at %s", tt.at)
	}

	// без cost постройка считается частью карты
	assert.Equal(t, 0, g.TotalCost())

	out := Encode(g, nil)
	assert.Equal(t, "Bombe", out.Grid[1][0].Type)
	assert.Equal(t, "U", out.Grid[1][1].Orientation)
	assert.Empty(t, out.Heroes)
}

func TestCodec_Malformed(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	assert.ErrorIs(t, err, ErrMalformed)

	doc := &Document{Dimension: [2]int{2, 2}, Entry: [2]int{0, 0}, Exit: [2]int{5, 5}}
	_, err = doc.DecodeGrid(domain.DefaultRules())
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)
}
