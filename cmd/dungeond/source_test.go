package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    api.PlacePayload
		wantErr bool
	}{
		{in: "1,2,wall", want: api.PlacePayload{Row: 1, Col: 2, Entity: "wall"}},
		{in: " 3 , 4 , dragon:L", want: api.PlacePayload{Row: 3, Col: 4, Entity: "dragon", Orientation: "L"}},
		{in: "1,2", wantErr: true},
		{in: "a,2,trap", wantErr: true},
		{in: "1,b,trap", wantErr: true},
		{in: "-1,2,trap", wantErr: true},
		{in: "1,2,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePlacement(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGridSource(t *testing.T) {
	rules := domain.DefaultRules()

	t.Run("empty grid", func(t *testing.T) {
		s := gridSource{rows: 4, cols: 6}
		g, heroes, err := s.load(rules)
		require.NoError(t, err)
		assert.Equal(t, domain.C(3, 5), g.Exit)
		assert.Empty(t, heroes)
	})

	t.Run("generated", func(t *testing.T) {
		s := gridSource{seed: 7, rooms: 4, rows: 20, cols: 20}
		g, _, err := s.load(rules)
		require.NoError(t, err)
		assert.True(t, g.Walkable(g.Entry))
		assert.True(t, g.Walkable(g.Exit))
	})

	t.Run("file", func(t *testing.T) {
		g, err := domain.NewGrid(2, 3, domain.C(0, 0), domain.C(1, 2))
		require.NoError(t, err)
		hero := domain.NewHero("h", "H", 40, domain.StrategySafest)
		data, err := dungeon.Marshal(dungeon.Encode(g, []*domain.Hero{hero}))
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "d.json")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		s := gridSource{dungeonFile: path}
		back, heroes, err := s.load(rules)
		require.NoError(t, err)
		assert.Equal(t, 3, back.Cols)
		require.Len(t, heroes, 1)
		assert.Equal(t, 40, heroes[0].MaxHP)
	})

	t.Run("missing file", func(t *testing.T) {
		s := gridSource{dungeonFile: filepath.Join(t.TempDir(), "nope.json")}
		_, _, err := s.load(rules)
		assert.Error(t, err)
	})
}
