package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/dungeon"
)

// gridSource - откуда берется карта: файл сохранения, генератор или пустое поле
type gridSource struct {
	dungeonFile string
	seed        int64
	rooms       int
	rows, cols  int
}

func (s *gridSource) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.dungeonFile, "dungeon", "", "dungeon JSON file")
	f.Int64Var(&s.seed, "generate", 0, "generate a dungeon with this seed (0 = off)")
	f.IntVar(&s.rooms, "rooms", 6, "max rooms for the generator")
	f.IntVar(&s.rows, "rows", 10, "grid rows for empty or generated dungeons")
	f.IntVar(&s.cols, "cols", 10, "grid cols for empty or generated dungeons")
}

// load возвращает карту и героев из сохранения (если они там есть)
func (s *gridSource) load(rules domain.Rules) (*domain.Grid, []*domain.Hero, error) {
	switch {
	case s.dungeonFile != "":
		data, err := os.ReadFile(s.dungeonFile)
		if err != nil {
			return nil, nil, err
		}
		doc, err := dungeon.Unmarshal(data)
		if err != nil {
			return nil, nil, err
		}
		g, err := doc.DecodeGrid(rules)
		if err != nil {
			return nil, nil, err
		}
		return g, doc.DecodeHeroes(), nil

	case s.seed != 0:
		g, err := dungeon.NewGenerator(s.seed).WithSize(s.rows, s.cols).WithRooms(s.rooms).Generate()
		return g, nil, err

	default:
		g, err := domain.NewGrid(s.rows, s.cols, domain.C(0, 0), domain.C(s.rows-1, s.cols-1))
		return g, nil, err
	}
}

// parsePlacement разбирает "row,col,entity[:orientation]", например "2,3,dragon:L"
func parsePlacement(s string) (api.PlacePayload, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) != 3 {
		return api.PlacePayload{}, fmt.Errorf("bad placement %q, want row,col,entity", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return api.PlacePayload{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return api.PlacePayload{}, fmt.Errorf("bad col in %q: %w", s, err)
	}
	entity, orientation, _ := strings.Cut(strings.TrimSpace(parts[2]), ":")

	p := api.PlacePayload{Row: row, Col: col, Entity: entity, Orientation: orientation}
	return p, p.Validate()
}
