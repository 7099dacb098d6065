package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/internal/render"
	"github.com/RemiF1908/pcd/internal/simulation"
)

var pathOpts struct {
	source     gridSource
	strategy   string
	placements []string
	color      bool
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the path a strategy picks from entry to treasure",
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, _, err := pathOpts.source.load(cfg.Rules)
		if err != nil {
			return err
		}
		registry := pathfind.DefaultRegistry()

		// постройки ставятся через симуляцию, чтобы работали те же правила бюджета
		lvl, err := simulation.Custom(1, 1<<20, 0, 0, pathOpts.strategy).Level(registry, g)
		if err != nil {
			return err
		}
		sim := simulation.New(lvl, registry)
		for _, spec := range pathOpts.placements {
			p, err := parsePlacement(spec)
			if err != nil {
				return err
			}
			spec := p.Entity
			if p.Orientation != "" {
				spec += ":" + p.Orientation
			}
			e, err := cfg.Rules.Parse(spec)
			if err != nil {
				return err
			}
			if _, err := sim.PlaceEntity(domain.C(p.Row, p.Col), e); err != nil {
				return err
			}
		}

		grid := sim.Grid()
		path, err := registry.FindPath(pathOpts.strategy, grid, grid.Entry, grid.Exit)
		if err != nil {
			return fmt.Errorf("strategies: %s: %w", strings.Join(registry.Names(), ", "), err)
		}

		out := cmd.OutOrStdout()
		canvas := render.FromView(sim.GridView())
		canvas.Overlay(path)
		fmt.Fprint(out, canvas.String(pathOpts.color))
		if len(path) == 0 {
			fmt.Fprintln(out, "no path to treasure")
			return nil
		}
		fmt.Fprintf(out, "%s: %d steps, hazard %d\n", pathOpts.strategy, len(path)-1, pathfind.HazardCost(grid, path))
		return nil
	},
}

func init() {
	f := pathCmd.Flags()
	pathOpts.source.bind(pathCmd)
	f.StringVar(&pathOpts.strategy, "strategy", "safest", "path strategy")
	f.StringArrayVar(&pathOpts.placements, "place", nil, "placement row,col,entity[:orientation] (repeatable)")
	f.BoolVar(&pathOpts.color, "color", true, "ANSI colors")
}
