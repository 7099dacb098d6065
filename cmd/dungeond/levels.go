package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/RemiF1908/pcd/internal/campaign"
	"github.com/RemiF1908/pcd/internal/simulation"
)

var levelsCampaign string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels or built-in presets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if levelsCampaign == "" {
			names := make([]string, 0, len(simulation.Presets))
			for name := range simulation.Presets {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				return simulation.Presets[names[i]].Difficulty < simulation.Presets[names[j]].Difficulty
			})
			for _, name := range names {
				p := simulation.Presets[name]
				fmt.Fprintf(out, "%-7s difficulty %d, budget %d, %d x %d HP %s\n",
					p.Name, p.Difficulty, p.Budget, p.HeroCount, p.HeroHP, p.Strategy)
			}
			return nil
		}

		c, err := campaign.Load(levelsCampaign)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", c.Info.Name, c.Info.Description)
		for _, l := range c.Levels {
			fmt.Fprintf(out, "  #%d %-16s difficulty %d, budget %d, heroes %d, dungeon %s\n",
				l.ID, l.Name, l.Difficulty, l.Budget, len(l.Heroes), c.DungeonPath(l))
		}
		return nil
	},
}

func init() {
	levelsCmd.Flags().StringVar(&levelsCampaign, "campaign", "", "campaign file (YAML or JSON)")
}
