package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RemiF1908/pcd/internal/campaign"
	"github.com/RemiF1908/pcd/internal/domain"
	"github.com/RemiF1908/pcd/internal/engine"
	"github.com/RemiF1908/pcd/internal/infrastructure/storage"
	"github.com/RemiF1908/pcd/internal/pathfind"
	"github.com/RemiF1908/pcd/internal/render"
	"github.com/RemiF1908/pcd/internal/simulation"
	"github.com/RemiF1908/pcd/pkg/api"
	"github.com/RemiF1908/pcd/pkg/logger"
)

var runOpts struct {
	source     gridSource
	campaign   string
	preset     string
	placements []string
	save       string
	record     bool
	maxTicks   int
	color      bool
	quiet      bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the dungeon and run hero waves",
	Long: `run собирает уровень (кампания, файл, генератор или пустое поле),
ставит постройки из --place, запускает волну и печатает карту на каждом тике.
В режиме кампании после победы уровень переключается автоматически.`,
	RunE: runWaves,
}

func init() {
	f := runCmd.Flags()
	runOpts.source.bind(runCmd)
	f.StringVar(&runOpts.campaign, "campaign", "", "campaign file (YAML or JSON)")
	f.StringVar(&runOpts.preset, "preset", "easy", "level preset: easy, medium, hard")
	f.StringArrayVar(&runOpts.placements, "place", nil, "placement row,col,entity[:orientation] (repeatable)")
	f.StringVar(&runOpts.save, "save", "", "export the dungeon to the store under this name before launch")
	f.BoolVar(&runOpts.record, "record", false, "write a binary journal of every wave")
	f.IntVar(&runOpts.maxTicks, "max-ticks", 1000, "stop a wave after this many ticks")
	f.BoolVar(&runOpts.color, "color", true, "ANSI colors")
	f.BoolVar(&runOpts.quiet, "quiet", false, "print only wave results")
}

func runWaves(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := pathfind.DefaultRegistry()
	opts := []engine.Option{engine.WithRegistry(registry)}

	store, err := cfg.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	opts = append(opts, engine.WithStore(store))

	if runOpts.record {
		js, err := storage.NewJournalService(cfg.JournalDir)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithJournal(js))
	}

	var level *simulation.Level
	if runOpts.campaign != "" {
		c, err := campaign.Load(runOpts.campaign)
		if err != nil {
			return err
		}
		m := campaign.NewManager(c)
		first, _ := m.Current()
		if level, err = c.BuildLevel(first, cfg.BuildOptions(registry)); err != nil {
			return err
		}
		opts = append(opts, engine.WithCampaign(m))
		logger.Log.WithField("campaign", c.Info.Name).Info("Campaign loaded")
	} else if level, err = buildLevel(registry); err != nil {
		return err
	}

	svc := engine.NewService(cfg, level, opts...)
	printer := newPrinter(cmd, runOpts.color, runOpts.quiet)
	printer.show(svc.ProcessCommand(ctx, api.ClientCommand{Action: "INIT"}))

	for _, spec := range runOpts.placements {
		p, err := parsePlacement(spec)
		if err != nil {
			return err
		}
		printer.show(svc.ProcessCommand(ctx, command("PLACE", p)))
	}
	if runOpts.save != "" {
		printer.show(svc.ProcessCommand(ctx, command("EXPORT", api.DungeonPayload{Name: runOpts.save})))
	}

	for {
		resp := svc.ProcessCommand(ctx, api.ClientCommand{Action: "LAUNCH"})
		printer.show(resp)
		if resp.Error != "" {
			return fmt.Errorf("launch: %s", resp.Error)
		}

		final, err := waitWave(ctx, svc, printer)
		if err != nil {
			return err
		}
		if path := svc.LastJournal(); path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "journal: %s\n", path)
		}
		if runOpts.campaign == "" || final.Event != domain.EventAllHeroesDead.String() {
			return nil
		}

		next := svc.ProcessCommand(ctx, api.ClientCommand{Action: "NEXT_LEVEL"})
		printer.show(next)
		if next.Event != domain.EventLevelChanged.String() {
			return nil
		}
	}
}

// buildLevel собирает уровень пресета на карте из --dungeon, --generate или пустой
func buildLevel(registry *pathfind.Registry) (*simulation.Level, error) {
	g, heroes, err := runOpts.source.load(cfg.Rules)
	if err != nil {
		return nil, err
	}
	preset, err := simulation.PresetByName(runOpts.preset)
	if err != nil {
		return nil, err
	}

	b := preset.Builder(registry, g).WithWakeInterval(cfg.WakeInterval)
	if len(heroes) > 0 {
		b = simulation.NewLevelBuilder(registry).
			WithName(preset.Name).
			WithDifficulty(preset.Difficulty).
			WithBudget(preset.Budget).
			WithWakeInterval(cfg.WakeInterval).
			WithDungeon(g)
		for _, h := range heroes {
			b.AddHeroInstance(h)
		}
	}
	return b.Build()
}

// waitWave крутит тики с паузой из конфига до конца волны
func waitWave(ctx context.Context, svc *engine.GameService, printer *printer) (api.ServerResponse, error) {
	var ticker *time.Ticker
	if cfg.TickInterval > 0 {
		ticker = time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()
	}

	for i := 0; i < runOpts.maxTicks; i++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return svc.ProcessCommand(context.Background(), api.ClientCommand{Action: "STOP"}), ctx.Err()
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return svc.ProcessCommand(context.Background(), api.ClientCommand{Action: "STOP"}), ctx.Err()
		}

		resp, running := svc.Tick()
		if !running {
			return resp, nil
		}
		printer.show(resp)
		if resp.Type == "WAVE_RESULT" {
			return resp, nil
		}
	}

	resp := svc.ProcessCommand(ctx, api.ClientCommand{Action: "STOP"})
	printer.show(resp)
	return resp, nil
}

func command(action string, payload any) api.ClientCommand {
	raw, _ := json.Marshal(payload)
	return api.ClientCommand{Action: action, Payload: raw}
}

// printer печатает ответы сервиса в терминал
type printer struct {
	cmd   *cobra.Command
	color bool
	quiet bool
}

func newPrinter(cmd *cobra.Command, color, quiet bool) *printer {
	return &printer{cmd: cmd, color: color, quiet: quiet}
}

func (p *printer) show(resp api.ServerResponse) {
	out := p.cmd.OutOrStdout()
	for _, l := range resp.Logs {
		if p.quiet && l.Type != "WAVE" && l.Type != "ERROR" {
			continue
		}
		fmt.Fprintf(out, "[%s] %s\n", l.Type, l.Text)
	}
	if resp.Type == "WAVE_RESULT" && resp.Result != nil {
		r := resp.Result
		fmt.Fprintf(out, "result: killed=%d survived=%d cost=%d turns=%d score=%d\n",
			r.HeroesKilled, r.HeroesSurvived, r.ConstructionCost, r.Turns, r.Score)
	}
	if p.quiet || resp.Grid == nil || resp.Status == nil {
		return
	}
	s := resp.Status
	fmt.Fprintf(out, "level %d | tick %d | budget %d | heroes %d | %s\n",
		s.Level, s.Ticks, s.Budget, s.AliveHeroes, s.State)
	fmt.Fprint(out, render.FromView(*resp.Grid).String(p.color))
}
