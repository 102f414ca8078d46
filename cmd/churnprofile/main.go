// Command churnprofile replays add/remove churn against both containers and
// optionally writes a pprof profile.
//
// Profiling:
//
//	go build ./cmd/churnprofile
//	./churnprofile --profile mem --rounds 50
//	go tool pprof -http=":8000" ./churnprofile mem.pprof
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/slotlist"
	"github.com/hupe1980/slotlist/testutil"
)

type config struct {
	rounds      int
	steps       int
	removeRatio float64
	increment   int
	seed        int64
	profile     string
	profileDir  string
	verbose     bool
}

var errUnknownProfile = errors.New("unknown profile mode")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	cfg, err := parseFlags(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}

	if cfg.profile != "" {
		mode, err := profileMode(cfg.profile)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 2
		}
		p := profile.Start(mode, profile.ProfilePath(cfg.profileDir), profile.NoShutdownHook, profile.Quiet)
		defer p.Stop()
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slotlist.NewLogger(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	start := time.Now()
	arrStats, listStats, err := churn(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	fmt.Fprintf(out, "churn finished in %s (%d rounds x %d steps)\n", time.Since(start).Round(time.Millisecond), cfg.rounds, cfg.steps)
	report(out, slotlist.ContainerSlotArray, arrStats)
	report(out, slotlist.ContainerGenerationalList, listStats)
	return 0
}

func parseFlags(args []string, errOut io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("churnprofile", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVarP(&cfg.rounds, "rounds", "r", 20, "number of fresh containers per kind")
	fs.IntVarP(&cfg.steps, "steps", "n", 100_000, "add/remove steps per round")
	fs.Float64Var(&cfg.removeRatio, "remove-ratio", 0.45, "probability that a step removes an item")
	fs.IntVar(&cfg.increment, "grow-increment", slotlist.DefaultGrowIncrement, "slots added when a container is full")
	fs.Int64Var(&cfg.seed, "seed", 42, "seed for the churn script")
	fs.StringVar(&cfg.profile, "profile", "", "write a profile: cpu, mem or allocs")
	fs.StringVar(&cfg.profileDir, "profile-dir", ".", "directory for profile output")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every storage growth")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.rounds < 1 || cfg.steps < 1 {
		return cfg, errors.New("--rounds and --steps must be positive")
	}
	return cfg, nil
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownProfile, name)
	}
}

// churn runs the SlotArray and GenerationalList workloads concurrently. Each
// goroutine owns its containers; only the metrics collectors are shared
// across rounds.
func churn(ctx context.Context, cfg config, logger *slotlist.Logger) (slotlist.BasicMetricsStats, slotlist.BasicMetricsStats, error) {
	ops := testutil.NewRNG(cfg.seed).ChurnScript(cfg.steps, cfg.removeRatio)

	arrMetrics := &slotlist.BasicMetricsCollector{}
	listMetrics := &slotlist.BasicMetricsCollector{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for range cfg.rounds {
			if err := ctx.Err(); err != nil {
				return err
			}
			arr := slotlist.NewSlotArray[int](
				slotlist.WithGrowIncrement(cfg.increment),
				slotlist.WithMetricsCollector(arrMetrics),
				slotlist.WithLogger(logger),
			)
			if err := churnSlotArray(arr, ops); err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		for range cfg.rounds {
			if err := ctx.Err(); err != nil {
				return err
			}
			list := slotlist.NewGenerationalList[int](
				slotlist.WithGrowIncrement(cfg.increment),
				slotlist.WithMetricsCollector(listMetrics),
				slotlist.WithLogger(logger),
			)
			if err := churnList(list, ops); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return slotlist.BasicMetricsStats{}, slotlist.BasicMetricsStats{}, err
	}
	return arrMetrics.GetStats(), listMetrics.GetStats(), nil
}

func churnSlotArray(arr *slotlist.SlotArray[int], ops []testutil.Op) error {
	live := make([]int, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case testutil.OpAdd:
			live = append(live, arr.Add(op.Value))
		case testutil.OpRemove:
			i := op.Victim % len(live)
			if err := arr.RemoveAt(live[i]); err != nil {
				return fmt.Errorf("slot array: %w", err)
			}
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	c := arr.Cursor()
	defer c.Release()
	seen := 0
	for c.MoveNext() {
		seen++
	}
	if seen != len(live) {
		return fmt.Errorf("slot array: cursor saw %d items, want %d", seen, len(live))
	}
	return nil
}

func churnList(list *slotlist.GenerationalList[int], ops []testutil.Op) error {
	live := make([]slotlist.Handle, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case testutil.OpAdd:
			live = append(live, list.Add(op.Value))
		case testutil.OpRemove:
			i := op.Victim % len(live)
			if err := list.Remove(live[i]); err != nil {
				return fmt.Errorf("generational list: %w", err)
			}
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		}
	}

	for _, h := range live {
		if !list.Contains(h) {
			return fmt.Errorf("generational list: lost handle %s", h)
		}
	}
	return nil
}

func report(out io.Writer, name string, s slotlist.BasicMetricsStats) {
	fmt.Fprintf(out, "%-18s adds=%d reused=%d removes=%d remove_errors=%d grows=%d grown_slots=%d\n",
		name, s.AddCount, s.ReuseCount, s.RemoveCount, s.RemoveErrors, s.GrowCount, s.GrownSlots)
}
