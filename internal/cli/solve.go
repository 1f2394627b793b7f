package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/freeride/caseio"
	"github.com/katalvlaran/freeride/internal/cache"
	"github.com/katalvlaran/freeride/internal/config"
	"github.com/katalvlaran/freeride/internal/logger"
	"github.com/katalvlaran/freeride/search"
	"github.com/katalvlaran/freeride/ticket"
)

type solveFlags struct {
	home      string
	exact     bool
	bound     string
	timeLimit time.Duration
	workers   int
	dotDir    string
	cachePath string
}

func bindSolveFlags(fs *pflag.FlagSet, f *solveFlags) {
	fs.StringVar(&f.home, "home", ticket.DefaultHome, "home location name")
	fs.BoolVar(&f.exact, "exact", false, "key the dominance memo by the full ticket set (exact, more memory)")
	fs.StringVar(&f.bound, "bound", "euler", "lower-bound policy: none|euler")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "per-case search budget (0 = unlimited)")
	fs.IntVarP(&f.workers, "workers", "j", 4, "cases solved in parallel")
	fs.StringVar(&f.dotDir, "dot-dir", "", "write a Graphviz case_<n>.dot per case into this directory")
	fs.StringVar(&f.cachePath, "cache", "", "SQLite solution cache file")
}

// apply overrides cfg with every flag the user set explicitly.
func (f *solveFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("home") {
		cfg.Home = f.home
	}
	if fs.Changed("exact") {
		cfg.ExactDominance = f.exact
	}
	if fs.Changed("bound") {
		b, err := config.ParseBound(f.bound)
		if err != nil {
			return err
		}
		cfg.Bound = b
	}
	if fs.Changed("time-limit") {
		cfg.TimeLimit = f.timeLimit
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("dot-dir") {
		cfg.DotDir = f.dotDir
	}
	if fs.Changed("cache") {
		cfg.CachePath = f.cachePath
	}

	return cfg.Validate()
}

func solveCmd(g *globalFlags) *cobra.Command {
	var f solveFlags

	c := &cobra.Command{
		Use:   "solve [input]",
		Short: "Solve every case in the input file (stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := loadSession(cmd, g)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := f.apply(cmd.Flags(), &cfg); err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			return runSolve(cmd.Context(), cfg, in, cmd.OutOrStdout())
		},
	}

	bindSolveFlags(c.Flags(), &f)
	return c
}

type caseResult struct {
	index     int
	purchased []ticket.Pair
	err       error
}

// runSolve parses all cases, solves them on cfg.Workers goroutines and prints
// the results in input order. Failed cases are skipped in the output and
// reported together in the returned error.
func runSolve(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cases, err := caseio.Parse(in)
	if err != nil {
		return err
	}

	var store *cache.Store
	if cfg.CachePath != "" {
		if store, err = cache.Open(cfg.CachePath); err != nil {
			return err
		}
		defer store.Close()
	}

	var (
		results = make([]caseResult, len(cases))
		sem     = make(chan struct{}, cfg.Workers)
		wg      sync.WaitGroup
		start   = time.Now()
	)
	for i := range cases {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = solveCase(ctx, cfg, store, cases[i])
		}(i)
	}
	wg.Wait()

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		if err := caseio.WriteCase(out, r.index, r.purchased); err != nil {
			return err
		}
	}
	logger.L().Info("run.finished", "cases", len(cases), "failed", len(errs), "elapsed", time.Since(start))

	return errors.Join(errs...)
}

// variant names the search settings that influence the reported itinerary.
// The bound policy only affects running time, so it is not part of it.
func variant(cfg config.Config) string {
	if cfg.ExactDominance {
		return "v1/exact"
	}

	return "v1/count"
}

func solveCase(ctx context.Context, cfg config.Config, store *cache.Store, c caseio.Case) caseResult {
	log := logger.L().With("case", c.Index)
	key := cache.KeyFor(variant(cfg), cfg.Home, c.Tickets)

	if store != nil {
		e, err := store.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn("cache.get_failed", "err", err)
		case e != nil:
			log.Info("case.cached", "cost", e.Cost, "solved_at", e.SolvedAt)
			return caseResult{index: c.Index, purchased: e.Purchased}
		}
	}

	if cfg.DotDir != "" {
		if err := writeDOTFile(cfg.DotDir, c); err != nil {
			log.Warn("dot.write_failed", "err", err)
		}
	}

	tbl, err := ticket.Build(c.Tickets, cfg.Home)
	if err != nil {
		return caseResult{index: c.Index, err: fmt.Errorf("case %d: %w", c.Index, err)}
	}

	sctx := ctx
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}
	opts := append(cfg.SearchOptions(),
		search.WithContext(sctx),
		search.WithOnImprove(func(cost int) { log.Debug("search.improved", "cost", cost) }),
	)

	res, err := search.Run(tbl, opts...)
	if err != nil {
		if !errors.Is(err, search.ErrAborted) || res.Cost == search.NoSolution {
			return caseResult{index: c.Index, err: fmt.Errorf("case %d: %w", c.Index, err)}
		}
		log.Warn("case.incomplete", "cost", res.Cost, "lower_bound", res.LowerBound, "err", err)
	}
	if err := search.Verify(tbl, res); err != nil {
		return caseResult{index: c.Index, err: fmt.Errorf("case %d: %w", c.Index, err)}
	}

	log.Info("case.solved",
		"tickets", tbl.Len(),
		"cost", res.Cost,
		"lower_bound", res.LowerBound,
		"proven", res.Proven(),
		"nodes", humanize.Comma(res.Stats.Nodes),
		"memo", humanize.Comma(int64(res.Stats.MemoSize)),
		"elapsed", res.Stats.Elapsed,
	)

	purchased := res.Named(tbl)
	if store != nil && res.Complete {
		err := store.Put(ctx, key, cache.Entry{
			Cost:       res.Cost,
			LowerBound: res.LowerBound,
			Purchased:  purchased,
			SolvedAt:   time.Now(),
		})
		if err != nil {
			log.Warn("cache.put_failed", "err", err)
		}
	}

	return caseResult{index: c.Index, purchased: purchased}
}

func writeDOTFile(dir string, c caseio.Case) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("case_%d.dot", c.Index)))
	if err != nil {
		return err
	}
	if err := caseio.WriteDOT(f, c.Tickets); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
