package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"

	"whalehunt/internal/config"
	"whalehunt/internal/hunt"
	"whalehunt/internal/util"
	"whalehunt/internal/viz"
)

func main() {
	var cfgPath, envFile, out, serve string
	var seed int64
	var width, height, n, maxTurns int
	var interactive, saveLog, color bool
	var delay time.Duration
	flag.StringVar(&cfgPath, "config", "", "YAML config file (defaults when empty)")
	flag.StringVar(&envFile, "env", ".env", "env file with WHALEHUNT_* overrides")
	flag.StringVar(&out, "out", "", "write the result (single) or summary (batch) JSON here")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	flag.IntVar(&width, "width", 0, "grid width")
	flag.IntVar(&height, "height", 0, "grid height")
	flag.IntVar(&n, "n", 1, "number of games; >1 runs a batch")
	flag.IntVar(&maxTurns, "max-turns", 0, "turn cap (0 = unlimited)")
	flag.BoolVar(&interactive, "interactive", false, "wait for Enter before every turn and print the belief map")
	flag.BoolVar(&saveLog, "log", false, "record the full event log in the single-game result")
	flag.BoolVar(&color, "color", true, "colour the belief map")
	flag.StringVar(&serve, "serve", "", "serve frames on this address (e.g. :8080) while playing")
	flag.DurationVar(&delay, "delay", 500*time.Millisecond, "pause between turns when serving")
	flag.Parse()

	if err := config.LoadEnv(envFile); err != nil {
		util.WarnWith(err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		util.FailWith(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "width":
			cfg.Grid.Width = width
		case "height":
			cfg.Grid.Height = height
		case "n":
			cfg.Runs = n
		case "max-turns":
			cfg.MaxTurns = maxTurns
		case "color":
			cfg.Color = color
		}
	})
	if err := cfg.Validate(); err != nil {
		util.FailWith(err)
	}
	grid, err := cfg.HuntGrid()
	if err != nil {
		util.FailWith(err)
	}
	base := util.Seed(cfg.Seed)

	switch {
	case cfg.Runs > 1:
		err = runBatch(cfg, grid, base, out)
	case interactive:
		err = runInteractive(hunt.NewGame(grid, base), cfg.MaxTurns, os.Stdin, os.Stdout, cfg.Color)
	case serve != "":
		err = runServed(hunt.NewGame(grid, base), cfg, serve, delay, out)
	default:
		err = runOnce(hunt.NewGame(grid, base), cfg, saveLog, out)
	}
	if err != nil {
		util.FailWith(err)
	}
}

func runOnce(g *hunt.Game, cfg *config.GameConfig, saveLog bool, out string) error {
	res, err := hunt.RunSingle(g, hunt.RunOptions{MaxTurns: cfg.MaxTurns, Record: saveLog})
	if err != nil {
		return err
	}
	if err := writeJSON(out, res); err != nil {
		return err
	}
	fmt.Printf("Single game finished. Found=%v, turns=%d, seed=%d\n", res.Found, res.Turns, res.Seed)
	return nil
}

// runInteractive mirrors the classic console loop: Enter advances one turn,
// the map is shown with the ship where it measured, then its new cell.
// maxTurns caps the game like the other modes (0 = unlimited).
func runInteractive(g *hunt.Game, maxTurns int, in io.Reader, w io.Writer, color bool) error {
	r := bufio.NewReader(in)
	for !g.Found() {
		if maxTurns > 0 && g.Turn() >= maxTurns {
			fmt.Fprintf(w, "Turn limit %d reached\n", maxTurns)
			return nil
		}
		if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
			return errors.Wrap(err, "read turn trigger")
		}
		f, err := g.Step()
		if err != nil {
			return err
		}
		if err := hunt.Render(w, f, color); err != nil {
			return err
		}
		fmt.Fprintf(w, "Ship at %s\n", f.Ship)
	}
	fmt.Fprintln(w, "Whale found")
	return nil
}

func runServed(g *hunt.Game, cfg *config.GameConfig, addr string, delay time.Duration, out string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hub := viz.NewHub()
	srv := viz.NewServer(addr, hub)
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(ctx) }()

	res, err := hunt.RunSingle(g, hunt.RunOptions{
		MaxTurns: cfg.MaxTurns,
		OnFrame: func(f hunt.Frame) {
			if err := hub.Publish(f); err != nil {
				util.WarnWith(err)
			}
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		},
	})
	if err != nil {
		return err
	}
	if err := writeJSON(out, res); err != nil {
		return err
	}
	util.DebugWith("whalehunt", "game finished, serving last frame until interrupted", util.Context{
		"found": res.Found, "turns": res.Turns, "seed": res.Seed,
	})
	select {
	case <-ctx.Done():
		return <-errc
	case err := <-errc:
		return err
	}
}

func runBatch(cfg *config.GameConfig, grid hunt.Grid, base int64, out string) error {
	bar := pb.New(cfg.Runs)
	bar.Output = os.Stderr
	bar.Start()
	sum, err := hunt.RunBatch(hunt.BatchOptions{
		Grid:     grid,
		Seed:     base,
		Runs:     cfg.Runs,
		Workers:  cfg.Workers,
		MaxTurns: cfg.MaxTurns,
	}, func() { bar.Increment() })
	bar.Finish()
	if err != nil {
		return err
	}
	if err := writeJSON(out, sum); err != nil {
		return err
	}
	util.DebugWith("whalehunt", "batch finished", util.Context{
		"runs": sum.Runs, "found_rate": sum.FoundRate, "avg_turns": sum.AvgTurns, "seed": base,
	})
	if out != "" {
		fmt.Printf("Batch %d done -> %s\n", sum.Runs, filepath.Base(out))
	}
	return nil
}

func writeJSON(path string, v any) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, hunt.MarshalPretty(v), 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
