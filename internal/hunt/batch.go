package hunt

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type BatchOptions struct {
	Grid     Grid
	Seed     int64 // already resolved; run i uses Seed + i*7919
	Runs     int
	Workers  int
	MaxTurns int
}

type BatchSummary struct {
	Runs        int     `json:"runs"`
	Found       int     `json:"found"`
	FoundRate   float64 `json:"found_rate"`
	AvgTurns    float64 `json:"avg_turns"`
	MinTurns    int     `json:"min_turns"`
	MaxTurns    int     `json:"max_turns"`
	MedianTurns float64 `json:"median_turns"`
}

func RunSeed(base int64, i int) int64 { return base + int64(i)*7919 }

// RunBatch plays opts.Runs independent games over a worker pool. Turn
// statistics only cover games that ended with the whale found. progress, if
// set, is called once per finished game from the worker goroutines.
func RunBatch(opts BatchOptions, progress func()) (BatchSummary, error) {
	if opts.Runs < 0 {
		return BatchSummary{}, errors.Errorf("batch: runs must be >= 0, got %d", opts.Runs)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > opts.Runs {
		workers = opts.Runs
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		turns    []int
		firstErr error
	)
	jobs := make(chan int, opts.Runs)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				g := NewGame(opts.Grid, RunSeed(opts.Seed, i))
				res, err := RunSingle(g, RunOptions{MaxTurns: opts.MaxTurns})

				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				if err == nil && res.Found {
					turns = append(turns, res.Turns)
				}
				mu.Unlock()
				if progress != nil {
					progress()
				}
			}
		}()
	}
	for i := 0; i < opts.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return BatchSummary{}, firstErr
	}
	return summarize(opts.Runs, turns), nil
}

func summarize(runs int, turns []int) BatchSummary {
	sum := BatchSummary{Runs: runs, Found: len(turns)}
	if runs > 0 {
		sum.FoundRate = float64(len(turns)) / float64(runs)
	}
	if len(turns) == 0 {
		return sum
	}
	sort.Ints(turns)
	total := 0
	for _, t := range turns {
		total += t
	}
	sum.AvgTurns = float64(total) / float64(len(turns))
	sum.MinTurns = turns[0]
	sum.MaxTurns = turns[len(turns)-1]
	if mid := len(turns) / 2; len(turns)%2 == 1 {
		sum.MedianTurns = float64(turns[mid])
	} else {
		sum.MedianTurns = float64(turns[mid-1]+turns[mid]) / 2
	}
	return sum
}
