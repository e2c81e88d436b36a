// Package bench measures shareable cells under configurable contention.
package bench

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/killercup/shareable"
	"github.com/killercup/shareable/log"
	"golang.org/x/sync/errgroup"
)

// payload is the value type driven through Object scenarios. Echo always
// equals Seq, so a worker that reads a snapshot where they differ has
// caught a torn value.
type payload struct {
	Seq  uint64
	Echo uint64
}

// Runner executes contention scenarios.
type Runner struct {
	config *Config
}

func NewRunner(config *Config) *Runner {
	return &Runner{config: config}
}

func (r *Runner) String() string {
	return "bench"
}

// Run validates the configuration and executes the scenario.
func (r *Runner) Run() (*Result, error) {
	cfg := r.config
	if err := cfg.Parse(); err != nil {
		return nil, fmt.Errorf("bench config: %w", err)
	}

	log.Info(r, "Running scenario", "kind", cfg.Kind, "cells", cfg.Cells,
		"workers", cfg.Workers, "ops", cfg.Ops, "set_ratio", cfg.SetRatio)

	var timings []time.Duration
	var err error

	start := time.Now()
	switch cfg.Kind {
	case KindScalar, KindUnshared:
		timings, err = r.runScalar()
	case KindObject:
		timings, err = r.runObject()
	}
	elapsed := time.Since(start)

	if err != nil {
		return nil, err
	}

	log.Debug(r, "Scenario finished", "elapsed", elapsed)

	return &Result{
		Kind:    cfg.Kind,
		Workers: cfg.Workers,
		Ops:     cfg.Ops,
		Elapsed: elapsed,
		Worker:  timings,
	}, nil
}

// runScalar drives Cell[uint64] lineages. The unshared kind runs the one
// permitted worker directly on the original handles; otherwise every
// worker gets its own duplicate of every cell, minted here while the
// cells are still owned by this goroutine.
func (r *Runner) runScalar() ([]time.Duration, error) {
	cfg := r.config

	cells := make([]*shareable.Cell[uint64], cfg.Cells)
	for i := range cells {
		cells[i] = shareable.New(cfg.Seed + uint64(i))
	}

	handles := make([][]*shareable.Cell[uint64], cfg.Workers)
	for w := range handles {
		handles[w] = make([]*shareable.Cell[uint64], len(cells))
		for i, c := range cells {
			if cfg.Kind == KindUnshared {
				handles[w][i] = c
			} else {
				handles[w][i] = c.Dup()
			}
		}
	}

	timings := make([]time.Duration, cfg.Workers)
	g := new(errgroup.Group)
	for w := 0; w < cfg.Workers; w++ {
		hs := handles[w]
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(w)))
		g.Go(func() error {
			begin := time.Now()
			for i := 0; i < cfg.Ops; i++ {
				h := hs[rng.IntN(len(hs))]
				if rng.Float64() < cfg.SetRatio {
					h.Set(rng.Uint64())
				} else {
					_ = h.Get()
				}
			}
			timings[w] = time.Since(begin)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return timings, nil
}

// runObject drives Object[payload] lineages and verifies on every read
// that the snapshot came out whole.
func (r *Runner) runObject() ([]time.Duration, error) {
	cfg := r.config

	cells := make([]*shareable.Object[payload], cfg.Cells)
	for i := range cells {
		seq := cfg.Seed + uint64(i)
		cells[i] = shareable.NewObject(payload{Seq: seq, Echo: seq})
	}

	handles := make([][]*shareable.Object[payload], cfg.Workers)
	for w := range handles {
		handles[w] = make([]*shareable.Object[payload], len(cells))
		for i, c := range cells {
			handles[w][i] = c.Dup()
		}
	}

	timings := make([]time.Duration, cfg.Workers)
	g := new(errgroup.Group)
	for w := 0; w < cfg.Workers; w++ {
		hs := handles[w]
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(w)))
		g.Go(func() error {
			begin := time.Now()
			for i := 0; i < cfg.Ops; i++ {
				h := hs[rng.IntN(len(hs))]
				if rng.Float64() < cfg.SetRatio {
					seq := rng.Uint64()
					h.Set(payload{Seq: seq, Echo: seq})
				} else {
					p := h.Get()
					if p.Seq != p.Echo {
						return fmt.Errorf("torn snapshot: seq=%d echo=%d", p.Seq, p.Echo)
					}
				}
			}
			timings[w] = time.Since(begin)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return timings, nil
}
