// Command dskit-bench drives a seeded insert/lookup/delete workload
// against one of the map implementations and reports throughput.
//
// Usage:
//
//	dskit-bench --impl treemap --count 1000000 --seed 42 --delete-fraction 0.25 --verify
package main

import (
	"fmt"
	"iter"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dskit/bst"
	"github.com/katalvlaran/dskit/symtab"
	"github.com/katalvlaran/dskit/treemap"
)

// benchMap is the surface the workload exercises. Ordered implementations
// additionally expose their keys for the verification walk.
type benchMap interface {
	Put(key string, val int)
	Get(key string) (int, error)
	Delete(key string) error
	Len() int
}

type orderedKeys interface {
	Keys() iter.Seq[string]
}

type config struct {
	impl           string
	count          int
	seed           int64
	deleteFraction float64
	verify         bool
}

func newBenchMap(impl string) (benchMap, error) {
	switch impl {
	case "treemap":
		return treemap.New[string, int](), nil
	case "bst":
		return bst.New[string, int](), nil
	case "probing":
		return symtab.NewProbing[string, int](), nil
	default:
		return nil, fmt.Errorf("unknown impl %q (want treemap, bst or probing)", impl)
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config{}
	cmd := &cobra.Command{
		Use:   "dskit-bench",
		Short: "Benchmark the dskit map implementations under a seeded workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.impl, "impl", "treemap", "map implementation to drive (treemap|bst|probing)")
	cmd.Flags().IntVar(&cfg.count, "count", 1_000_000, "number of keys to insert")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 42, "workload seed, same seed means same workload")
	cmd.Flags().Float64Var(&cfg.deleteFraction, "delete-fraction", 0.25, "fraction of inserted keys to delete afterwards")
	cmd.Flags().BoolVar(&cfg.verify, "verify", false, "cross-check the final contents against a reference map")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("bench failed")
	}
}

func run(log zerolog.Logger, cfg config) error {
	if cfg.count <= 0 {
		return fmt.Errorf("count must be positive, got %d", cfg.count)
	}
	if cfg.deleteFraction < 0 || cfg.deleteFraction > 1 {
		return fmt.Errorf("delete-fraction must be in [0, 1], got %g", cfg.deleteFraction)
	}
	m, err := newBenchMap(cfg.impl)
	if err != nil {
		return err
	}
	log.Info().
		Str("impl", cfg.impl).
		Str("count", humanize.Comma(int64(cfg.count))).
		Int64("seed", cfg.seed).
		Float64("delete_fraction", cfg.deleteFraction).
		Msg("starting workload")

	rng := rand.New(rand.NewSource(cfg.seed))
	keys := make([]string, cfg.count)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%016x", rng.Int63())
	}

	// Insert phase.
	since := time.Now()
	for i, k := range keys {
		m.Put(k, i)
	}
	report(log, "insert", cfg.count, since)

	// Lookup phase, in a shuffled order so the access pattern does not
	// mirror the insert order.
	perm := rng.Perm(cfg.count)
	since = time.Now()
	misses := 0
	for _, i := range perm {
		if _, err = m.Get(keys[i]); err != nil {
			misses++
		}
	}
	report(log, "lookup", cfg.count, since)
	if misses > 0 {
		return fmt.Errorf("lookup phase lost %d of %d keys", misses, cfg.count)
	}

	// Delete phase.
	deletes := int(float64(cfg.count) * cfg.deleteFraction)
	since = time.Now()
	for _, i := range perm[:deletes] {
		if err = m.Delete(keys[i]); err != nil {
			return fmt.Errorf("delete %q: %w", keys[i], err)
		}
	}
	if deletes > 0 {
		report(log, "delete", deletes, since)
	}

	if cfg.verify {
		if err = verify(m, keys, perm, deletes); err != nil {
			return err
		}
		log.Info().Int("len", m.Len()).Msg("verification passed")
	}

	log.Info().Str("len", humanize.Comma(int64(m.Len()))).Msg("done")

	return nil
}

// report logs one phase's throughput.
func report(log zerolog.Logger, phase string, ops int, since time.Time) {
	elapsed := time.Since(since)
	log.Info().
		Str("phase", phase).
		Dur("elapsed", elapsed).
		Str("ops_per_sec", humanize.Comma(int64(float64(ops)/elapsed.Seconds()))).
		Msg("phase complete")
}

// verify rebuilds the expected contents in a plain Go map and checks the
// implementation agrees, including sorted-order iteration for the
// ordered structures.
func verify(m benchMap, keys []string, perm []int, deletes int) error {
	ref := make(map[string]int, len(keys))
	for i, k := range keys {
		ref[k] = i
	}
	for _, i := range perm[:deletes] {
		delete(ref, keys[i])
	}

	if m.Len() != len(ref) {
		return fmt.Errorf("length mismatch: impl has %d keys, reference has %d", m.Len(), len(ref))
	}
	for k, want := range ref {
		got, err := m.Get(k)
		if err != nil {
			return fmt.Errorf("get %q: %w", k, err)
		}
		if got != want {
			return fmt.Errorf("value mismatch for %q: got %d, want %d", k, got, want)
		}
	}

	if ord, ok := m.(orderedKeys); ok {
		prev := ""
		first := true
		for k := range ord.Keys() {
			if !first && k <= prev {
				return fmt.Errorf("iteration order broken: %q after %q", k, prev)
			}
			prev, first = k, false
		}
	}

	return nil
}
