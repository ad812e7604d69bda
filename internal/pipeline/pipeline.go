// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"bartseq-core/tagger"

	"bartseq/internal/fastq"
)

// Config controls the tagging pipeline.
type Config struct {
	Threads int // number of worker goroutines (0 = all CPUs)
}

// ForEachRead streams reads from readFiles through tg across a worker pool
// and calls visit for every tagged read (order not guaranteed; reads are
// independent). Statistics are sharded per worker and merged, so tg should
// be constructed without internal stats. Returns the merged statistics, the
// number of reads processed, and the first error encountered.
func ForEachRead(
	ctx context.Context,
	cfg Config,
	readFiles []string,
	tg *tagger.Tagger,
	visit func(tagger.TaggedRead) error,
) (*tagger.Stats, int, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	jobs := make(chan fastq.Record, threads*2)
	results := make(chan tagger.TaggedRead, threads*2)

	// Workers
	shards := make([]*tagger.Stats, threads)
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		shard := tagger.NewStats()
		shards[w] = shard
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					read := tg.TagInto(shard, rec.Header, rec.Seq, rec.Qual)
					select {
					case results <- read:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		verr  error
		total int
		cwg   sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for read := range results {
			if verr != nil {
				continue
			}
			if err := visit(read); err != nil {
				verr = err
				continue
			}
			total++
		}
	}()

	// Feed
	var ferr error
feed:
	for _, path := range readFiles {
		rch, ech := fastq.Stream(ctx, path)
		for rec := range rch {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- rec:
			}
		}
		// Keep scanning other files; first error will be returned.
		if err := <-ech; err != nil && ferr == nil {
			ferr = err
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	stats := tagger.NewStats()
	for _, s := range shards {
		stats.Merge(s)
	}

	if ctx.Err() != nil {
		return stats, total, ctx.Err()
	}
	if ferr != nil {
		return stats, total, ferr
	}
	return stats, total, verr
}
