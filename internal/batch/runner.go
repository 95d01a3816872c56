// Package batch draws many independent sample streams concurrently.
package batch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"randist/domain/core"
	"randist/internal/catalog"
	"randist/internal/errors"
	"randist/internal/logger"
	"randist/ports"
)

// blockSize is how many draws happen between cancellation checks
const blockSize = 1024

// Job describes one batch run. A single stream is seeded with Seed itself;
// with more, stream i is seeded with Derive(Seed, i).
type Job struct {
	Engine       string
	Distribution string
	Params       map[string]string
	Seed         uint32
	Streams      int
	PerStream    int
	Concurrency  int // streams sampled at once; zero means all of them
}

// Result holds the samples of every stream, indexed by stream
type Result struct {
	RunID    core.RunID
	Job      Job
	Seeds    []uint32
	Samples  [][]float64
	Digest   core.SampleDigest
	Duration time.Duration
}

// Runner executes jobs. Every stream gets its own generator and its own
// distribution, so no sampling state is shared between goroutines.
type Runner struct {
	streams ports.StreamPort
	log     *logger.Logger
}

// NewRunner creates a runner drawing generators from streams
func NewRunner(streams ports.StreamPort, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{streams: streams, log: log}
}

// Validate checks the job before any stream starts
func (j Job) Validate() error {
	if j.Streams <= 0 {
		return errors.InvalidArgument("streams must be positive", "streams")
	}
	if j.PerStream < 0 {
		return errors.InvalidArgument("samples per stream must not be negative", "per_stream")
	}
	if j.Concurrency < 0 {
		return errors.InvalidArgument("concurrency must not be negative", "concurrency")
	}
	if _, err := catalog.Lookup(j.Distribution); err != nil {
		return err
	}
	return nil
}

// Run samples every stream of job. The output depends only on the job, never
// on scheduling.
func (r *Runner) Run(ctx context.Context, job Job) (*Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   core.NewRunID(),
		Job:     job,
		Seeds:   make([]uint32, job.Streams),
		Samples: make([][]float64, job.Streams),
	}
	log := r.log.With("run_id", res.RunID, "distribution", job.Distribution, "params_hash", core.ComputeParamsHash(job.Params))

	limit := job.Concurrency
	if limit == 0 || limit > job.Streams {
		limit = job.Streams
	}
	sem := semaphore.NewWeighted(int64(limit))

	log.Info("batch started", "streams", job.Streams, "per_stream", job.PerStream, "concurrency", limit)
	start := time.Now()

	group, gctx := errgroup.WithContext(ctx)
	for i := 0; i < job.Streams; i++ {
		seed := job.Seed
		if job.Streams > 1 {
			seed = r.streams.Derive(job.Seed, i)
		}
		res.Seeds[i] = seed

		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release(1)

			samples, err := r.stream(gctx, job, seed)
			if err != nil {
				return errors.Wrapf(err, "stream %d", i)
			}
			// each goroutine owns its slot
			res.Samples[i] = samples
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Error("batch failed", "err", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Warn("batch cancelled", "err", err)
		return nil, err
	}

	res.Duration = time.Since(start)
	res.Digest = core.ComputeSampleDigest(res.Samples)
	log.Info("batch finished", "duration", res.Duration, "digest", res.Digest)
	return res, nil
}

func (r *Runner) stream(ctx context.Context, job Job, seed uint32) ([]float64, error) {
	gen, err := r.streams.Stream(ctx, job.Engine, seed)
	if err != nil {
		return nil, err
	}
	s, err := catalog.New(job.Distribution, gen, job.Params)
	if err != nil {
		return nil, err
	}

	out := make([]float64, job.PerStream)
	for i := range out {
		if i%blockSize == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		out[i] = s.Sample()
	}
	return out, nil
}

// Flatten concatenates the streams of a result in stream order
func (res *Result) Flatten() []float64 {
	n := 0
	for _, s := range res.Samples {
		n += len(s)
	}
	out := make([]float64, 0, n)
	for _, s := range res.Samples {
		out = append(out, s...)
	}
	return out
}
