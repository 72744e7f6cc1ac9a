package kaprekar

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultSurveyConcurrency = 4

// SurveyReport summarises the sequences of every start value accepted by the engine.
type SurveyReport struct {
	// Histogram maps a number of natural steps to the count of start values converging in that many steps.
	Histogram       map[int]int
	NonConverged    []string
	Total           int
	MaxNaturalSteps int
}

type survey struct {
	mu         sync.Mutex
	report     *SurveyReport
	concurrent int
}

func (s *survey) record(seq Sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report.Total++
	if !seq.Converged() {
		s.report.NonConverged = append(s.report.NonConverged, seq.Start())

		return
	}

	natural := seq.ConvergedAt()
	s.report.Histogram[natural]++

	if natural > s.report.MaxNaturalSteps {
		s.report.MaxNaturalSteps = natural
	}
}

func generateStarts(ctx context.Context, eng *Engine, output chan<- string) error {
	for value := 0; value <= maxValue; value++ {
		start := pad(value)
		if !eng.accepts(start) {
			continue
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "generator:")
		case output <- start:
		}
	}

	return nil
}

func (s *survey) consume(ctx context.Context, goIdx int, eng *Engine, input <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d:", goIdx)
		case start, ok := <-input:
			if !ok {
				return nil
			}

			seq, err := eng.RunToFixpoint(start)
			if err != nil && !errors.Is(err, ErrNotConverged) && !errors.Is(err, ErrDegenerate) {
				return errors.Wrapf(err, "go routine %d:", goIdx)
			}

			s.record(seq)
		}
	}
}

// Survey runs every start value accepted by the engine to its fixpoint and aggregates the results.
// Sequences are computed by a pool of workers, engine options must be safe for concurrent use.
func (e *Engine) Survey(ctx context.Context, opts ...SurveyOption) (*SurveyReport, error) {
	srv := &survey{
		concurrent: defaultSurveyConcurrency,
		report: &SurveyReport{
			Histogram: make(map[int]int),
		},
	}

	for _, opt := range opts {
		opt(srv)
	}

	if srv.concurrent < 1 {
		srv.concurrent = 1
	}

	errGrp, dCtx := errgroup.WithContext(ctx)
	// one goroutine generates the start values, the others consume them
	errGrp.SetLimit(srv.concurrent + 1)

	starts := make(chan string)

	errGrp.Go(func() error {
		defer close(starts)

		return generateStarts(dCtx, e, starts)
	})

	for goIdx := 0; goIdx < srv.concurrent; goIdx++ {
		localGoIdx := goIdx

		errGrp.Go(func() error {
			return srv.consume(dCtx, localGoIdx, e, starts)
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, errors.Wrap(err, "unable to survey start values")
	}

	sort.Strings(srv.report.NonConverged)

	e.logger.Info("survey finished",
		zap.Int("total", srv.report.Total),
		zap.Int("max_steps", srv.report.MaxNaturalSteps),
		zap.Int("non_converged", len(srv.report.NonConverged)),
	)

	return srv.report, nil
}
