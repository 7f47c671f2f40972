// Package selection implements greedy backward feature elimination.
//
// Starting from every candidate feature, each round scores the current set
// (the baseline) and every set with one feature left out, then commits the
// best leave-one-out set if it strictly beats the baseline. The search stops
// at the first round where nothing beats the baseline, or after n-1 rounds.
//
// The model fit is supplied by the caller as an Evaluator; the selector only
// orders calls to it and compares the numbers it returns.
//
//	sel := selection.NewSelector[*dataset.Frame](evaluator,
//	    selection.WithDirection(selection.Maximize),
//	    selection.WithVerbose(os.Stdout),
//	)
//	res, err := sel.Select(frame, "y", frame.Names())
package selection

import (
	"io"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/ffselect/pkg/errors"
	"github.com/YuminosukeSato/ffselect/pkg/log"
)

// Evaluator fits a model of target on the given features and returns its
// fitness. Implementations may be arbitrarily expensive; the selector calls
// them sequentially and never caches results. An error aborts the search and
// is returned to the caller unchanged.
type Evaluator[D any] interface {
	Evaluate(data D, features []string, target string) (float64, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc[D any] func(data D, features []string, target string) (float64, error)

// Evaluate calls f.
func (f EvaluatorFunc[D]) Evaluate(data D, features []string, target string) (float64, error) {
	return f(data, features, target)
}

// Step describes one committed round.
type Step struct {
	Round    int      // 1-based round index
	Rounds   int      // upper bound on rounds, n-1
	Dropped  string   // feature removed this round
	Previous float64  // running best before the round
	Current  float64  // fitness of the new set
	Delta    float64  // improvement, positive is better in either direction
	Features []string // feature set after the removal
}

// Result is the outcome of a selection run.
type Result struct {
	RunID       string
	Target      string
	Direction   Direction
	Initial     []string // candidates after target removal
	Fitness     float64  // fitness of Features
	Features    []string // selected subset, in the original relative order
	Steps       []Step   // committed rounds in order
	Evaluations int      // evaluator calls made
}

// Dropped lists the removed features in the order they were removed.
func (r *Result) Dropped() []string {
	out := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Dropped
	}
	return out
}

// Option configures a Selector.
type Option func(*options)

type options struct {
	direction Direction
	reporters []Reporter
	logger    log.Logger
	verbose   io.Writer
}

// WithDirection sets the fitness direction. The default is Minimize.
func WithDirection(d Direction) Option {
	return func(o *options) {
		o.direction = d
	}
}

// WithReporter adds a callback invoked once per committed round. It may be
// given several times; reporters run in the order they were added.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporters = append(o.reporters, r)
		}
	}
}

// WithVerbose prints one progress line per committed round to w, labelled
// for the configured direction.
func WithVerbose(w io.Writer) Option {
	return func(o *options) {
		o.verbose = w
	}
}

// WithLogger sets the structured logger. The default is log.GetLogger().
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Selector runs backward elimination against a fixed evaluator.
// It holds no per-run state and may be reused.
type Selector[D any] struct {
	evaluator Evaluator[D]
	direction Direction
	reporters []Reporter
	logger    log.Logger
}

// NewSelector creates a Selector calling evaluator.
func NewSelector[D any](evaluator Evaluator[D], opts ...Option) *Selector[D] {
	o := options{direction: Minimize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.GetLogger()
	}
	if o.verbose != nil {
		o.reporters = append(o.reporters, ConsoleReporter(o.verbose, o.direction.Label()))
	}
	return &Selector[D]{
		evaluator: evaluator,
		direction: o.direction,
		reporters: o.reporters,
		logger:    o.logger,
	}
}

// Direction returns the configured fitness direction.
func (s *Selector[D]) Direction() Direction {
	return s.direction
}

// Select removes target from features and runs the elimination.
//
// Candidate order is the order of features and decides ties: the baseline
// wins over any removal with equal fitness, and among removals the earliest
// one in the current set wins. With fewer than two candidates no round runs;
// the candidates are evaluated once and returned as they are.
func (s *Selector[D]) Select(data D, target string, features []string) (*Result, error) {
	if s.evaluator == nil {
		return nil, errors.NewValidationError("evaluator", "must not be nil", nil)
	}
	if !s.direction.valid() {
		return nil, errors.NewValidationError("direction", "unknown direction", int(s.direction))
	}

	current := withoutTarget(features, target)
	n := len(current)
	rounds := max(n-1, 0)

	res := &Result{
		RunID:     uuid.NewString(),
		Target:    target,
		Direction: s.direction,
		Initial:   slices.Clone(current),
	}
	logger := s.logger.With(
		log.ComponentKey, "selection",
		log.RunIDKey, res.RunID,
	)
	logger.Info("Selection started",
		log.OperationKey, log.OperationSelect,
		log.TargetKey, target,
		log.FeaturesKey, n,
		log.RoundsKey, rounds,
		log.DirectionKey, s.direction.String(),
	)
	started := time.Now()

	evaluate := func(round int, subset []string, left string) (float64, error) {
		res.Evaluations++
		fit, err := s.evaluator.Evaluate(data, subset, target)
		if err != nil {
			logger.Error("Evaluation failed", err,
				log.RoundKey, round,
				log.CandidateKey, left,
				log.EvaluationsKey, res.Evaluations,
			)
			return 0, err
		}
		if werr := errors.CheckScalar("selection.evaluate", fit, round); werr != nil {
			logger.Warn("Non-finite fitness",
				log.ErrorKey, werr,
				log.RoundKey, round,
				log.CandidateKey, left,
			)
		}
		logger.Debug("Candidate evaluated",
			log.RoundKey, round,
			log.CandidateKey, left,
			log.FeaturesKey, len(subset),
			log.FitnessKey, fit,
		)
		return fit, nil
	}

	finish := func(fitness float64, subset []string) *Result {
		res.Fitness = fitness
		res.Features = subset
		logger.Info("Selection finished",
			log.FitnessKey, fitness,
			log.FeaturesKey, len(subset),
			log.EvaluationsKey, res.Evaluations,
			log.DurationMsKey, time.Since(started).Milliseconds(),
		)
		return res
	}

	if n < 2 {
		fit, err := evaluate(0, current, "")
		if err != nil {
			return nil, err
		}
		return finish(fit, current), nil
	}

	var best float64
	for round := 1; round <= rounds; round++ {
		baseline, err := evaluate(round, current, "")
		if err != nil {
			return nil, err
		}
		if round == 1 {
			best = baseline
		}

		winner, winnerFit := -1, baseline
		var winnerSet []string
		for j := range current {
			subset := dropAt(current, j)
			fit, err := evaluate(round, subset, current[j])
			if err != nil {
				return nil, err
			}
			if s.direction.Better(fit, winnerFit) {
				winner, winnerFit, winnerSet = j, fit, subset
			}
		}

		if winner < 0 {
			logger.Info("No single removal improves fitness",
				log.RoundKey, round,
				log.FitnessKey, baseline,
			)
			return finish(baseline, current), nil
		}

		step := Step{
			Round:    round,
			Rounds:   rounds,
			Dropped:  current[winner],
			Previous: best,
			Current:  winnerFit,
			Delta:    s.direction.Improvement(best, winnerFit),
			Features: slices.Clone(winnerSet),
		}
		res.Steps = append(res.Steps, step)
		logger.Info("Round committed",
			log.RoundKey, step.Round,
			log.RoundsKey, step.Rounds,
			log.DroppedFeatureKey, step.Dropped,
			log.PreviousFitnessKey, step.Previous,
			log.FitnessKey, step.Current,
			log.DeltaKey, step.Delta,
		)
		for _, report := range s.reporters {
			report(step)
		}

		current, best = winnerSet, winnerFit
	}

	return finish(best, current), nil
}

// MinimalSubset runs a one-off selection and returns the achieved fitness
// and the selected features.
func MinimalSubset[D any](data D, target string, evaluator Evaluator[D], features []string, opts ...Option) (float64, []string, error) {
	res, err := NewSelector(evaluator, opts...).Select(data, target, features)
	if err != nil {
		return 0, nil, err
	}
	return res.Fitness, res.Features, nil
}

// withoutTarget copies features, leaving out every occurrence of target.
func withoutTarget(features []string, target string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f != target {
			out = append(out, f)
		}
	}
	return out
}

// dropAt returns a new slice without the element at index j.
func dropAt(features []string, j int) []string {
	out := make([]string, 0, len(features)-1)
	out = append(out, features[:j]...)
	return append(out, features[j+1:]...)
}
