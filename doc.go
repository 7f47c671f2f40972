// Package ffselect performs greedy backward feature elimination for Go.
//
// Given a dataset, a target column and a list of candidate features, ffselect
// repeatedly removes the single feature whose removal most improves a
// user-supplied fitness function, and stops when no single removal helps.
// The fitness function is any model fit the caller wants to plug in; the
// library only orders the calls and compares the numbers.
//
// # Installation
//
//	go get github.com/YuminosukeSato/ffselect
//
// # Quick Start
//
// Selecting features for an ordinary least squares model scored by
// cross-validated MSE:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/ffselect/dataset"
//	    "github.com/YuminosukeSato/ffselect/evaluate"
//	    "github.com/YuminosukeSato/ffselect/selection"
//	)
//
//	func main() {
//	    frame, err := dataset.FromColumns(
//	        []string{"x1", "x2", "noise", "y"},
//	        [][]float64{x1, x2, noise, y},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    ev := evaluate.NewLinearEvaluator(evaluate.WithFolds(5))
//	    sel := selection.NewSelector[*dataset.Frame](ev,
//	        selection.WithDirection(ev.Direction()),
//	        selection.WithVerbose(os.Stdout),
//	    )
//	    res, err := sel.Select(frame, "y", frame.Names())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.Features, res.Fitness)
//	}
//
// Any function can serve as the fitness:
//
//	fit := selection.EvaluatorFunc[MyData](func(d MyData, features []string, target string) (float64, error) {
//	    return trainAndScore(d, features, target)
//	})
//	loss, kept, err := selection.MinimalSubset(data, "label", fit, candidates)
//
// # Packages
//
//   - selection: the backward elimination core, progress reporting, YAML config
//   - evaluate: a reference evaluator fitting OLS or Passive-Aggressive regression on a Frame
//   - dataset: named-column frames backed by gonum matrices
//   - linear: ordinary least squares and Passive-Aggressive regression
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - preprocessing: StandardScaler
//   - visualize: fitness history plots (gonum/plot)
//   - core/model: estimator interfaces and base state
//   - core/parallel: parallel row processing utilities
//   - pkg/errors: typed errors and warnings on cockroachdb/errors
//   - pkg/log: structured logging on zerolog
//
// # License
//
// ffselect is released under the MIT License.
package ffselect
