// Package log defines standard attribute keys for feature selection runs.
//
// The keys follow a hierarchical naming convention (e.g. "selection.round",
// "data.features") so that log records from different components can be
// filtered and joined consistently.

package log

// Run and Operation Context
const (
	// RunIDKey identifies a single selection run. Every record emitted while
	// the run is in progress carries it.
	RunIDKey = "run.id"

	// ComponentKey identifies which package emitted the record.
	// Examples: "selection", "evaluate"
	ComponentKey = "ml.component"

	// OperationKey specifies the operation being performed.
	// Standard values: "select", "evaluate", "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ModelNameKey identifies the model used by an evaluator.
	// Examples: "LinearRegression"
	ModelNameKey = "model.name"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features in the current subset.
	FeaturesKey = "data.features"

	// TargetKey names the dependent variable.
	TargetKey = "data.target"
)

// Selection Progress
const (
	// RoundKey is the 1-based index of a selection round.
	RoundKey = "selection.round"

	// RoundsKey is the upper bound on the number of rounds (n - 1).
	RoundsKey = "selection.rounds"

	// DirectionKey records whether fitness is minimized or maximized.
	DirectionKey = "selection.direction"

	// DroppedFeatureKey names the feature removed in a committed round.
	DroppedFeatureKey = "selection.dropped"

	// CandidateKey names the feature left out by a candidate evaluation.
	// The baseline (nothing left out) is logged with an empty value.
	CandidateKey = "selection.candidate"

	// FitnessKey records a fitness value returned by the evaluator.
	FitnessKey = "selection.fitness"

	// PreviousFitnessKey records the running best before a committed round.
	PreviousFitnessKey = "selection.previous"

	// DeltaKey records the improvement of a committed round (positive is better).
	DeltaKey = "selection.delta"

	// EvaluationsKey counts evaluator calls made so far.
	EvaluationsKey = "selection.evaluations"
)

// Metrics and Timing
const (
	// MetricKey names the scoring metric used by an evaluator.
	MetricKey = "metrics.name"

	// FoldsKey is the number of cross-validation folds used by an evaluator.
	FoldsKey = "metrics.folds"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	// ErrorKey carries the error attached to a record.
	ErrorKey = "error"

	// StacktraceKey contains stack trace information for debugging.
	// Populated from cockroachdb/errors safe details when available.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants.
const (
	OperationSelect   = "select"
	OperationEvaluate = "evaluate"
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationScore    = "score"
)
