package selection

import (
	"fmt"
	"io"

	"github.com/YuminosukeSato/ffselect/pkg/log"
)

// Reporter observes committed rounds. It has no influence on the search.
type Reporter func(Step)

// ConsoleReporter writes one line per committed round:
//
//	[1/2]: feature: b, loss: 1.000000 -> 0.500000 (0.500000)
//
// The value in parentheses is the improvement, positive when fitness got better.
func ConsoleReporter(w io.Writer, label string) Reporter {
	return func(s Step) {
		fmt.Fprintf(w, "[%d/%d]: feature: %s, %s: %.6f -> %.6f (%.6f)\n",
			s.Round, s.Rounds, s.Dropped, label, s.Previous, s.Current, s.Delta)
	}
}

// LogReporter emits each committed round as a structured record at info level.
func LogReporter(logger log.Logger) Reporter {
	return func(s Step) {
		logger.Info("Feature dropped",
			log.RoundKey, s.Round,
			log.RoundsKey, s.Rounds,
			log.DroppedFeatureKey, s.Dropped,
			log.PreviousFitnessKey, s.Previous,
			log.FitnessKey, s.Current,
			log.DeltaKey, s.Delta,
			log.FeaturesKey, len(s.Features),
		)
	}
}

// RecordSteps appends every committed round to dst.
func RecordSteps(dst *[]Step) Reporter {
	return func(s Step) {
		*dst = append(*dst, s)
	}
}
