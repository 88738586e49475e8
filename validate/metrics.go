package validate

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implements HasValidate or
	//     HasValidateWithContext, "false" if validation was skipped.
	//   - has_error: "true" if validation returned an error.
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "semtype",
		Name:      "validation_calls_total",
		Help:      "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// validationTime records how long validation took, in milliseconds, for
	// values that implement a validation interface. The type label is the Go
	// type name, e.g. semantic.Type[string,email.Kind].
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Namespace: "semtype",
		Name:      "validation_time_millis",
		Help:      "The time it takes to validate, in milliseconds",
		Buckets: []float64{
			0.001, 0.01, 0.1, 1, 5, 10, 25, 50, 100, 250, 500, 1000,
		},
	}, []string{"type", "has_error"})
)

// Pre-create every label combination so the series exist from startup.
func init() {
	for _, canValidate := range []bool{true, false} {
		for _, hasError := range []bool{true, false} {
			validationsTotal.WithLabelValues(strconv.FormatBool(canValidate), strconv.FormatBool(hasError)).Add(0)
		}
	}
}

func recordCall(canValidate bool, err error) {
	validationsTotal.WithLabelValues(strconv.FormatBool(canValidate), strconv.FormatBool(err != nil)).Inc()
}

func recordDuration(typeName string, err error, elapsed time.Duration) {
	validationTime.WithLabelValues(typeName, strconv.FormatBool(err != nil)).
		Observe(float64(elapsed) / float64(time.Millisecond))
}
