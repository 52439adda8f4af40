package validation

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for validation runs.
//
// Objects and durations are recorded for every validated object, nested ones
// included. Validation errors and logic errors are recorded once per root run.
// A nil *Metrics records nothing.
type Metrics struct {
	objectsTotal     *prometheus.CounterVec
	objectDuration   *prometheus.HistogramVec
	errorsTotal      *prometheus.CounterVec
	logicErrorsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		objectsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_objects_total",
				Help: "Total number of validated objects",
			},
			[]string{"class"},
		),
		objectDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "validation_object_duration_seconds",
				Help:    "Duration of object validation in seconds, nested objects included",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"class"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_errors_total",
				Help: "Total number of validation errors by key",
			},
			[]string{"key"},
		),
		logicErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "validation_logic_errors_total",
				Help: "Total number of validation configuration errors by reason",
			},
			[]string{"reason"},
		),
	}

	for _, c := range []prometheus.Collector{m.objectsTotal, m.objectDuration, m.errorsTotal, m.logicErrorsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNewMetrics is NewMetrics that panics when registration fails.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	m, err := NewMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) observeObject(class string, d time.Duration) {
	if m == nil {
		return
	}
	m.objectsTotal.WithLabelValues(class).Inc()
	m.objectDuration.WithLabelValues(class).Observe(d.Seconds())
}

func (m *Metrics) observeErrors(errs Errors) {
	if m == nil {
		return
	}
	for _, err := range errs {
		m.errorsTotal.WithLabelValues(err.Key()).Inc()
	}
}

func (m *Metrics) observeLogicError(err error) {
	if m == nil {
		return
	}
	m.logicErrorsTotal.WithLabelValues(logicReason(err)).Inc()
}

var logicReasons = []struct {
	err    error
	reason string
}{
	{ErrMissingAccessor, "missing_accessor"},
	{ErrMissingMapping, "missing_mapping"},
	{ErrDuplicateMapping, "duplicate_mapping"},
	{ErrMaxDepthExceeded, "max_depth_exceeded"},
	{ErrInvalidObject, "invalid_object"},
	{ErrInvalidConstraint, "invalid_constraint"},
	{ErrIncompatibleValue, "incompatible_value"},
	{ErrNoValidator, "no_validator"},
}

// logicReason maps err to a stable label value. Errors that are not logic
// errors, such as failures returned by getters, are "other".
func logicReason(err error) string {
	for _, r := range logicReasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}
