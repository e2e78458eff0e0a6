package metrics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"

	apperrors "github.com/agbru/samplecalc/internal/errors"
)

const namespace = "samplecalc"

// Recorder owns the prometheus collectors for one application run.
// All methods are safe on a nil *Recorder and do nothing.
type Recorder struct {
	registry           *prometheus.Registry
	evaluations        *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	operations         *prometheus.CounterVec
	failures           *prometheus.CounterVec
	hostCPU            prometheus.Gauge
	hostMemory         prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, including the Go
// runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Number of numeric function evaluations.",
		}, []string{"function"}),
		evaluationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating numeric functions.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}, []string{"function"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculator_operations_total",
			Help:      "Number of calculator operations attempted.",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculator_failures_total",
			Help:      "Number of calculator operations that returned an error, by kind.",
		}, []string{"op", "kind"}),
		hostCPU: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "cpu_percent",
			Help:      "Host-wide CPU usage at the end of the run.",
		}),
		hostMemory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "memory_percent",
			Help:      "Host-wide memory usage at the end of the run.",
		}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		r.evaluations,
		r.evaluationDuration,
		r.operations,
		r.failures,
		r.hostCPU,
		r.hostMemory,
	)
	return r
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveEvaluation records one evaluation of function taking d.
func (r *Recorder) ObserveEvaluation(function string, d time.Duration) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(function).Inc()
	r.evaluationDuration.WithLabelValues(function).Observe(d.Seconds())
}

// ObserveOperation records one calculator operation and, when err is
// non-nil, a failure classified by error kind.
func (r *Recorder) ObserveOperation(op string, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(op).Inc()
	if err != nil {
		r.failures.WithLabelValues(op, errorKind(err)).Inc()
	}
}

// ObserveHost sets the host usage gauges, both in percent.
func (r *Recorder) ObserveHost(cpuPercent, memPercent float64) {
	if r == nil {
		return
	}
	r.hostCPU.Set(cpuPercent)
	r.hostMemory.Set(memPercent)
}

func errorKind(err error) string {
	var (
		domainErr     apperrors.DomainError
		validationErr apperrors.ValidationError
	)
	switch {
	case errors.As(err, &domainErr):
		return "domain"
	case errors.As(err, &validationErr):
		return "validation"
	default:
		return "other"
	}
}

// WriteText writes every gathered metric family to w in the prometheus
// text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
