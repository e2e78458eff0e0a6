package metrics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/samplecalc/internal/errors"
)

func TestNewRecorder(t *testing.T) {
	r := NewRecorder()
	if r == nil {
		t.Fatal("NewRecorder returned nil")
	}
	if r.Registry() == nil {
		t.Error("Registry should be initialized")
	}
}

// Two recorders must not clash, which they would on the global registry.
func TestNewRecorder_Independent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.ObserveOperation("add", nil)

	if got := testutil.ToFloat64(b.operations.WithLabelValues("add")); got != 0 {
		t.Errorf("second recorder saw %v add operations, want 0", got)
	}
}

func TestRecorder_ObserveEvaluation(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 6; i++ {
		r.ObserveEvaluation("factorial", time.Microsecond)
	}
	r.ObserveEvaluation("fibonacci", time.Microsecond)

	if got := testutil.ToFloat64(r.evaluations.WithLabelValues("factorial")); got != 6 {
		t.Errorf("factorial evaluations = %v, want 6", got)
	}
	if got := testutil.ToFloat64(r.evaluations.WithLabelValues("fibonacci")); got != 1 {
		t.Errorf("fibonacci evaluations = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.evaluationDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestRecorder_ObserveOperation(t *testing.T) {
	r := NewRecorder()
	r.ObserveOperation("add", nil)
	r.ObserveOperation("divide", nil)
	r.ObserveOperation("divide", apperrors.ErrDivideByZero)
	r.ObserveOperation("bogus", apperrors.ValidationError{Field: "op", Message: "unknown"})
	r.ObserveOperation("divide", errors.New("unexpected"))

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"add ops", testutil.ToFloat64(r.operations.WithLabelValues("add")), 1},
		{"divide ops", testutil.ToFloat64(r.operations.WithLabelValues("divide")), 3},
		{"divide domain failures", testutil.ToFloat64(r.failures.WithLabelValues("divide", "domain")), 1},
		{"divide other failures", testutil.ToFloat64(r.failures.WithLabelValues("divide", "other")), 1},
		{"validation failures", testutil.ToFloat64(r.failures.WithLabelValues("bogus", "validation")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRecorder_WriteText(t *testing.T) {
	r := NewRecorder()
	r.ObserveEvaluation("fibonacci", time.Millisecond)
	r.ObserveOperation("divide", apperrors.ErrDivideByZero)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	body := buf.String()

	for _, want := range []string{
		`samplecalc_evaluations_total{function="fibonacci"} 1`,
		`samplecalc_calculator_failures_total{kind="domain",op="divide"} 1`,
		"samplecalc_evaluation_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

func TestRecorder_ObserveHost(t *testing.T) {
	r := NewRecorder()
	r.ObserveHost(12.5, 40)
	r.ObserveHost(25, 41.5)

	if got := testutil.ToFloat64(r.hostCPU); got != 25 {
		t.Errorf("host cpu gauge = %v, want 25", got)
	}
	if got := testutil.ToFloat64(r.hostMemory); got != 41.5 {
		t.Errorf("host memory gauge = %v, want 41.5", got)
	}
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	defer func() {
		if p := recover(); p != nil {
			t.Errorf("nil Recorder panicked: %v", p)
		}
	}()
	r.ObserveEvaluation("factorial", time.Second)
	r.ObserveOperation("add", nil)
	r.ObserveHost(12.5, 40)
	if err := r.WriteText(&bytes.Buffer{}); err != nil {
		t.Errorf("nil WriteText error: %v", err)
	}
	if r.Registry() != nil {
		t.Error("nil Recorder should have nil Registry")
	}
}
