//go:generate mockgen -source=driver.go -destination=mocks/mock_presenter.go -package=mocks

package driver

import (
	"context"
	"io"
	"math/big"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/samplecalc/internal/calculator"
	apperrors "github.com/agbru/samplecalc/internal/errors"
	"github.com/agbru/samplecalc/internal/format"
	"github.com/agbru/samplecalc/internal/logging"
	"github.com/agbru/samplecalc/internal/metrics"
	"github.com/agbru/samplecalc/internal/numeric"
)

const tracerName = "github.com/agbru/samplecalc/internal/driver"

// Evaluation is the outcome of one function call in a sweep.
type Evaluation struct {
	Function string
	N        int64
	Value    *big.Int
	Duration time.Duration
}

// OperationResult is the outcome of one successful calculator step.
type OperationResult struct {
	Step  calculator.Step
	Value float64
}

// Summary counts what a run completed.
type Summary struct {
	Evaluations int
	Operations  int
	// Result is the calculator's result when the run stopped.
	Result float64
	// Timings holds the evaluation durations of each sweep, in plan order.
	Timings []SweepTiming
}

// SweepTiming lists the evaluation durations of one sweep by input n.
type SweepTiming struct {
	Function  string
	Durations []time.Duration
}

// Presenter renders results as the driver produces them.
type Presenter interface {
	// PresentSection opens a section. index counts sections from 0.
	PresentSection(title string, index int, out io.Writer)
	// PresentEvaluation shows one sweep result.
	PresentEvaluation(ev Evaluation, out io.Writer)
	// PresentOperation shows one calculator result.
	PresentOperation(res OperationResult, out io.Writer)
}

// Driver executes plans against a function registry.
type Driver struct {
	factory   numeric.Factory
	presenter Presenter
	recorder  *metrics.Recorder
	logger    logging.Logger
	tracer    trace.Tracer
}

// Option configures a Driver.
type Option func(*Driver)

// WithRecorder records evaluations and operations into r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(d *Driver) { d.recorder = r }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(d *Driver) { d.tracer = t }
}

// New creates a Driver resolving sweep functions through factory.
func New(factory numeric.Factory, presenter Presenter, opts ...Option) *Driver {
	d := &Driver{factory: factory, presenter: presenter}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logging.NewNopLogger()
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(tracerName)
	}
	return d
}

// Run executes plan sequentially, presenting each result before computing
// the next. The first calculator error stops the run; results presented
// before it stay written to out. Cancellation of ctx is honored between
// entries.
func (d *Driver) Run(ctx context.Context, plan Plan, out io.Writer) (Summary, error) {
	ctx, span := d.tracer.Start(ctx, "driver.Run")
	defer span.End()

	var summary Summary
	err := d.run(ctx, plan, out, &summary)
	span.SetAttributes(
		attribute.Int("samplecalc.evaluations", summary.Evaluations),
		attribute.Int("samplecalc.operations", summary.Operations),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return summary, err
}

func (d *Driver) run(ctx context.Context, plan Plan, out io.Writer, summary *Summary) error {
	section := 0
	for _, sweep := range plan.Sweeps {
		if err := d.runSweep(ctx, sweep, section, out, summary); err != nil {
			return err
		}
		section++
	}
	if len(plan.Steps) == 0 {
		return nil
	}
	return d.runSteps(ctx, plan.calculatorTitle(), plan.Steps, section, out, summary)
}

func (d *Driver) runSweep(ctx context.Context, sweep Sweep, section int, out io.Writer, summary *Summary) error {
	fn, err := d.factory.Get(sweep.Function)
	if err != nil {
		return apperrors.WrapError(err, "sweep %q", sweep.Title)
	}

	ctx, span := d.tracer.Start(ctx, "driver.Sweep", trace.WithAttributes(
		attribute.String("samplecalc.function", fn.Name()),
		attribute.Int64("samplecalc.count", sweep.Count),
	))
	defer span.End()

	d.logger.Debug("sweep started", logging.String("function", fn.Name()), logging.Int("count", int(sweep.Count)))
	d.presenter.PresentSection(sweep.Title, section, out)

	summary.Timings = append(summary.Timings, SweepTiming{Function: fn.Name()})
	timing := &summary.Timings[len(summary.Timings)-1]
	for n := int64(0); n < sweep.Count; n++ {
		if err := ctx.Err(); err != nil {
			return apperrors.WrapError(err, "sweep %q interrupted at n=%d", sweep.Title, n)
		}
		start := time.Now()
		value := fn.Eval(n)
		elapsed := time.Since(start)

		d.recorder.ObserveEvaluation(fn.Name(), elapsed)
		d.presenter.PresentEvaluation(Evaluation{Function: fn.Name(), N: n, Value: value, Duration: elapsed}, out)
		timing.Durations = append(timing.Durations, elapsed)
		summary.Evaluations++
	}
	return nil
}

func (d *Driver) runSteps(ctx context.Context, title string, steps []calculator.Step, section int, out io.Writer, summary *Summary) error {
	ctx, span := d.tracer.Start(ctx, "driver.Calculator", trace.WithAttributes(
		attribute.Int("samplecalc.steps", len(steps)),
	))
	defer span.End()

	calc := calculator.New()
	d.presenter.PresentSection(title, section, out)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return apperrors.WrapError(err, "calculator interrupted at step %d", i)
		}
		value, err := calc.Apply(step.Op, step.X, step.Y)
		d.recorder.ObserveOperation(step.Op.String(), err)
		summary.Result = calc.Result()
		if err != nil {
			d.logger.Error("calculator step failed", err,
				logging.String("op", step.Op.String()), logging.Float64("x", step.X), logging.Float64("y", step.Y))
			return apperrors.WrapError(err, "%s %s %s",
				format.FormatNumber(step.X), step.Op.Symbol(), format.FormatNumber(step.Y))
		}
		d.presenter.PresentOperation(OperationResult{Step: step, Value: value}, out)
		summary.Operations++
	}
	return nil
}
