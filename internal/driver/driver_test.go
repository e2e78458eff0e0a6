package driver_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/samplecalc/internal/calculator"
	"github.com/agbru/samplecalc/internal/driver"
	"github.com/agbru/samplecalc/internal/driver/mocks"
	apperrors "github.com/agbru/samplecalc/internal/errors"
	"github.com/agbru/samplecalc/internal/metrics"
	"github.com/agbru/samplecalc/internal/numeric"
)

// evalMatcher matches an Evaluation by function, input and value, ignoring
// the measured duration.
type evalMatcher struct {
	function string
	n        int64
	value    int64
}

func (m evalMatcher) Matches(x interface{}) bool {
	ev, ok := x.(driver.Evaluation)
	return ok && ev.Function == m.function && ev.N == m.n && ev.Value.Cmp(big.NewInt(m.value)) == 0
}

func (m evalMatcher) String() string {
	return fmt.Sprintf("%s(%d) = %d", m.function, m.n, m.value)
}

func evaluation(function string, n, value int64) gomock.Matcher {
	return evalMatcher{function: function, n: n, value: value}
}

// linePresenter is a minimal Presenter writing one line per call.
type linePresenter struct{}

func (linePresenter) PresentSection(title string, index int, out io.Writer) {
	fmt.Fprintf(out, "[%d %s]\n", index, title)
}

func (linePresenter) PresentEvaluation(ev driver.Evaluation, out io.Writer) {
	fmt.Fprintf(out, "%s(%d)=%s\n", ev.Function, ev.N, ev.Value)
}

func (linePresenter) PresentOperation(res driver.OperationResult, out io.Writer) {
	fmt.Fprintf(out, "%s=%g\n", res.Step.Op, res.Value)
}

var _ driver.Presenter = linePresenter{}

func TestDefaultPlan(t *testing.T) {
	t.Parallel()
	plan := driver.DefaultPlan()

	require.Len(t, plan.Sweeps, 2)
	assert.Equal(t, driver.Sweep{Title: "factorial", Function: "factorial", Count: 6}, plan.Sweeps[0])
	assert.Equal(t, driver.Sweep{Title: "Fibonacci", Function: "fibonacci", Count: 10}, plan.Sweeps[1])
	assert.Equal(t, "Calculator", plan.CalculatorTitle)
	assert.Equal(t, []calculator.Step{
		{Op: calculator.OpAdd, X: 5, Y: 3},
		{Op: calculator.OpSubtract, X: 10, Y: 4},
		{Op: calculator.OpMultiply, X: 6, Y: 7},
		{Op: calculator.OpDivide, X: 20, Y: 4},
	}, plan.Steps)
}

func TestRun_DefaultPlanCallOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)
	var out bytes.Buffer

	var calls []*gomock.Call
	calls = append(calls, presenter.EXPECT().PresentSection("factorial", 0, &out))
	for n, want := range []int64{1, 1, 2, 6, 24, 120} {
		calls = append(calls, presenter.EXPECT().PresentEvaluation(evaluation("factorial", int64(n), want), &out))
	}
	calls = append(calls, presenter.EXPECT().PresentSection("Fibonacci", 1, &out))
	for n, want := range []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34} {
		calls = append(calls, presenter.EXPECT().PresentEvaluation(evaluation("fibonacci", int64(n), want), &out))
	}
	calls = append(calls, presenter.EXPECT().PresentSection("Calculator", 2, &out))
	for _, res := range []driver.OperationResult{
		{Step: calculator.Step{Op: calculator.OpAdd, X: 5, Y: 3}, Value: 8},
		{Step: calculator.Step{Op: calculator.OpSubtract, X: 10, Y: 4}, Value: 6},
		{Step: calculator.Step{Op: calculator.OpMultiply, X: 6, Y: 7}, Value: 42},
		{Step: calculator.Step{Op: calculator.OpDivide, X: 20, Y: 4}, Value: 5},
	} {
		calls = append(calls, presenter.EXPECT().PresentOperation(res, &out))
	}
	gomock.InOrder(calls...)

	d := driver.New(numeric.NewDefaultFactory(), presenter, driver.WithTracer(noop.NewTracerProvider().Tracer("test")))
	summary, err := d.Run(context.Background(), driver.DefaultPlan(), &out)

	require.NoError(t, err)
	assert.Equal(t, 16, summary.Evaluations)
	assert.Equal(t, 4, summary.Operations)
	assert.Equal(t, 5.0, summary.Result)
}

func TestRun_DivideByZeroStopsRun(t *testing.T) {
	t.Parallel()
	plan := driver.Plan{
		Steps: []calculator.Step{
			{Op: calculator.OpAdd, X: 1, Y: 2},
			{Op: calculator.OpDivide, X: 20, Y: 0},
			{Op: calculator.OpMultiply, X: 2, Y: 2},
		},
	}
	var out bytes.Buffer
	recorder := metrics.NewRecorder()
	d := driver.New(numeric.NewDefaultFactory(), linePresenter{}, driver.WithRecorder(recorder))

	summary, err := d.Run(context.Background(), plan, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDivideByZero))
	assert.Equal(t, "20 / 0: cannot divide by zero", err.Error())
	assert.Equal(t, apperrors.ExitErrorDomain, apperrors.ExitCodeFor(err))
	assert.Equal(t, "[0 Calculator]\nadd=3\n", out.String())
	assert.Equal(t, 1, summary.Operations)
	assert.Equal(t, 3.0, summary.Result, "result keeps the last successful value")

	const expected = `
# HELP samplecalc_calculator_failures_total Number of calculator operations that returned an error, by kind.
# TYPE samplecalc_calculator_failures_total counter
samplecalc_calculator_failures_total{kind="domain",op="divide"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected),
		"samplecalc_calculator_failures_total"))
}

func TestRun_SweepRecordsEvaluations(t *testing.T) {
	t.Parallel()
	plan := driver.Plan{Sweeps: []driver.Sweep{{Title: "factorial", Function: "factorial", Count: 3}}}
	var out bytes.Buffer
	recorder := metrics.NewRecorder()
	d := driver.New(numeric.NewDefaultFactory(), linePresenter{}, driver.WithRecorder(recorder))

	summary, err := d.Run(context.Background(), plan, &out)

	require.NoError(t, err)
	assert.Equal(t, "[0 factorial]\nfactorial(0)=1\nfactorial(1)=1\nfactorial(2)=2\n", out.String())
	assert.Equal(t, 3, summary.Evaluations)
	require.Len(t, summary.Timings, 1)
	assert.Equal(t, "factorial", summary.Timings[0].Function)
	assert.Len(t, summary.Timings[0].Durations, 3)

	const expected = `
# HELP samplecalc_evaluations_total Number of numeric function evaluations.
# TYPE samplecalc_evaluations_total counter
samplecalc_evaluations_total{function="factorial"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected),
		"samplecalc_evaluations_total"))
}

func TestRun_UnknownFunction(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)
	plan := driver.Plan{Sweeps: []driver.Sweep{{Title: "Lucas", Function: "lucas", Count: 3}}}

	_, err := driver.New(numeric.NewDefaultFactory(), presenter).Run(context.Background(), plan, io.Discard)

	require.Error(t, err)
	var configErr apperrors.ConfigError
	assert.True(t, errors.As(err, &configErr))
	assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer

	summary, err := driver.New(numeric.NewDefaultFactory(), linePresenter{}).Run(ctx, driver.DefaultPlan(), &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, apperrors.ExitErrorCanceled, apperrors.ExitCodeFor(err))
	assert.Equal(t, "[0 factorial]\n", out.String())
	assert.Zero(t, summary.Evaluations)
	require.Len(t, summary.Timings, 1)
	assert.Empty(t, summary.Timings[0].Durations)
}

func TestRun_CancelBetweenEntries(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)

	gomock.InOrder(
		presenter.EXPECT().PresentSection("factorial", 0, gomock.Any()),
		presenter.EXPECT().PresentEvaluation(evaluation("factorial", 0, 1), gomock.Any()).
			Do(func(driver.Evaluation, io.Writer) { cancel() }),
	)

	summary, err := driver.New(numeric.NewDefaultFactory(), presenter).Run(ctx, driver.DefaultPlan(), io.Discard)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, summary.Evaluations)
}

func TestRun_EmptyPlan(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)

	summary, err := driver.New(numeric.NewDefaultFactory(), presenter).Run(context.Background(), driver.Plan{}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, driver.Summary{}, summary)
}

func TestRun_CustomFunction(t *testing.T) {
	t.Parallel()
	factory := numeric.NewDefaultFactory()
	require.NoError(t, factory.Register(numeric.FuncOf("square", func(n int64) *big.Int {
		return big.NewInt(n * n)
	})))
	plan := driver.Plan{Sweeps: []driver.Sweep{{Title: "squares", Function: "square", Count: 4}}}
	var out bytes.Buffer

	_, err := driver.New(factory, linePresenter{}).Run(context.Background(), plan, &out)

	require.NoError(t, err)
	assert.Equal(t, "[0 squares]\nsquare(0)=0\nsquare(1)=1\nsquare(2)=4\nsquare(3)=9\n", out.String())
}
