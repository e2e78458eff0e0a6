package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agbru/samplecalc/internal/cli"
	"github.com/agbru/samplecalc/internal/config"
	"github.com/agbru/samplecalc/internal/driver"
	apperrors "github.com/agbru/samplecalc/internal/errors"
	"github.com/agbru/samplecalc/internal/format"
	"github.com/agbru/samplecalc/internal/logging"
	"github.com/agbru/samplecalc/internal/metrics"
	"github.com/agbru/samplecalc/internal/numeric"
	"github.com/agbru/samplecalc/internal/sysmon"
	"github.com/agbru/samplecalc/internal/ui"
)

// Application represents the samplecalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   numeric.Factory
	Plan      driver.Plan
	Presenter driver.Presenter
	Logger    logging.Logger
	ErrWriter io.Writer

	// isTerminal reports whether w is an interactive terminal.
	isTerminal func(w io.Writer) bool
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom function registry for the application.
func WithFactory(f numeric.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithPlan replaces the default plan.
func WithPlan(p driver.Plan) AppOption {
	return func(a *Application) { a.Plan = p }
}

// WithPresenter replaces the console presenter.
func WithPresenter(p driver.Presenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// WithLogger replaces the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name, as in os.Args.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		Plan:       driver.DefaultPlan(),
		Presenter:  cli.CLIPresenter{},
		ErrWriter:  errWriter,
		isTerminal: isTerminal,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = numeric.NewDefaultFactory()
	}

	programName := "samplecalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the plan, writing results to out and diagnostics to the
// error writer, and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(a.Config.Level())
	ui.InitTheme(a.Config.NoColor || !a.isTerminal(out))

	logger := a.Logger
	if logger == nil {
		logger = logging.NewConsoleLogger(a.ErrWriter, a.Config.Level(), !ui.ColorsEnabled())
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	recorder := metrics.NewRecorder()
	d := driver.New(a.Factory, a.Presenter, driver.WithRecorder(recorder), driver.WithLogger(logger))

	before := metrics.ReadMemory()
	start := time.Now()
	summary, err := d.Run(ctx, a.Plan, out)
	elapsed := time.Since(start)
	after := metrics.ReadMemory()

	logger.Debug("run complete",
		logging.Int("evaluations", summary.Evaluations),
		logging.Int("operations", summary.Operations),
		logging.String("duration", format.FormatExecutionDuration(elapsed)),
		logging.Uint64("allocated_bytes", after.AllocatedSince(before)),
	)

	if a.Config.ShowMetrics {
		host, herr := sysmon.Sample(context.WithoutCancel(ctx))
		if herr != nil {
			logger.Debug("host sample incomplete", logging.Err(herr))
		}
		recorder.ObserveHost(host.CPUPercent, host.MemPercent)
		cli.DisplayRunStats(cli.RunReport{
			Summary: summary,
			Elapsed: elapsed,
			Before:  before,
			After:   after,
			Host:    host,
		}, a.ErrWriter)
		if werr := recorder.WriteText(a.ErrWriter); werr != nil {
			logger.Error("writing metrics failed", werr)
		}
	}

	return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
