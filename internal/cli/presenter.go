package cli

import (
	"fmt"
	"io"

	"github.com/agbru/samplecalc/internal/calculator"
	"github.com/agbru/samplecalc/internal/driver"
	"github.com/agbru/samplecalc/internal/format"
	"github.com/agbru/samplecalc/internal/ui"
)

// CLIPresenter implements driver.Presenter for plain console output.
// Headers are styled only when the active theme has colors.
type CLIPresenter struct{}

// Verify interface compliance.
var _ driver.Presenter = CLIPresenter{}

// PresentSection prints "Testing <title>:", separated from the previous
// section by a blank line.
func (CLIPresenter) PresentSection(title string, index int, out io.Writer) {
	if index > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, ui.RenderHeader(out, FormatSectionTitle(title)))
}

// PresentEvaluation prints "<function>(<n>) = <value>".
func (CLIPresenter) PresentEvaluation(ev driver.Evaluation, out io.Writer) {
	fmt.Fprintf(out, "%s(%d) = %s\n", ev.Function, ev.N, ev.Value)
}

// PresentOperation prints "<x> <symbol> <y> = <value>".
func (CLIPresenter) PresentOperation(res driver.OperationResult, out io.Writer) {
	fmt.Fprintln(out, FormatOperation(res))
}

// FormatSectionTitle returns the header line for a section.
func FormatSectionTitle(title string) string {
	return "Testing " + title + ":"
}

// FormatOperation renders one calculator result. Quotients always carry a
// decimal point; other values use their shortest exact form.
func FormatOperation(res driver.OperationResult) string {
	value := format.FormatNumber(res.Value)
	if res.Step.Op == calculator.OpDivide {
		value = format.FormatQuotient(res.Value)
	}
	return fmt.Sprintf("%s %s %s = %s",
		format.FormatNumber(res.Step.X), res.Step.Op.Symbol(), format.FormatNumber(res.Step.Y), value)
}
