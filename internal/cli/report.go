package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/samplecalc/internal/driver"
	"github.com/agbru/samplecalc/internal/format"
	"github.com/agbru/samplecalc/internal/metrics"
	"github.com/agbru/samplecalc/internal/sysmon"
	"github.com/agbru/samplecalc/internal/ui"
)

// RunReport gathers what DisplayRunStats prints.
type RunReport struct {
	Summary driver.Summary
	Elapsed time.Duration
	// Before and After bracket the run.
	Before, After metrics.MemorySnapshot
	Host          sysmon.Stats
}

// DisplayRunStats prints a short run report: what completed, how long it
// took and what the heap and host looked like afterwards.
func DisplayRunStats(report RunReport, out io.Writer) {
	fmt.Fprintf(out, "\n%sRun Stats:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Evaluations:     %d\n", report.Summary.Evaluations)
	fmt.Fprintf(out, "  Operations:      %d\n", report.Summary.Operations)
	fmt.Fprintf(out, "  Duration:        %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(report.Elapsed), ui.ColorReset())
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(report.After.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(report.After.AllocatedSince(report.Before)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", report.After.NumGC-report.Before.NumGC)
	for _, timing := range report.Summary.Timings {
		if len(timing.Durations) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-17s%s%s%s\n", timing.Function+":", ui.ColorPrimary(), ui.RenderDurationSparkline(timing.Durations), ui.ColorReset())
	}
	if report.Host.MemTotal > 0 {
		fmt.Fprintf(out, "  Host memory:     %s / %s (%.1f%%)\n",
			format.FormatBytes(report.Host.MemUsed), format.FormatBytes(report.Host.MemTotal), report.Host.MemPercent)
	}
	if report.Host.LogicalCPUs > 0 {
		fmt.Fprintf(out, "  Host CPU:        %.1f%% of %d cores\n", report.Host.CPUPercent, report.Host.LogicalCPUs)
	}
}
