// Package sysmon samples host-wide resource usage for the run report.
package sysmon

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of host resource usage.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0, since the previous sample
	MemPercent  float64 // 0.0 .. 100.0
	MemUsed     uint64  // bytes
	MemTotal    uint64  // bytes
	LogicalCPUs int
}

// Sample collects a host snapshot. CPU usage is measured since the previous
// call (interval 0), so the first sample of a process may read 0.
// Fields the host cannot report stay zero; their errors are joined.
func Sample(ctx context.Context) (Stats, error) {
	var (
		s    Stats
		errs []error
	)
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = append(errs, fmt.Errorf("cpu usage: %w", err))
	} else if len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if n, err := cpu.CountsWithContext(ctx, true); err != nil {
		errs = append(errs, fmt.Errorf("cpu count: %w", err))
	} else {
		s.LogicalCPUs = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("virtual memory: %w", err))
	} else if vm != nil {
		s.MemPercent = vm.UsedPercent
		s.MemUsed = vm.Used
		s.MemTotal = vm.Total
	}
	return s, errors.Join(errs...)
}
