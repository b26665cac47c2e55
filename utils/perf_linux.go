//go:build linux
// +build linux

package utils

import (
	perf "github.com/hodgesds/perf-utils"
)

/*
KernelCounts runs f under the kernel perf subsystem and reports retired
instructions and CPU cycles. The two counters are collected over separate
invocations of f, so f must be idempotent - intended for pure numerical
kernels.
*/
func KernelCounts(f func() error) (instructions, cycles uint64, err error) {
	var (
		pv *perf.ProfileValue
	)
	if pv, err = perf.CPUInstructions(f); err != nil {
		return
	}
	instructions = pv.Value
	if pv, err = perf.CPUCycles(f); err != nil {
		return
	}
	cycles = pv.Value
	return
}
