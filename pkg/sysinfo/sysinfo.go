// Package sysinfo reports process resource headroom before the probe
// engine fans out one goroutine per candidate.
package sysinfo

import (
	"github.com/shirou/gopsutil/v3/mem"
)

// AvailableMemory returns the bytes of memory currently available to the
// process host.
func AvailableMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}
