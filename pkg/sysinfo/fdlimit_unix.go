//go:build !windows
// +build !windows

package sysinfo

import (
	"golang.org/x/sys/unix"
)

// FileDescriptorLimit returns the soft limit on open file descriptors.
// Every in-flight probe holds one socket, so an attempt budget above this
// limit will see dial failures unrelated to network conditions.
func FileDescriptorLimit() (uint64, error) {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &limit); err != nil {
		return 0, err
	}
	return limit.Cur, nil
}
