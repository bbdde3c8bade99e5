//go:build windows
// +build windows

package sysinfo

// FileDescriptorLimit returns the per-process handle ceiling. Windows has
// no RLIMIT_NOFILE equivalent, the documented handle limit is used.
func FileDescriptorLimit() (uint64, error) {
	return 16 * 1024 * 1024, nil
}
