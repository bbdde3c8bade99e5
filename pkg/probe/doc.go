// Package probe measures TLS reachability of candidate addresses.
//
// The Engine dials every candidate concurrently (one goroutine per
// address, no concurrency cap), performs a hostname-verified TLS
// handshake, and records the elapsed time of each success. Rank orders
// the successes by latency and truncates to the requested count.
//
// Probe failures are routine and absorbed: refused or timed-out
// candidates simply produce no result.
package probe
