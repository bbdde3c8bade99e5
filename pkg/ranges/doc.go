// Package ranges turns a provider's published IPv4 address blocks into a
// randomized pool of candidate addresses.
//
// The package provides the candidate-acquisition half of the pipeline:
//   - Client.IPv4Ranges: fetches the current CIDR list from a directory service
//   - Expand: enumerates every address of every block
//   - FilterPrefixes: drops addresses by textual prefix
//   - Sample: draws a bounded random subset for probing
//
// All failures before probing are fatal: a directory error or a single
// malformed block aborts the whole run rather than probing a pool that
// misrepresents the provider's address space.
package ranges
