package ranges

import (
	stringsutil "github.com/projectdiscovery/utils/strings"
)

// FilterPrefixes drops every address whose decimal-dotted representation
// starts with one of the skip prefixes. The match is textual, not
// CIDR-aware: the prefix "1" matches both 1.2.3.4 and 19.0.0.1. An empty
// prefix list returns the input unchanged, preserving order.
func FilterPrefixes(ips []string, skipPrefixes []string) []string {
	if len(skipPrefixes) == 0 {
		return ips
	}

	filtered := make([]string, 0, len(ips))
	for _, ip := range ips {
		if stringsutil.HasPrefixAny(ip, skipPrefixes...) {
			continue
		}
		filtered = append(filtered, ip)
	}
	return filtered
}
