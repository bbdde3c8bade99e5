package ranges

import (
	"fmt"
	"net"

	"github.com/projectdiscovery/mapcidr"
)

// Expand enumerates every address of every CIDR block, including the
// network and broadcast addresses. Output preserves the input block order
// with addresses ascending within each block.
//
// Any invalid or non-IPv4 block fails the whole batch with a ParseError:
// a partially expanded pool would misrepresent the provider's address
// space, so nothing is returned in that case.
func Expand(cidrs []string) ([]string, error) {
	var pool []string
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, &ParseError{CIDR: cidr, Err: err}
		}
		if network.IP.To4() == nil {
			return nil, &ParseError{CIDR: cidr, Err: fmt.Errorf("not an IPv4 block")}
		}

		ips, err := mapcidr.IPAddresses(cidr)
		if err != nil {
			return nil, &ParseError{CIDR: cidr, Err: err}
		}
		pool = append(pool, ips...)
	}
	return pool, nil
}
