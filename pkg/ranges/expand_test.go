package ranges

import (
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name      string
		cidrs     []string
		wantCount int
		wantErr   bool
		validate  func(t *testing.T, ips []string)
	}{
		{
			name:      "single /31",
			cidrs:     []string{"198.51.100.4/31"},
			wantCount: 2,
			validate: func(t *testing.T, ips []string) {
				if ips[0] != "198.51.100.4" || ips[1] != "198.51.100.5" {
					t.Errorf("unexpected expansion: %v", ips)
				}
			},
		},
		{
			name:      "network and broadcast included",
			cidrs:     []string{"192.0.2.0/29"},
			wantCount: 8,
			validate: func(t *testing.T, ips []string) {
				if ips[0] != "192.0.2.0" {
					t.Errorf("expected network address first, got %s", ips[0])
				}
				if ips[len(ips)-1] != "192.0.2.7" {
					t.Errorf("expected broadcast address last, got %s", ips[len(ips)-1])
				}
			},
		},
		{
			name:      "multiple blocks keep input order",
			cidrs:     []string{"203.0.113.0/30", "192.0.2.0/30"},
			wantCount: 8,
			validate: func(t *testing.T, ips []string) {
				if ips[0] != "203.0.113.0" || ips[4] != "192.0.2.0" {
					t.Errorf("blocks expanded out of order: %v", ips)
				}
			},
		},
		{
			name:      "prefix size /20",
			cidrs:     []string{"173.245.48.0/20"},
			wantCount: 4096,
		},
		{
			name:    "invalid block discards the batch",
			cidrs:   []string{"192.0.2.0/30", "not-a-cidr", "203.0.113.0/30"},
			wantErr: true,
		},
		{
			name:    "ipv6 block rejected",
			cidrs:   []string{"2606:4700::/120"},
			wantErr: true,
		},
		{
			name:      "empty input",
			cidrs:     nil,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ips, err := Expand(tt.cidrs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected ParseError, got %T", err)
				}
				if ips != nil {
					t.Errorf("expected no partial expansion, got %d addresses", len(ips))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if len(ips) != tt.wantCount {
				t.Errorf("expected %d addresses, got %d", tt.wantCount, len(ips))
			}
			if tt.validate != nil {
				tt.validate(t, ips)
			}
		})
	}
}

func TestExpandNamesOffendingBlock(t *testing.T) {
	_, err := Expand([]string{"192.0.2.0/30", "10.0.0.0/33"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.CIDR != "10.0.0.0/33" {
		t.Errorf("expected offending block in error, got %q", parseErr.CIDR)
	}
}
