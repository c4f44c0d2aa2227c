package ipgeo

import (
	"testing"
)

func TestCountryCodeLocal(t *testing.T) {
	// Local IPs never reach the MMDB reader, so a nil reader is fine here.
	c := &Checker{}
	tests := []struct {
		ip   string
		want string
	}{
		// Loopback
		{"127.0.0.1", "local"},
		{"::1", "local"},
		// Private
		{"10.0.0.1", "local"},
		{"192.168.1.1", "local"},
		{"172.16.0.1", "local"},
		// Unspecified
		{"0.0.0.0", "local"},
		{"::", "local"},
		// Link-local
		{"169.254.1.1", "local"},
		{"fe80::1", "local"},
		// Invalid
		{"not-an-ip", ""},
	}
	for _, tt := range tests {
		got := c.CountryCode(tt.ip)
		if got != tt.want {
			t.Errorf("CountryCode(%q) = %q, want %q", tt.ip, got, tt.want)
		}
	}
}
