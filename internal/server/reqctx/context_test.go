package reqctx

import (
	"net/http/httptest"
	"testing"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "ipv6 remote addr", remoteAddr: "[::1]:8080", want: "::1"},
		{name: "x-forwarded-for single", remoteAddr: "10.0.0.1:80", xff: "203.0.113.7", want: "203.0.113.7"},
		{name: "x-forwarded-for chain", remoteAddr: "10.0.0.1:80", xff: "203.0.113.7, 10.0.0.2", want: "203.0.113.7"},
		{name: "x-real-ip", remoteAddr: "10.0.0.1:80", xri: "198.51.100.9", want: "198.51.100.9"},
		{name: "xff wins over x-real-ip", remoteAddr: "10.0.0.1:80", xff: "203.0.113.7", xri: "198.51.100.9", want: "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := t.Context()
	ctx = WithClientIP(ctx, "192.0.2.1")
	ctx = WithUserAgent(ctx, "test-agent")
	ctx = WithCountryCode(ctx, "IN")
	ctx = WithRequestID(ctx, "req-1")
	if ClientIP(ctx) != "192.0.2.1" {
		t.Error("ClientIP mismatch")
	}
	if UserAgent(ctx) != "test-agent" {
		t.Error("UserAgent mismatch")
	}
	if CountryCode(ctx) != "IN" {
		t.Error("CountryCode mismatch")
	}
	if RequestID(ctx) != "req-1" {
		t.Error("RequestID mismatch")
	}
	if SessionID(ctx) != 0 {
		t.Error("SessionID should default to zero")
	}
}
