package transport

import (
	"context"
	"net"
	"strconv"
)

// Server defines the interface for transport servers
type Server interface {
	// Run starts the server and blocks until it stops
	Run() error
	// Shutdown gracefully shuts down the server
	Shutdown(context.Context) error
}

// ValidateAddress reports whether addr is a usable "host:port" listen address.
// An empty host (":8080") is allowed.
func ValidateAddress(addr string) bool {
	if addr == "" {
		return false
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}

	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return false
	}

	if host == "" {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return true
	}

	return isValidHostname(host)
}

func isValidHostname(host string) bool {
	if len(host) > 253 {
		return false
	}

	for i, r := range host {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
		case r == '-':
			if i == 0 || i == len(host)-1 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
