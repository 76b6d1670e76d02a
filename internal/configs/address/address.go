// Package address parses server addresses of the form [scheme://]host:port.
package address

import (
	"errors"
	"strings"
)

// Supported schemes.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeGRPC  = "grpc"
)

// ErrUnsupportedScheme is returned for a scheme other than http, https or grpc.
var ErrUnsupportedScheme = errors.New("unsupported address scheme")

// ErrEmpty is returned for an empty address.
var ErrEmpty = errors.New("empty address")

// Address is a scheme and a host:port pair.
type Address struct {
	Scheme  string
	Address string
}

// Parse splits input into scheme and address. The scheme defaults to http.
func Parse(input string) (Address, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Address{}, ErrEmpty
	}

	scheme, addr, found := strings.Cut(input, "://")
	if !found {
		return Address{Scheme: SchemeHTTP, Address: input}, nil
	}

	scheme = strings.ToLower(scheme)
	switch scheme {
	case SchemeHTTP, SchemeHTTPS, SchemeGRPC:
	default:
		return Address{}, ErrUnsupportedScheme
	}
	if addr == "" {
		return Address{}, ErrEmpty
	}
	return Address{Scheme: scheme, Address: strings.TrimSuffix(addr, "/")}, nil
}

// URL returns the base URL of an http or https address.
func (a Address) URL() string {
	return a.Scheme + "://" + a.Address
}

// IsGRPC reports whether the address targets the gRPC listener.
func (a Address) IsGRPC() bool {
	return a.Scheme == SchemeGRPC
}
