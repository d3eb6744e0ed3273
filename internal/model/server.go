package model

import (
	"context"
	"net"
)

// SecurityLayer opens listeners, either plain or TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a network server with an explicit lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// Pinger reports whether a backing connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}
