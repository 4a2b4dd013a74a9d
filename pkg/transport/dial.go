package transport

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"
)

const (
	DefaultPort    = 1998
	connectRetries = 25
	retryDelay     = 250 * time.Millisecond
)

// NetworkAndAddress treats anything that looks like a path as a unix socket
// and everything else as tcp, adding DefaultPort when no port is given.
func NetworkAndAddress(address string) (string, string) {
	var network string
	if strings.ContainsAny(address, `\/`) {
		network = "unix"
	} else {
		network = "tcp"

		if !strings.Contains(address, `:`) {
			address = fmt.Sprintf("%s:%d", address, DefaultPort)
		}
	}

	return network, address
}

// DialWired connects to a listening peer, retrying while it comes up.
func DialWired(address string) (*Wired, error) {
	var (
		network string
		conn    net.Conn
		err     error
	)
	network, address = NetworkAndAddress(address)

	for tries := 0; ; tries++ {
		conn, err = net.DialTimeout(network, address, ConnTimeout)
		if err == nil {
			log.Printf("Connected to %s %s", network, address)
			return NewWired(conn), nil
		}
		if tries >= connectRetries {
			return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
		}
		time.Sleep(retryDelay)
	}
}

// ListenWired waits up to ConnTimeout for a single peer on address.
func ListenWired(address string) (*Wired, error) {
	network, address := NetworkAndAddress(address)

	listener, err := net.Listen(network, address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	defer listener.Close()

	log.Printf("Listening at %s %s", network, address)
	return AcceptWired(listener)
}

type deadliner interface {
	SetDeadline(t time.Time) error
}

func AcceptWired(listener net.Listener) (*Wired, error) {
	if l, ok := listener.(deadliner); ok {
		if err := l.SetDeadline(time.Now().Add(ConnTimeout)); err != nil {
			return nil, err
		}
	}

	conn, err := listener.Accept()
	if err != nil {
		return nil, fmt.Errorf("failed to accept peer: %w", err)
	}
	log.Printf("Peer connected from %s", conn.RemoteAddr())
	return NewWired(conn), nil
}
