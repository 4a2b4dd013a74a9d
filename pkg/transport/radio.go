package transport

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/qnkhuat/linkchess/pkg/engine"
)

const (
	DefaultRadioPort = 1999
	RadioQueueSize   = 10

	// PacketSize is the fixed payload length: tag, from, to, one reserved
	// byte and the 16-byte sender id.
	PacketSize = 20
)

type radioPacket struct {
	Tag      MessageType
	From     uint8
	To       uint8
	Reserved uint8
	Sender   [16]byte
}

func encodePacket(m engine.Move, sender uuid.UUID) []byte {
	msg := NewMessageMove(m)
	p := radioPacket{Tag: msg.Type(), From: msg.From, To: msg.To, Sender: sender}

	var buf bytes.Buffer
	buf.Grow(PacketSize)
	// Writes into a bytes.Buffer cannot fail for a fixed-size struct.
	_ = binary.Write(&buf, binary.BigEndian, &p)
	return buf.Bytes()
}

func decodePacket(b []byte) (MessageMove, uuid.UUID, error) {
	if len(b) != PacketSize {
		return MessageMove{}, uuid.Nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(b))
	}

	var p radioPacket
	if err := binary.Read(bytes.NewReader(b), binary.BigEndian, &p); err != nil {
		return MessageMove{}, uuid.Nil, err
	}

	msg, err := DecodeMove([]byte{byte(p.Tag), p.From, p.To})
	if err != nil {
		return MessageMove{}, uuid.Nil, err
	}
	return msg, uuid.UUID(p.Sender), nil
}

// Radio broadcasts moves as datagrams. Delivery is fire-and-forget: no
// acknowledgement, no retry. Packets carrying our own id are ignored.
type Radio struct {
	ID uuid.UUID

	conn net.PacketConn
	dest net.Addr
	in   chan engine.Move

	terminated bool
	mu         sync.Mutex
}

// ListenRadio binds the radio port and broadcasts to it. An empty broadcast
// address means the limited broadcast address 255.255.255.255.
func ListenRadio(port int, broadcast string, id uuid.UUID) (*Radio, error) {
	ip := net.IPv4bcast
	if broadcast != "" {
		ip = net.ParseIP(broadcast)
		if ip == nil {
			return nil, fmt.Errorf("invalid broadcast address %q", broadcast)
		}
	}

	conn, err := net.ListenPacket("udp4", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to open radio on port %d: %w", port, err)
	}

	log.Printf("Radio %s listening on %s, broadcasting to %s:%d", id, conn.LocalAddr(), ip, port)
	return NewRadio(conn, &net.UDPAddr{IP: ip, Port: port}, id), nil
}

func NewRadio(conn net.PacketConn, dest net.Addr, id uuid.UUID) *Radio {
	r := &Radio{
		ID:   id,
		conn: conn,
		dest: dest,
		in:   make(chan engine.Move, RadioQueueSize),
	}
	go r.handleRead()
	return r
}

func (r *Radio) handleRead() {
	buf := make([]byte, 512)
	for {
		n, addr, err := r.conn.ReadFrom(buf)
		if err != nil {
			if !r.closed() {
				log.Printf("Radio read failed: %s", err)
			}
			return
		}

		msg, sender, err := decodePacket(buf[:n])
		if err != nil {
			log.Printf("Dropped packet from %s: %s", addr, err)
			continue
		}
		if sender == r.ID {
			continue
		}

		select {
		case r.in <- msg.Move():
		default:
			log.Printf("Dropped packet from %s: receive queue full", addr)
		}
	}
}

func (r *Radio) TryReceive() (engine.Move, bool) {
	select {
	case m := <-r.in:
		return m, true
	default:
		return engine.Move{}, false
	}
}

func (r *Radio) Send(m engine.Move) error {
	if r.closed() {
		return ErrNotConnected
	}

	_, err := r.conn.WriteTo(encodePacket(m, r.ID), r.dest)
	return err
}

func (r *Radio) closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.terminated
}

func (r *Radio) Close() error {
	r.mu.Lock()
	if r.terminated {
		r.mu.Unlock()
		return nil
	}
	r.terminated = true
	r.mu.Unlock()

	return r.conn.Close()
}
