package transport

import (
	"errors"
	"log"
	"net"
	"sync"
	"time"

	"github.com/qnkhuat/linkchess/pkg/engine"
)

const (
	ConnTimeout    = 30 * time.Second
	readBufferSize = 64
)

var ErrNotConnected = errors.New("transport: link is closed")

// Wired frames moves over a byte stream. A reader goroutine appends incoming
// bytes to a buffer which TryReceive consumes one frame at a time.
type Wired struct {
	Conn net.Conn

	LastTransfer time.Time
	Terminated   bool

	pending []byte
	mu      sync.Mutex
}

func NewWired(conn net.Conn) *Wired {
	w := newWired(conn)
	go w.handleRead()
	return w
}

func newWired(conn net.Conn) *Wired {
	return &Wired{Conn: conn, LastTransfer: time.Now()}
}

func (w *Wired) handleRead() {
	buf := make([]byte, readBufferSize)
	for {
		n, err := w.Conn.Read(buf)
		if n > 0 {
			w.ingest(buf[:n])
		}
		if err != nil {
			if !w.closed() {
				log.Printf("Wired link read failed: %s", err)
			}
			w.Close()
			return
		}
	}
}

func (w *Wired) ingest(p []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	w.LastTransfer = time.Now()
}

// Buffered returns the number of received bytes not yet consumed.
func (w *Wired) Buffered() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.pending)
}

// TryReceive consumes a frame once FrameSize bytes are buffered. A frame with
// an unexpected tag or square is dropped whole.
func (w *Wired) TryReceive() (engine.Move, bool) {
	w.mu.Lock()
	if len(w.pending) < FrameSize {
		w.mu.Unlock()
		return engine.Move{}, false
	}
	frame := make([]byte, FrameSize)
	copy(frame, w.pending)
	w.pending = w.pending[FrameSize:]
	w.mu.Unlock()

	msg, err := DecodeMove(frame)
	if err != nil {
		log.Printf("Dropped frame % x: %s", frame, err)
		return engine.Move{}, false
	}
	return msg.Move(), true
}

func (w *Wired) Send(m engine.Move) error {
	if w.closed() {
		return ErrNotConnected
	}

	err := w.Conn.SetWriteDeadline(time.Now().Add(ConnTimeout))
	if err != nil {
		w.Close()
		return err
	}

	_, err = w.Conn.Write(NewMessageMove(m).Encode())
	if err != nil {
		w.Close()
		return err
	}

	w.mu.Lock()
	w.LastTransfer = time.Now()
	w.mu.Unlock()

	return w.Conn.SetWriteDeadline(time.Time{})
}

func (w *Wired) closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.Terminated
}

func (w *Wired) Close() error {
	w.mu.Lock()
	if w.Terminated {
		w.mu.Unlock()
		return nil
	}
	w.Terminated = true
	w.mu.Unlock()

	if w.Conn == nil {
		return nil
	}
	return w.Conn.Close()
}
