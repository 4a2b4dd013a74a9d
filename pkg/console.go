package pkg

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/qnkhuat/linkchess/pkg/engine"
)

var (
	menuColor   = color.New(color.FgCyan, color.Bold)
	cursorColor = color.New(color.FgBlue)
	hintColor   = color.New(color.FgMagenta)
	errorColor  = color.New(color.FgRed)
	checkColor  = color.New(color.FgYellow, color.Bold)
	resultColor = color.New(color.FgGreen, color.Bold)
)

// Console renders the session as plain lines, for pipes and terminals
// without a pty.
type Console struct {
	Out io.Writer
	mu  sync.Mutex
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) DrawMenu(title string, items []string, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	menuColor.Fprintf(c.Out, "== %s ==\n", title)
	for i, item := range items {
		marker := " "
		if i == index {
			marker = ">"
		}
		fmt.Fprintf(c.Out, "%s %s\n", marker, item)
	}
}

func (c *Console) DrawBoard(b *engine.Board, toMove engine.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.Out, b.String())
	fmt.Fprintf(c.Out, "%s to move\n", toMove)
}

func (c *Console) DrawCursor(prev, cur engine.Square) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cursorColor.Fprintf(c.Out, "cursor %s\n", cur)
}

func (c *Console) DrawSelection(selected engine.Square, hints []engine.Square) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if selected == engine.NoSquare {
		return
	}
	names := make([]string, len(hints))
	for i, sq := range hints {
		names[i] = sq.String()
	}
	hintColor.Fprintf(c.Out, "selected %s: %s\n", selected, strings.Join(names, " "))
}

func (c *Console) DrawStatus(msg Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg {
	case StatusNone:
		return
	case StatusCheck:
		checkColor.Fprintln(c.Out, msg)
	case StatusCheckmate, StatusStalemate:
		resultColor.Fprintln(c.Out, msg)
	case StatusInvalidMove, StatusKingInCheck, StatusLinkFailed, StatusLinkError, StatusDesync:
		errorColor.Fprintln(c.Out, msg)
	default:
		fmt.Fprintln(c.Out, msg)
	}
}

var consoleTokens = map[string]Event{
	"up":    EventUp,
	"w":     EventUp,
	"k":     EventUp,
	"down":  EventDown,
	"s":     EventDown,
	"j":     EventDown,
	"left":  EventLeft,
	"a":     EventLeft,
	"h":     EventLeft,
	"right": EventRight,
	"d":     EventRight,
	"l":     EventRight,
	"enter": EventConfirm,
	"ok":    EventConfirm,
	"back":  EventBack,
	"esc":   EventBack,
	"reset": EventReset,
}

// ParseEvent maps one console token to an event.
func ParseEvent(token string) (Event, bool) {
	ev, ok := consoleTokens[strings.ToLower(token)]
	return ev, ok
}

// ReadEvents turns whitespace separated tokens from r into events, an empty
// line being a confirm. out is closed when r is exhausted.
func ReadEvents(r io.Reader, out chan<- Event) error {
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			out <- EventConfirm
			continue
		}
		for _, token := range tokens {
			ev, ok := ParseEvent(token)
			if !ok {
				log.Printf("Unknown console input %q", token)
				continue
			}
			out <- ev
		}
	}
	return scanner.Err()
}
