package pkg

import (
	"flag"
	"fmt"
	"io"

	"github.com/qnkhuat/linkchess/pkg/engine"
	"github.com/qnkhuat/linkchess/pkg/transport"
)

type Config struct {
	LogPath string

	Mode           transport.Mode
	Listen         string
	Connect        string
	RadioPort      int
	RadioBroadcast string
	TrustPeer      bool

	StartBoard *engine.Board
	StartColor engine.Color

	ThemePath string
	Name      string
	Console   bool
}

// ParseFlags reads the chessterm command line. Usage goes to out.
func ParseFlags(args []string, out io.Writer) (Config, error) {
	var (
		cfg  Config
		mode string
		fen  string
	)

	fs := flag.NewFlagSet("chessterm", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.LogPath, "log", "./log", "path to log file")
	fs.StringVar(&mode, "mode", transport.ModeWired.String(), "connection mode highlighted at start: wired, radio or local")
	fs.StringVar(&cfg.Listen, "listen", fmt.Sprintf(":%d", transport.DefaultPort), "wired link address to wait on (host:port or socket path)")
	fs.StringVar(&cfg.Connect, "connect", "", "wired link address of the peer; when set, dial instead of listening")
	fs.IntVar(&cfg.RadioPort, "radio-port", transport.DefaultRadioPort, "UDP port of the radio link")
	fs.StringVar(&cfg.RadioBroadcast, "radio-broadcast", "", "broadcast address of the radio link (default 255.255.255.255)")
	fs.BoolVar(&cfg.TrustPeer, "trust-peer", false, "apply moves from the peer without checking them")
	fs.StringVar(&fen, "fen", "", "start position in FEN")
	fs.StringVar(&cfg.ThemePath, "theme", "", "path to a JSON theme file")
	fs.StringVar(&cfg.Name, "name", "", "device nickname (generated when empty)")
	fs.BoolVar(&cfg.Console, "console", false, "use the line console instead of the terminal UI")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	m, err := transport.ParseMode(mode)
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = m

	if fen != "" {
		cfg.StartBoard, cfg.StartColor, err = engine.ParseFEN(fen)
		if err != nil {
			return Config{}, fmt.Errorf("invalid -fen: %w", err)
		}
	}
	if cfg.RadioPort <= 0 || cfg.RadioPort > 65535 {
		return Config{}, fmt.Errorf("invalid -radio-port %d", cfg.RadioPort)
	}

	return cfg, nil
}

// NewDialer opens links the way cfg describes. Radio packets are tagged with
// the device id.
func NewDialer(cfg Config, device Device) Dialer {
	return func(mode transport.Mode) (transport.Transport, error) {
		switch mode {
		case transport.ModeWired:
			var (
				w   *transport.Wired
				err error
			)
			if cfg.Connect != "" {
				w, err = transport.DialWired(cfg.Connect)
			} else {
				w, err = transport.ListenWired(cfg.Listen)
			}
			if err != nil {
				return nil, err
			}
			return w, nil
		case transport.ModeRadio:
			r, err := transport.ListenRadio(cfg.RadioPort, cfg.RadioBroadcast, device.ID)
			if err != nil {
				return nil, err
			}
			return r, nil
		case transport.ModeLocal:
			return transport.NewLocal(), nil
		default:
			return nil, transport.ErrUnknownMode
		}
	}
}

// NewGame builds a session and controller from cfg.
func NewGame(cfg Config, r Renderer, dial Dialer) *TurnController {
	s := NewSession()
	s.MenuIndex = modeIndex(cfg.Mode)
	s.Mode = cfg.Mode

	tc := NewTurnController(s, r, dial)
	tc.TrustPeer = cfg.TrustPeer
	tc.StartBoard = cfg.StartBoard
	tc.StartColor = cfg.StartColor
	return tc
}
