package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/linkchess/pkg"
	"github.com/qnkhuat/linkchess/pkg/gui"
	"golang.org/x/term"
)

func main() {
	cfg, err := pkg.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}
	pkg.InitLog(cfg.LogPath, "CLIENT: ")

	device := pkg.NewDevice(cfg.Name)
	log.Printf("New unit %s", device)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Down when receive killed signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	dial := pkg.NewDialer(cfg, device)
	if cfg.Console || !term.IsTerminal(int(os.Stdin.Fd())) {
		runConsole(ctx, cfg, dial)
		return
	}
	runGUI(ctx, cancel, cfg, dial)
}

func runConsole(ctx context.Context, cfg pkg.Config, dial pkg.Dialer) {
	events := make(chan pkg.Event, gui.EventQueueSize)
	go func() {
		if err := pkg.ReadEvents(os.Stdin, events); err != nil {
			log.Printf("Console input failed: %s", err)
		}
	}()

	runner := pkg.NewRunner(pkg.NewGame(cfg, pkg.NewConsole(os.Stdout), dial), events)
	runner.Debouncer = nil
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Game loop failed: %s", err)
	}
}

func runGUI(ctx context.Context, cancel context.CancelFunc, cfg pkg.Config, dial pkg.Dialer) {
	theme := gui.ThemeBasic
	if cfg.ThemePath != "" {
		t, err := gui.LoadTheme(cfg.ThemePath)
		if err != nil {
			log.Fatalf("Failed to load theme: %s", err)
		}
		theme = t
	}

	view := gui.NewView(theme)
	runner := pkg.NewRunner(pkg.NewGame(cfg, view, dial), view.Events)

	// Down when self-killed
	go func() {
		runner.Run(ctx)
		view.App.Stop()
	}()

	if err := view.App.Run(); err != nil {
		log.Printf("UI stopped: %s", err)
	}
	cancel()
}
