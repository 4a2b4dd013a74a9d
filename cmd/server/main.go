package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/linkchess/pkg"
)

// defaultCommand is the chessterm binary installed next to this one.
func defaultCommand() string {
	exe, err := os.Executable()
	if err != nil {
		return "chessterm"
	}
	return filepath.Join(filepath.Dir(exe), "chessterm")
}

func main() {
	logPath := flag.String("log", "./server.log", "path to log file")
	addr := flag.String("addr", pkg.SshPort, "address to serve SSH on")
	hostKey := flag.String("host-key", "", "path to the SSH host key (generated when empty)")
	command := flag.String("command", defaultCommand(), "chessterm binary to run for each session")
	clientLog := flag.String("client-log", "./client.log", "log file of the chessterm sessions")
	flag.Parse()

	pkg.InitLog(*logPath, "SERVER: ")
	log.Println("Server started")

	s, err := pkg.NewSSHServer(*addr, *hostKey, *command, "-log", *clientLog)
	if err != nil {
		log.Fatalf("Failed to create server: %s", err)
	}

	go func() {
		log.Printf("Listening at %s", *addr)
		if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Fatalf("Server stopped: %s", err)
		}
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	log.Println("Server shutting down")
	s.Close()
}
