package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// SSHServer gives every SSH session its own chessterm process, so a remote
// terminal becomes one unit of a game.
type SSHServer struct {
	*ssh.Server
	Command string
	Args    []string
}

func setWinsize(f *os.File, w, h int) {
	if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)}); err != nil {
		log.Printf("Failed to resize pty: %s", err)
	}
}

// NewSSHServer serves command on addr. An empty hostKey lets the server
// generate a key for this run.
func NewSSHServer(addr, hostKey, command string, args ...string) (*SSHServer, error) {
	srv := &SSHServer{Command: command, Args: args}
	srv.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     srv.handle,
		// Anyone may play; the nickname comes from the SSH user.
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if hostKey != "" {
		if err := srv.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return nil, fmt.Errorf("failed to load host key %s: %w", hostKey, err)
		}
	}
	return srv, nil
}

// commandArgs is the chessterm command line for one session.
func (s *SSHServer) commandArgs(user string, isPty bool) []string {
	args := append([]string{}, s.Args...)
	if user != "" {
		args = append(args, "-name", user)
	}
	if !isPty {
		args = append(args, "-console")
	}
	return args
}

func (s *SSHServer) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	log.Printf("Session from %s@%s (pty=%v)", sess.User(), sess.RemoteAddr(), isPty)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Command, s.commandArgs(sess.User(), isPty)...)
	cmd.Env = sess.Environ()

	if !isPty {
		cmd.Stdin = sess
		cmd.Stdout = sess
		cmd.Stderr = sess.Stderr()
		if err := cmd.Run(); err != nil {
			log.Printf("Console session for %s ended: %s", sess.User(), err)
			sess.Exit(1)
			return
		}
		sess.Exit(0)
		return
	}

	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", ptyReq.Term))
	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)
	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	cmd.Wait()
	log.Printf("Session for %s closed", sess.User())
}
