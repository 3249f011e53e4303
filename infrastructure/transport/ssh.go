package transport

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
	"github.com/carlosrabelo/fastiron/infrastructure/logging"
)

// SSHClient manages an interactive SSH shell on a device
type SSHClient struct {
	config  entities.DeviceConfig
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	chunks  chan []byte
	done    chan struct{}
	agent   net.Conn
	closed  *atomic.Bool
	log     *logrus.Entry
}

// NewSSHClient creates a new SSH client with the given configuration
func NewSSHClient(cfg entities.DeviceConfig) *SSHClient {
	return &SSHClient{config: cfg, log: logging.WithDevice(cfg.Target)}
}

// Connect opens the shell, elevates to privileged mode and disables paging
func (sc *SSHClient) Connect() error {
	if sc.IsConnected() {
		return nil
	}
	timeout := sc.config.ReadTimeout()
	addr := net.JoinHostPort(sc.config.Target, strconv.Itoa(sc.config.DefaultPort()))

	hostKeyCallback, err := sc.hostKeyCallback()
	if err != nil {
		return ports.NewConnectionError(sc.config.Target, err)
	}
	sshConfig := &ssh.ClientConfig{
		User:            sc.config.Username,
		Auth:            sc.authMethods(),
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	}

	dialer := &net.Dialer{Timeout: timeout}
	rawConn, err := dialer.Dial("tcp", addr)
	if err != nil {
		sc.closeAgent()
		return ports.NewConnectionError(sc.config.Target, err)
	}

	clientConn, chans, reqs, err := ssh.NewClientConn(rawConn, addr, sshConfig)
	// agent signers are only consulted during the handshake
	sc.closeAgent()
	if err != nil {
		rawConn.Close()
		return ports.NewConnectionError(sc.config.Target, fmt.Errorf("ssh handshake: %w", err))
	}
	client := ssh.NewClient(clientConn, chans, reqs)

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return ports.NewConnectionError(sc.config.Target, fmt.Errorf("create session: %w", err))
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 9600,
		ssh.TTY_OP_OSPEED: 9600,
	}
	if err := session.RequestPty("vt100", 80, 40, modes); err != nil {
		session.Close()
		client.Close()
		return ports.NewConnectionError(sc.config.Target, fmt.Errorf("request pty: %w", err))
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		return ports.NewConnectionError(sc.config.Target, fmt.Errorf("stdin pipe: %w", err))
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		return ports.NewConnectionError(sc.config.Target, fmt.Errorf("stdout pipe: %w", err))
	}
	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		return ports.NewConnectionError(sc.config.Target, fmt.Errorf("start shell: %w", err))
	}

	sc.client = client
	sc.session = session
	sc.stdin = stdin
	sc.chunks = make(chan []byte, 64)
	sc.done = make(chan struct{})
	go pump(stdout, sc.chunks, sc.done)
	closed := new(atomic.Bool)
	sc.closed = closed
	go func() {
		_ = client.Wait()
		closed.Store(true)
	}()

	sc.log.Debug("connected via SSH")

	initial, err := sc.readUntilAny([]string{PromptPrivileged, PromptEnable}, timeout)
	if err != nil {
		sc.Disconnect()
		return ports.NewConnectionError(sc.config.Target, err)
	}

	if !strings.Contains(initial, PromptPrivileged) {
		if err := elevate(sc, sc.config, timeout); err != nil {
			sc.Disconnect()
			return ports.NewConnectionError(sc.config.Target, err)
		}
	} else {
		sc.log.Debug("already in privileged mode")
	}

	if err := disablePaging(sc, timeout); err != nil {
		sc.Disconnect()
		return ports.NewConnectionError(sc.config.Target, err)
	}
	return nil
}

func (sc *SSHClient) authMethods() []ssh.AuthMethod {
	methods := []ssh.AuthMethod{}
	if sc.config.UseKeys {
		if signer, err := loadSigner(sc.config.KeyFile); err == nil {
			methods = append(methods, ssh.PublicKeys(signer))
		} else {
			sc.log.WithError(err).Warn("ignoring unreadable key file")
		}
	}
	if sc.config.AllowAgent {
		if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
			if conn, err := net.Dial("unix", sock); err == nil {
				sc.closeAgent()
				sc.agent = conn
				methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
			}
		}
	}
	password := sc.config.Password
	methods = append(methods,
		ssh.Password(password),
		ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
			answers := make([]string, len(questions))
			for i := range answers {
				answers[i] = password
			}
			return answers, nil
		}),
	)
	return methods
}

func (sc *SSHClient) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if !sc.config.SSHStrict {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	var files []string
	if sc.config.AltHostKeys && sc.config.AltKeyFile != "" {
		files = append(files, sc.config.AltKeyFile)
	}
	if sc.config.SystemHostKeys || len(files) == 0 {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locate known_hosts: %w", err)
		}
		files = append(files, filepath.Join(home, ".ssh", "known_hosts"))
	}
	callback, err := knownhosts.New(files...)
	if err != nil {
		return nil, fmt.Errorf("load known hosts: %w", err)
	}
	return callback, nil
}

func loadSigner(keyFile string) (ssh.Signer, error) {
	if keyFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		keyFile = filepath.Join(home, ".ssh", "id_rsa")
	}
	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, err
	}
	return ssh.ParsePrivateKey(data)
}

func (sc *SSHClient) closeAgent() {
	if sc.agent != nil {
		sc.agent.Close()
		sc.agent = nil
	}
}

// Disconnect closes the session, the agent socket and the underlying connection
func (sc *SSHClient) Disconnect() {
	sc.closeAgent()
	if sc.session == nil && sc.client == nil {
		return
	}
	if sc.done != nil {
		close(sc.done)
		sc.done = nil
	}
	if sc.session != nil {
		sc.session.Close()
		sc.session = nil
	}
	if sc.client != nil {
		sc.client.Close()
		sc.client = nil
	}
	sc.stdin = nil
	sc.chunks = nil
	sc.log.Debug("disconnected")
}

// IsConnected reports whether the shell is open and the connection has not dropped
func (sc *SSHClient) IsConnected() bool {
	return sc.session != nil && sc.client != nil && sc.closed != nil && !sc.closed.Load()
}

// ExecuteCommand sends a command and returns its output without echo and prompt
func (sc *SSHClient) ExecuteCommand(cmd string) (string, error) {
	if !sc.IsConnected() {
		return "", ports.ErrNotOpen
	}
	sc.log.WithField("command", cmd).Debug("executing")
	if err := sc.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %w", cmd, err)
	}
	output, err := sc.readUntil(PromptPrivileged, sc.config.ReadTimeout())
	if err != nil {
		return "", fmt.Errorf("error executing %s: %w", cmd, err)
	}
	output = trimCommandOutput(output)
	if sc.config.IsRawOutputEnabled() {
		sc.log.WithField("command", cmd).Trace(output)
	}
	return output, nil
}

func (sc *SSHClient) send(data string) error {
	_, err := sc.stdin.Write([]byte(data))
	return err
}

func (sc *SSHClient) readUntil(pattern string, timeout time.Duration) (string, error) {
	return sc.readUntilAny([]string{pattern}, timeout)
}

func (sc *SSHClient) readUntilAny(patterns []string, timeout time.Duration) (string, error) {
	var output strings.Builder
	output.Grow(BufferSize)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case chunk, ok := <-sc.chunks:
			if !ok {
				return output.String(), fmt.Errorf("read error: %w", io.EOF)
			}
			output.Write(chunk)
			if _, found := matchPrompt(output.String(), patterns); found {
				return output.String(), nil
			}
		case <-timer.C:
			return output.String(), fmt.Errorf("timeout waiting for prompts %s", strings.Join(patterns, ", "))
		}
	}
}

// pump copies the shell output into chunks until the stream ends or done
// is closed
func pump(r io.Reader, chunks chan<- []byte, done <-chan struct{}) {
	defer close(chunks)
	buffer := make([]byte, BufferSize)
	for {
		n, err := r.Read(buffer)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buffer[:n])
			select {
			case chunks <- chunk:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}
