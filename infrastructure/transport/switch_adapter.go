package transport

import (
	"fmt"
	"sync"

	"github.com/carlosrabelo/fastiron/domain/entities"
	"github.com/carlosrabelo/fastiron/domain/ports"
)

// SwitchAdapter exposes a transport Client as a ports.SwitchRepository.
// A CLI session answers one command at a time, so calls are serialized.
type SwitchAdapter struct {
	mu     sync.Mutex
	client Client
}

// NewSwitchAdapter wraps client
func NewSwitchAdapter(client Client) *SwitchAdapter {
	return &SwitchAdapter{client: client}
}

func (s *SwitchAdapter) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.Connect()
}

func (s *SwitchAdapter) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client.Disconnect()
}

// ExecuteCommand runs cmd on the open session. It fails with
// ports.ErrNotOpen before Connect and names the command in transport errors.
func (s *SwitchAdapter) ExecuteCommand(cmd string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.client.IsConnected() {
		return "", ports.ErrNotOpen
	}
	output, err := s.client.ExecuteCommand(cmd)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd, err)
	}
	return output, nil
}

func (s *SwitchAdapter) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.IsConnected()
}

// Client is implemented by every session transport
type Client interface {
	Connect() error
	Disconnect()
	ExecuteCommand(cmd string) (string, error)
	IsConnected() bool
}

// AuthConfigurable allows setting authentication prompts after client creation
type AuthConfigurable interface {
	SetAuthSequence(prompts []entities.AuthPrompt)
}
