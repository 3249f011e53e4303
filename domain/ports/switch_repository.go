package ports

// SwitchRepository defines the port for interactive device sessions
type SwitchRepository interface {
	Connect() error
	Disconnect()
	ExecuteCommand(cmd string) (string, error)
	IsConnected() bool
}
