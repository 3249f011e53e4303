package entities

// AuthPrompt is one step of a login dialogue
type AuthPrompt struct {
	WaitFor string // prompt the device output ends with
	SendCmd string // answer to send, empty to only wait
	// Optional steps are skipped when the device shows its exec prompt
	// instead, as FastIron does when telnet login is not enforced.
	Optional bool
}
