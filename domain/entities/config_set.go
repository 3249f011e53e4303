package entities

// Configuration scopes accepted by GetConfig.
const (
	ScopeRunning   = "running"
	ScopeStartup   = "startup"
	ScopeCandidate = "candidate"
	ScopeAll       = "all"
)

// ConfigSet carries the retrieved configurations. Scopes that were not
// fetched are empty strings.
type ConfigSet struct {
	Running   string `json:"running" yaml:"running"`
	Startup   string `json:"startup" yaml:"startup"`
	Candidate string `json:"candidate" yaml:"candidate"`
}
