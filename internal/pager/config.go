package pager

// DisableEnv disables paging when present in the environment, whatever its
// value.
const DisableEnv = "NOPAGER"

// Defaults applied to a zero Config.
const (
	DefaultEnvVar   = "PAGER"
	DefaultFallback = "more"
)

// Config selects the pager and how it is launched. It is read once, at
// Setup time.
type Config struct {
	// EnvVar names the environment variable holding the user's pager.
	EnvVar string
	// Override wins over every other source except DisableEnv.
	Override string
	// Default is used when neither Override nor EnvVar supply a command.
	Default string
	// Fallback is the last resort, used only if found on PATH.
	Fallback string
	// Env holds extra variables for the pager process only.
	Env map[string]string
	// NoSkip activates the pager even when stdout is not a terminal.
	NoSkip bool
}

func (c Config) withDefaults() Config {
	if c.EnvVar == "" {
		c.EnvVar = DefaultEnvVar
	}
	if c.Fallback == "" {
		c.Fallback = DefaultFallback
	}
	return c
}
