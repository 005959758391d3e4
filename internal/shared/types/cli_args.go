package types

// CLIArgs represents the base flags shared by every client command.
type CLIArgs struct {
	ConfigFile string
	Profile    string
	LogLevel   string
	AccountSid string
}

// HasProfile reports whether a profile was requested explicitly.
func (a *CLIArgs) HasProfile() bool {
	return a != nil && a.Profile != ""
}
