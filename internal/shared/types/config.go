package types

// Config represents the configuration file as stored on disk.
type Config struct {
	ActiveProfile   string          `json:"activeProfile" yaml:"activeProfile" toml:"activeProfile"`
	CredentialStore string          `json:"credentialStore" yaml:"credentialStore" toml:"credentialStore"`
	Profiles        []ProfileConfig `json:"profiles" yaml:"profiles" toml:"profiles"`
}

// ProfileConfig is one profile entry of the configuration file.
type ProfileConfig struct {
	ID         string `json:"id" yaml:"id" toml:"id"`
	AccountSid string `json:"accountSid" yaml:"accountSid" toml:"accountSid"`
	Region     string `json:"region" yaml:"region" toml:"region"`
}
