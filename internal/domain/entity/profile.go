package entity

// Profile represents a named set of account coordinates selected at invocation time.
type Profile struct {
	ID         string `json:"id"`
	AccountSid string `json:"accountSid"`
	Region     string `json:"region,omitempty"`

	// Credentials is only set for profiles sourced from the environment,
	// which bypass the credential store.
	Credentials *Credentials `json:"-"`
}

// HasRegion reports whether the profile pins a region.
func (p *Profile) HasRegion() bool {
	return p.Region != ""
}

// Credentials is the API key pair for a single command invocation.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Configuration is the read-only set of profiles for one invocation.
type Configuration struct {
	ActiveProfile   string    `json:"activeProfile,omitempty"`
	Profiles        []Profile `json:"profiles"`
	CredentialStore string    `json:"credentialStore,omitempty"`

	EnvProfile *Profile `json:"-"`
}

// ProfileByID returns the profile with the given id, or nil.
func (c *Configuration) ProfileByID(id string) *Profile {
	if c == nil {
		return nil
	}
	for i := range c.Profiles {
		if c.Profiles[i].ID == id {
			return &c.Profiles[i]
		}
	}
	return nil
}

// Active returns the active profile. When no active name is set the first
// profile wins; an active name that matches nothing yields nil.
func (c *Configuration) Active() *Profile {
	if c == nil {
		return nil
	}
	if c.ActiveProfile != "" {
		return c.ProfileByID(c.ActiveProfile)
	}
	if len(c.Profiles) == 0 {
		return nil
	}
	return &c.Profiles[0]
}
