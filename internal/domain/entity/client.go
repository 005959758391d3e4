package entity

// ClientHandle is the authenticated view a command uses to reach the API.
type ClientHandle struct {
	AccountSid string
	Username   string
	Password   string
	Region     string
}

// HasRegion reports whether requests should be routed to a regional endpoint.
func (c *ClientHandle) HasRegion() bool {
	return c.Region != ""
}
