package repository

import (
	"context"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
)

// Resource is a single remote API resource that accepts partial updates.
type Resource interface {
	Update(ctx context.Context, props entity.Properties) error
}

// ResourceFactory returns the resource identified by sid.
type ResourceFactory func(sid string) Resource

// FlagBag exposes the raw values of parsed command-line flags.
type FlagBag interface {
	// Lookup returns the flag value and whether the user supplied it.
	Lookup(name string) (string, bool)
}

// MapFlagBag is a FlagBag backed by a plain map.
type MapFlagBag map[string]string

// Lookup implements FlagBag.
func (m MapFlagBag) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
