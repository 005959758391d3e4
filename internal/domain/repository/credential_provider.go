package repository

import (
	"context"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
)

// CredentialProvider retrieves the API key pair stored for a profile.
type CredentialProvider interface {
	GetCredentials(ctx context.Context, profileID string) (entity.Credentials, error)
}

// CredentialProviderFunc adapts a function to CredentialProvider.
type CredentialProviderFunc func(ctx context.Context, profileID string) (entity.Credentials, error)

// GetCredentials calls f.
func (f CredentialProviderFunc) GetCredentials(ctx context.Context, profileID string) (entity.Credentials, error) {
	return f(ctx, profileID)
}
