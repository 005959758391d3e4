package credentials

import (
	"context"
	"errors"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the service name used for keyring entries.
const DefaultKeyringService = "twilio-cli"

// KeyringStore reads credentials from the system keyring. Each profile is
// stored under its id with the value "<apiKey>|<apiSecret>".
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a keyring store for service.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// GetCredentials implements repository.CredentialProvider.
func (s *KeyringStore) GetCredentials(ctx context.Context, profileID string) (entity.Credentials, error) {
	type result struct {
		secret string
		err    error
	}

	resultCh := make(chan result, 1)

	go func() {
		secret, err := keyring.Get(s.service, profileID)
		resultCh <- result{secret: secret, err: err}
	}()

	var r result
	select {
	case r = <-resultCh:
	case <-ctx.Done():
		return entity.Credentials{}, &StoreError{Store: StoreKeyring, ProfileID: profileID, Err: ctx.Err()}
	}

	if r.err != nil {
		err := r.err
		if errors.Is(err, keyring.ErrNotFound) {
			err = ErrCredentialsNotFound
		}
		return entity.Credentials{}, &StoreError{Store: StoreKeyring, ProfileID: profileID, Err: err}
	}

	key, secret, err := splitSecret(r.secret)
	if err != nil {
		return entity.Credentials{}, &StoreError{Store: StoreKeyring, ProfileID: profileID, Err: err}
	}

	return entity.Credentials{APIKey: key, APISecret: secret}, nil
}
