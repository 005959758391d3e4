package credentials

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
)

const (
	StoreKeyring = "keyring"
	StoreFile    = "file"
	StoreAWS     = "aws"

	// secretSeparator joins key and secret in single-value stores.
	secretSeparator = "|"
)

var (
	// ErrCredentialsNotFound is returned when a store has no entry for the profile.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrMalformedSecret is returned when a stored entry cannot be split into key and secret.
	ErrMalformedSecret = errors.New("malformed stored credentials")
)

// StoreError represents an error during a credential store operation.
type StoreError struct {
	Store     string
	ProfileID string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store lookup for %s failed: %v", e.Store, e.ProfileID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStore returns the credential provider named kind. An empty kind selects
// the system keyring. configDir holds file-backed stores.
func NewStore(kind, configDir string) (repository.CredentialProvider, error) {
	switch strings.ToLower(kind) {
	case "", StoreKeyring:
		return NewKeyringStore(DefaultKeyringService), nil
	case StoreFile:
		return NewFileStore(filepath.Join(configDir, DefaultCredentialsFile)), nil
	case StoreAWS:
		return NewAWSStore(DefaultAWSProfilePrefix), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownStore, kind)
	}
}

func splitSecret(value string) (string, string, error) {
	key, secret, ok := strings.Cut(value, secretSeparator)
	if !ok || key == "" || secret == "" {
		return "", "", ErrMalformedSecret
	}
	return key, secret, nil
}
