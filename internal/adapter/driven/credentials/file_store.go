package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"gopkg.in/ini.v1"
)

const (
	// DefaultCredentialsFile lives next to the configuration file.
	DefaultCredentialsFile = "credentials"

	keyAPIKey    = "api_key"
	keyAPISecret = "api_secret"
)

// FileStore reads credentials from an INI file with one section per profile:
//
//	[MyFirstProfile]
//	api_key    = SK...
//	api_secret = ...
type FileStore struct {
	path string
}

// NewFileStore creates a file store reading path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// GetCredentials implements repository.CredentialProvider.
func (s *FileStore) GetCredentials(_ context.Context, profileID string) (entity.Credentials, error) {
	creds, err := s.read(profileID)
	if err != nil {
		return entity.Credentials{}, &StoreError{Store: StoreFile, ProfileID: profileID, Err: err}
	}
	return creds, nil
}

func (s *FileStore) read(profileID string) (entity.Credentials, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entity.Credentials{}, ErrCredentialsNotFound
		}
		return entity.Credentials{}, fmt.Errorf("error accessing credentials file: %w", err)
	}

	file, err := ini.Load(s.path)
	if err != nil {
		return entity.Credentials{}, fmt.Errorf("error parsing credentials file: %w", err)
	}

	section, err := file.GetSection(profileID)
	if err != nil {
		return entity.Credentials{}, ErrCredentialsNotFound
	}

	creds := entity.Credentials{
		APIKey:    section.Key(keyAPIKey).String(),
		APISecret: section.Key(keyAPISecret).String(),
	}
	if creds.APIKey == "" || creds.APISecret == "" {
		return entity.Credentials{}, ErrMalformedSecret
	}
	return creds, nil
}
