package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsINI = `[MyFirstProfile]
api_key = SKfirst
api_secret = first-secret

[twilio-cli-unit-testing]
api_key = SKtesting
api_secret = testing-secret

[incomplete]
api_key = SKonly
`

func TestFileStore_GetCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultCredentialsFile)
	require.NoError(t, os.WriteFile(path, []byte(credentialsINI), 0o600))

	store := NewFileStore(path)

	creds, err := store.GetCredentials(context.Background(), "twilio-cli-unit-testing")
	require.NoError(t, err)
	assert.Equal(t, "SKtesting", creds.APIKey)
	assert.Equal(t, "testing-secret", creds.APISecret)

	_, err = store.GetCredentials(context.Background(), "alt")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)

	_, err = store.GetCredentials(context.Background(), "incomplete")
	assert.ErrorIs(t, err, ErrMalformedSecret)
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope"))

	_, err := store.GetCredentials(context.Background(), "MyFirstProfile")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}
