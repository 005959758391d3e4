package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringStore_GetCredentials(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(DefaultKeyringService, "MyFirstProfile", "SKkey|secret"))
	require.NoError(t, keyring.Set(DefaultKeyringService, "broken", "no-separator"))

	store := NewKeyringStore(DefaultKeyringService)

	creds, err := store.GetCredentials(context.Background(), "MyFirstProfile")
	require.NoError(t, err)
	assert.Equal(t, "SKkey", creds.APIKey)
	assert.Equal(t, "secret", creds.APISecret)

	_, err = store.GetCredentials(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, StoreKeyring, storeErr.Store)

	_, err = store.GetCredentials(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrMalformedSecret)
}

func TestKeyringStore_CanceledContext(t *testing.T) {
	keyring.MockInit()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewKeyringStore(DefaultKeyringService).GetCredentials(ctx, "MyFirstProfile")
	require.Error(t, err)
}
