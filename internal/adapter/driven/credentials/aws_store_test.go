package credentials

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAWSStore_InjectedLoader(t *testing.T) {
	var requested string
	store := &AWSStore{
		prefix: DefaultAWSProfilePrefix,
		load: func(_ context.Context, profile string) (aws.Config, error) {
			requested = profile
			return aws.Config{
				Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
					return aws.Credentials{AccessKeyID: "SKaws", SecretAccessKey: "aws-secret"}, nil
				}),
			}, nil
		},
	}

	creds, err := store.GetCredentials(context.Background(), "MyFirstProfile")
	require.NoError(t, err)
	assert.Equal(t, "twilio-MyFirstProfile", requested)
	assert.Equal(t, "SKaws", creds.APIKey)
	assert.Equal(t, "aws-secret", creds.APISecret)
}

func TestAWSStore_Failures(t *testing.T) {
	loadErr := errors.New("no such profile")

	tests := []struct {
		name    string
		load    awsLoader
		wantErr error
	}{
		{
			name: "load fails",
			load: func(context.Context, string) (aws.Config, error) {
				return aws.Config{}, loadErr
			},
			wantErr: loadErr,
		},
		{
			name: "no provider",
			load: func(context.Context, string) (aws.Config, error) {
				return aws.Config{}, nil
			},
			wantErr: ErrCredentialsNotFound,
		},
		{
			name: "empty credentials",
			load: func(context.Context, string) (aws.Config, error) {
				return aws.Config{Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
					return aws.Credentials{}, nil
				})}, nil
			},
			wantErr: ErrMalformedSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &AWSStore{prefix: DefaultAWSProfilePrefix, load: tt.load}

			_, err := store.GetCredentials(context.Background(), "p")
			assert.ErrorIs(t, err, tt.wantErr)

			var storeErr *StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, StoreAWS, storeErr.Store)
		})
	}
}

func TestAWSStore_SharedCredentialsFile(t *testing.T) {
	dir := t.TempDir()
	credsPath := filepath.Join(dir, "credentials")
	configPath := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(credsPath, []byte("[twilio-MyFirstProfile]\naws_access_key_id = SKshared\naws_secret_access_key = shared-secret\n"), 0o600))
	require.NoError(t, os.WriteFile(configPath, []byte(""), 0o600))

	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credsPath)
	t.Setenv("AWS_CONFIG_FILE", configPath)
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_SESSION_TOKEN", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "us-east-1")

	creds, err := NewAWSStore(DefaultAWSProfilePrefix).GetCredentials(context.Background(), "MyFirstProfile")
	require.NoError(t, err)
	assert.Equal(t, "SKshared", creds.APIKey)
	assert.Equal(t, "shared-secret", creds.APISecret)
}
