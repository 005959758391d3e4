package credentials

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
)

// DefaultAWSProfilePrefix namespaces twilio profiles inside the AWS shared config.
const DefaultAWSProfilePrefix = "twilio-"

// awsLoader loads the AWS configuration of a shared-config profile.
type awsLoader func(ctx context.Context, profile string) (aws.Config, error)

// AWSStore resolves credentials through the AWS shared configuration, so a
// profile can be backed by a credential_process or SSO session. The access
// key id is the API key and the secret access key is the API secret.
type AWSStore struct {
	prefix string
	load   awsLoader
}

// NewAWSStore creates a store reading the AWS profile "<prefix><profileID>".
func NewAWSStore(prefix string) *AWSStore {
	return &AWSStore{prefix: prefix, load: loadSharedConfig}
}

func loadSharedConfig(ctx context.Context, profile string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	return cfg, nil
}

// GetCredentials implements repository.CredentialProvider.
func (s *AWSStore) GetCredentials(ctx context.Context, profileID string) (entity.Credentials, error) {
	cfg, err := s.load(ctx, s.prefix+profileID)
	if err != nil {
		return entity.Credentials{}, &StoreError{Store: StoreAWS, ProfileID: profileID, Err: err}
	}

	if cfg.Credentials == nil {
		return entity.Credentials{}, &StoreError{Store: StoreAWS, ProfileID: profileID, Err: ErrCredentialsNotFound}
	}

	awsCreds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return entity.Credentials{}, &StoreError{Store: StoreAWS, ProfileID: profileID, Err: err}
	}

	if awsCreds.AccessKeyID == "" || awsCreds.SecretAccessKey == "" {
		return entity.Credentials{}, &StoreError{Store: StoreAWS, ProfileID: profileID, Err: ErrMalformedSecret}
	}

	return entity.Credentials{APIKey: awsCreds.AccessKeyID, APISecret: awsCreds.SecretAccessKey}, nil
}
