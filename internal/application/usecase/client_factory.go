package usecase

import (
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
)

// BuildClient combines a resolved profile and its credentials into a client
// handle. A non-empty accountSidOverride replaces the profile's account SID;
// it must already be validated.
func BuildClient(profile *entity.Profile, creds entity.Credentials, accountSidOverride string) entity.ClientHandle {
	accountSid := profile.AccountSid
	if accountSidOverride != "" {
		accountSid = accountSidOverride
	}

	return entity.ClientHandle{
		AccountSid: accountSid,
		Username:   creds.APIKey,
		Password:   creds.APISecret,
		Region:     profile.Region,
	}
}
