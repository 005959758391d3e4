package usecase

import (
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
)

// ResolveProfile returns the profile named requested, or the active profile
// when requested is empty. An environment profile takes precedence over the
// active profile but never over an explicit request.
func ResolveProfile(cfg *entity.Configuration, requested string) (*entity.Profile, error) {
	if requested != "" {
		if profile := cfg.ProfileByID(requested); profile != nil {
			return profile, nil
		}
		return nil, &types.NoProfileError{
			ProfileID: requested,
			Explicit:  cfg == nil || requested != cfg.ActiveProfile,
		}
	}

	if cfg != nil && cfg.EnvProfile != nil {
		return cfg.EnvProfile, nil
	}

	if profile := cfg.Active(); profile != nil {
		return profile, nil
	}

	var active string
	if cfg != nil {
		active = cfg.ActiveProfile
	}
	return nil, &types.NoProfileError{ProfileID: active}
}
