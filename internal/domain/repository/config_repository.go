package repository

import (
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
)

// ConfigRepository defines the interface for loading the profile configuration.
type ConfigRepository interface {
	// LoadConfig reads the configuration at filePath. An empty path selects the
	// default location, which may be absent.
	LoadConfig(filePath string) (*entity.Configuration, error)
}
