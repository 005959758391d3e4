package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is relative to the user's home directory.
	DefaultConfigDir  = ".twilio-cli"
	DefaultConfigFile = "config.json"

	EnvConfigFile = "TWILIO_CONFIG_FILE"
	EnvAccountSid = "TWILIO_ACCOUNT_SID"
	EnvAuthToken  = "TWILIO_AUTH_TOKEN"
	EnvAPIKey     = "TWILIO_API_KEY"
	EnvAPISecret  = "TWILIO_API_SECRET"
	EnvRegion     = "TWILIO_REGION"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	lookupEnv func(string) (string, bool)
	homeDir   func() (string, error)
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{
		lookupEnv: os.LookupEnv,
		homeDir:   os.UserHomeDir,
	}
}

// NewConfigRepositoryWithEnv creates a repository reading the environment
// and home directory through the given functions.
func NewConfigRepositoryWithEnv(lookupEnv func(string) (string, bool), homeDir func() (string, error)) *ConfigRepositoryImpl {
	return &ConfigRepositoryImpl{lookupEnv: lookupEnv, homeDir: homeDir}
}

// DefaultPath returns the configuration file used when none is given.
func (r *ConfigRepositoryImpl) DefaultPath() (string, error) {
	if p, ok := r.lookupEnv(EnvConfigFile); ok && p != "" {
		return p, nil
	}
	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("error locating home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// LoadConfig carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfig(filePath string) (*entity.Configuration, error) {
	optional := false
	if filePath == "" {
		p, err := r.DefaultPath()
		if err != nil {
			return nil, err
		}
		filePath = p
		optional = true
	}

	fileConfig, err := r.loadConfigFile(filePath)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			fileConfig = &types.Config{}
		} else {
			return nil, err
		}
	}

	cfg, err := toConfiguration(fileConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	cfg.EnvProfile = r.environmentProfile()
	return cfg, nil
}

func (r *ConfigRepositoryImpl) loadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

func toConfiguration(fc *types.Config) (*entity.Configuration, error) {
	cfg := &entity.Configuration{
		ActiveProfile:   fc.ActiveProfile,
		CredentialStore: fc.CredentialStore,
		Profiles:        make([]entity.Profile, 0, len(fc.Profiles)),
	}

	seen := make(map[string]bool, len(fc.Profiles))
	for _, p := range fc.Profiles {
		if p.ID == "" {
			return nil, errors.New("profile with empty id")
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate profile %q", p.ID)
		}
		seen[p.ID] = true

		cfg.Profiles = append(cfg.Profiles, entity.Profile{
			ID:         p.ID,
			AccountSid: p.AccountSid,
			Region:     p.Region,
		})
	}

	return cfg, nil
}

// environmentProfile builds a profile from TWILIO_* variables. API key
// credentials are preferred over the auth token.
func (r *ConfigRepositoryImpl) environmentProfile() *entity.Profile {
	accountSid := r.env(EnvAccountSid)
	if accountSid == "" {
		return nil
	}

	var creds *entity.Credentials
	if key, secret := r.env(EnvAPIKey), r.env(EnvAPISecret); key != "" && secret != "" {
		creds = &entity.Credentials{APIKey: key, APISecret: secret}
	} else if token := r.env(EnvAuthToken); token != "" {
		creds = &entity.Credentials{APIKey: accountSid, APISecret: token}
	} else {
		return nil
	}

	return &entity.Profile{
		ID:          accountSid,
		AccountSid:  accountSid,
		Region:      r.env(EnvRegion),
		Credentials: creds,
	}
}

func (r *ConfigRepositoryImpl) env(key string) string {
	v, _ := r.lookupEnv(key)
	return v
}
