package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/twilio-cli-go/internal/adapter/driven/config"
	"github.com/diillson/twilio-cli-go/internal/adapter/driven/credentials"
	"github.com/diillson/twilio-cli-go/internal/adapter/driven/twilio"
	"github.com/diillson/twilio-cli-go/internal/adapter/driving/cli"
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/diillson/twilio-cli-go/pkg/console"
	"github.com/diillson/twilio-cli-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Adaptadores
	app.SetConfigRepository(config.NewConfigRepository())
	app.SetConsole(console.NewConsole())

	configDir := config.DefaultConfigDir
	if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, config.DefaultConfigDir)
	}
	app.SetCredentialStoreFactory(func(kind string) (repository.CredentialProvider, error) {
		return credentials.NewStore(kind, configDir)
	})
	app.SetAPIClientFactory(func(handle entity.ClientHandle) cli.APIClient {
		return twilio.NewClient(handle)
	})

	if err := app.Execute(); err != nil {
		// AbortError já foi reportado no console
		var abort *types.AbortError
		if !errors.As(err, &abort) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(types.ExitCode(err))
	}
}
