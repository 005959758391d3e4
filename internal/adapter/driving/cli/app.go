package cli

import (
	"context"
	"fmt"

	"github.com/diillson/twilio-cli-go/internal/application/usecase"
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/diillson/twilio-cli-go/pkg/version"
	"github.com/spf13/cobra"
)

// APIClient exposes the resource collections used by the built-in commands.
type APIClient interface {
	IncomingPhoneNumbers() repository.ResourceFactory
	Accounts() repository.ResourceFactory
}

// APIClientFactory builds an API client for an authenticated handle.
type APIClientFactory func(handle entity.ClientHandle) APIClient

// CredentialStoreFactory returns the credential store configured by name.
type CredentialStoreFactory func(kind string) (repository.CredentialProvider, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	configRepo   repository.ConfigRepository
	console      types.ConsoleInterface
	storeFactory CredentialStoreFactory
	apiFactory   APIClientFactory
	version      string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           types.CLIName,
		Short:         "Manage Twilio resources from the command line",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(cmd.OutOrStdout(), app.version)
			return cmd.Help()
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "twilio-cli-go version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Level of logging messages: debug, info, warn, error, none")

	app.rootCmd = rootCmd

	app.addProfilesListCommand()
	app.addPhoneNumbersUpdateCommand()
	app.addAccountsUpdateCommand()

	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteArgs runs the CLI application with explicit arguments.
func (app *CLIApp) ExecuteArgs(ctx context.Context, args []string) error {
	app.rootCmd.SetArgs(args)
	return app.rootCmd.ExecuteContext(ctx)
}

// SetConfigRepository sets the configuration source.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetConsole sets the status and output channel.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}

// SetCredentialStoreFactory sets how credential stores are built.
func (app *CLIApp) SetCredentialStoreFactory(factory CredentialStoreFactory) {
	app.storeFactory = factory
}

// SetAPIClientFactory sets how API clients are built.
func (app *CLIApp) SetAPIClientFactory(factory APIClientFactory) {
	app.apiFactory = factory
}

// parseArgs parses the base flags of cmd into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	profile, _ := cmd.Flags().GetString("profile")
	logLevel, _ := cmd.Flags().GetString("log-level")
	accountSid, _ := cmd.Flags().GetString("account-sid")

	level, ok := types.ParseLogLevel(logLevel)
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", types.ErrInvalidLogLevel, logLevel, types.LogLevelNames)
	}
	app.console.SetLevel(level)

	if accountSid != "" {
		if err := validateAccountSid(accountSid); err != nil {
			return nil, err
		}
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Profile:    profile,
		LogLevel:   logLevel,
		AccountSid: accountSid,
	}, nil
}

// loadConfiguration parses the base flags and loads the profile configuration.
func (app *CLIApp) loadConfiguration(cmd *cobra.Command) (*types.CLIArgs, *entity.Configuration, error) {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := app.configRepo.LoadConfig(cliArgs.ConfigFile)
	if err != nil {
		app.console.LogError("Could not load configuration: %v", err)
		return nil, nil, &types.AbortError{Code: types.ExitCodeAbort, Err: err}
	}

	return cliArgs, cfg, nil
}

// runClientCommand wires a concrete command's runner into the client lifecycle.
func (app *CLIApp) runClientCommand(cmd *cobra.Command, runner usecase.CommandRunner, schema entity.PropertySchema) error {
	cliArgs, cfg, err := app.loadConfiguration(cmd)
	if err != nil {
		return err
	}

	store, err := app.storeFactory(cfg.CredentialStore)
	if err != nil {
		app.console.LogError("%v", err)
		return &types.AbortError{Code: types.ExitCodeAbort, Err: err}
	}

	clientCmd, err := usecase.NewClientCommand(runner, cfg, store, app.console)
	if err != nil {
		app.console.LogError("%v", err)
		return &types.AbortError{Code: types.ExitCodeAbort, Err: err}
	}

	clientCmd.Args = cliArgs
	clientCmd.Flags = newFlagBag(cmd.Flags())
	clientCmd.PropertyFlags = schema

	return clientCmd.Run(cmd.Context())
}
