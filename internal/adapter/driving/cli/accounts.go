package cli

import (
	"context"

	"github.com/diillson/twilio-cli-go/internal/application/usecase"
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/spf13/cobra"
)

var accountPropertyFlags = entity.PropertySchema{
	{Flag: "friendly-name", Description: "Update the human-readable description of this Account"},
	{Flag: "status", Description: "Alter the status of this account: active, suspended, closed"},
}

func (app *CLIApp) addAccountsUpdateCommand() {
	cmd := &cobra.Command{
		Use:   "api:core:accounts:update",
		Short: "Modify the properties of a given Account",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("sid", "", "The Account SID to update (defaults to the profile's account)")

	runner := usecase.RunnerFunc(func(ctx context.Context, cc *usecase.ClientCommand) error {
		sid, _ := cmd.Flags().GetString("sid")
		if sid == "" {
			sid = cc.Client.AccountSid
		}

		result := cc.UpdateResource(ctx, app.apiFactory(*cc.Client).Accounts(), sid, entity.NoProperties())
		printResults(cc.Console(), []entity.UpdateResult{result})
		return nil
	})

	app.rootCmd.AddCommand(app.newClientCobraCommand(cmd, runner, clientCommandOptions{
		accountSidFlag: true,
		schema:         accountPropertyFlags,
	}))
}
