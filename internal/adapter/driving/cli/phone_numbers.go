package cli

import (
	"context"

	"github.com/diillson/twilio-cli-go/internal/application/usecase"
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/spf13/cobra"
)

var phoneNumberPropertyFlags = entity.PropertySchema{
	{Flag: "friendly-name", Description: "A descriptive string that you created to describe this resource"},
	{Flag: "sms-url", Description: "The URL we call when the phone number receives an incoming SMS message"},
	{Flag: "sms-method", Description: "The HTTP method to use with sms-url"},
	{Flag: "voice-url", Description: "The URL we call when the phone number receives a call"},
	{Flag: "voice-method", Description: "The HTTP method to use with voice-url"},
}

func (app *CLIApp) addPhoneNumbersUpdateCommand() {
	cmd := &cobra.Command{
		Use:   "phone-numbers:update <sid>...",
		Short: "Update the properties of one or more phone numbers",
		Long: `Update the properties of one or more incoming phone numbers.

Every SID is updated independently; a failed update is reported in the
results table and does not stop the remaining updates.

Examples:
  twilio phone-numbers:update PN123 --friendly-name Casper
  twilio phone-numbers:update PN123 PN456 --sms-url https://example.com/sms -p work`,
		Args: cobra.MinimumNArgs(1),
	}

	runner := usecase.RunnerFunc(func(ctx context.Context, cc *usecase.ClientCommand) error {
		factory := app.apiFactory(*cc.Client).IncomingPhoneNumbers()
		props := cc.ParseProperties()

		sids := cmd.Flags().Args()
		results := make([]entity.UpdateResult, 0, len(sids))
		for _, sid := range sids {
			results = append(results, cc.UpdateResource(ctx, factory, sid, props))
		}

		printResults(cc.Console(), results)
		return nil
	})

	app.rootCmd.AddCommand(app.newClientCobraCommand(cmd, runner, clientCommandOptions{
		schema: phoneNumberPropertyFlags,
	}))
}
