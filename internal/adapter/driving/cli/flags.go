package cli

import (
	"fmt"
	"regexp"

	"github.com/diillson/twilio-cli-go/internal/application/usecase"
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var accountSidPattern = regexp.MustCompile(`^AC[0-9a-fA-F]{32}$`)

func validateAccountSid(sid string) error {
	if !accountSidPattern.MatchString(sid) {
		return fmt.Errorf("invalid --account-sid %q: %w", sid, types.ErrInvalidAccountSid)
	}
	return nil
}

// flagBag exposes a parsed pflag set; a flag counts as supplied only when the
// user changed it.
type flagBag struct {
	flags *pflag.FlagSet
}

func newFlagBag(flags *pflag.FlagSet) *flagBag {
	return &flagBag{flags: flags}
}

// Lookup implements repository.FlagBag.
func (b *flagBag) Lookup(name string) (string, bool) {
	f := b.flags.Lookup(name)
	if f == nil || !f.Changed {
		return "", false
	}
	return f.Value.String(), true
}

type clientCommandOptions struct {
	accountSidFlag bool
	schema         entity.PropertySchema
}

// newClientCobraCommand declares the base client flags on cmd and routes its
// execution through the client lifecycle.
func (app *CLIApp) newClientCobraCommand(cmd *cobra.Command, runner usecase.CommandRunner, opts clientCommandOptions) *cobra.Command {
	cmd.Flags().StringP("profile", "p", "", "Shorthand identifier for your profile")
	if opts.accountSidFlag {
		cmd.Flags().String("account-sid", "", "Access resources for the specified account")
	}

	for _, pf := range opts.schema {
		description := pf.Description
		if description == "" {
			description = fmt.Sprintf("Sets the %s property", usecase.FieldName(pf))
		}
		cmd.Flags().String(pf.Flag, "", description)
	}

	cmd.RunE = func(c *cobra.Command, args []string) error {
		return app.runClientCommand(c, runner, opts.schema)
	}
	return cmd
}
