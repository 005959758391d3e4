package cli

import (
	"github.com/spf13/cobra"
)

func (app *CLIApp) addProfilesListCommand() {
	cmd := &cobra.Command{
		Use:   "profiles:list",
		Short: "Show what profiles you have configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := app.loadConfiguration(cmd)
			if err != nil {
				return err
			}

			if len(cfg.Profiles) == 0 && cfg.EnvProfile == nil {
				app.console.LogWarning("No profiles have been configured. Run \"twilio profiles:add\" to add one!")
				return nil
			}

			active := cfg.Active()

			table := app.console.CreateTable()
			table.AddColumn("ID")
			table.AddColumn("Account SID")
			table.AddColumn("Region")
			table.AddColumn("Active")

			if env := cfg.EnvProfile; env != nil {
				table.AddRow("[env]", env.AccountSid, env.Region, "true")
				active = nil
			}
			for i := range cfg.Profiles {
				p := &cfg.Profiles[i]
				table.AddRow(p.ID, p.AccountSid, p.Region, p == active)
			}

			app.console.Println(table.Render())
			return nil
		},
	}

	app.rootCmd.AddCommand(cmd)
}
