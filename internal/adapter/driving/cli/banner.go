package cli

import (
	"fmt"
	"io"

	"github.com/diillson/twilio-cli-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer, versionStr string) {
	banner := `
  _            _ _ _
 | |___      _(_) (_) ___
 | __\ \ /\ / / | | |/ _ \
 | |_ \ V  V /| | | | (_) |
  \__| \_/\_/ |_|_|_|\___/
`
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))

	formattedVersion := versionStr
	if formattedVersion == "" {
		formattedVersion = version.FormatVersion()
	}
	fmt.Fprintln(w, blue(fmt.Sprintf("twilio-cli-go (v%s)", formattedVersion)))
}
