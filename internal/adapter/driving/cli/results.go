package cli

import (
	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/diillson/twilio-cli-go/pkg/console"
)

// printResults renders update results as a table on the command output.
func printResults(out types.ConsoleInterface, results []entity.UpdateResult) {
	table := out.CreateTable()
	table.AddColumn("SID")
	table.AddColumn("Result")
	table.AddColumn("Detail")

	for _, r := range results {
		table.AddRow(r.Sid, colorOutcome(r.Result), r.Detail)
	}

	out.Println(table.Render())
}

func colorOutcome(outcome entity.UpdateOutcome) string {
	switch outcome {
	case entity.OutcomeSuccess:
		return console.BrightGreen(string(outcome))
	case entity.OutcomeError:
		return console.BoldRed(string(outcome))
	default:
		return console.BrightCyan(string(outcome))
	}
}
