package console

import (
	"bytes"
	"testing"

	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func newTestConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	pterm.DisableColor()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewConsoleWithWriters(out, errOut), out, errOut
}

func TestConsole_LevelFiltering(t *testing.T) {
	c, out, errOut := newTestConsole()

	c.LogDebug("hidden %s", "debug")
	c.LogInfo("shown %s", "info")
	assert.NotContains(t, errOut.String(), "hidden debug")
	assert.Contains(t, errOut.String(), "shown info")

	c.SetLevel(types.LevelDebug)
	c.LogDebug("Using profile: %s", "MyFirstProfile")
	assert.Contains(t, errOut.String(), "Using profile: MyFirstProfile")

	c.SetLevel(types.LevelNone)
	c.LogError("silenced")
	assert.NotContains(t, errOut.String(), "silenced")

	assert.Empty(t, out.String())
}

func TestConsole_ErrorAndWarningGoToErrOut(t *testing.T) {
	c, out, errOut := newTestConsole()

	c.LogWarning("Nothing to update.")
	c.LogError("A fake API error")
	c.Println("data")

	assert.Contains(t, errOut.String(), "Nothing to update.")
	assert.Contains(t, errOut.String(), "A fake API error")
	assert.Equal(t, "data\n", out.String())
}

func TestTable_Render(t *testing.T) {
	c, _, _ := newTestConsole()

	table := c.CreateTable()
	table.AddColumn("SID")
	table.AddColumn("Result")
	table.AddRow("PN123", "Success")

	rendered := table.Render()
	assert.Contains(t, rendered, "SID")
	assert.Contains(t, rendered, "PN123")
	assert.Contains(t, rendered, "Success")
}
