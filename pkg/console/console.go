package console

import (
	"fmt"
	"io"
	"os"

	"github.com/diillson/twilio-cli-go/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
// Command output goes to out; log and status messages go to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
	level  types.LogLevel
	debug  pterm.PrefixPrinter
}

// NewConsole cria um novo Console escrevendo em stdout/stderr.
func NewConsole() *Console {
	return NewConsoleWithWriters(os.Stdout, os.Stderr)
}

// NewConsoleWithWriters creates a Console over the given writers at info level.
func NewConsoleWithWriters(out, errOut io.Writer) *Console {
	debug := pterm.Debug
	// Level filtering is done here, not through pterm's global debug switch.
	debug.Debugger = false

	return &Console{
		out:    out,
		errOut: errOut,
		level:  types.LevelInfo,
		debug:  debug,
	}
}

// SetLevel drops every log message below level.
func (c *Console) SetLevel(level types.LogLevel) {
	c.level = level
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogDebug registra uma mensagem de depuração.
func (c *Console) LogDebug(format string, a ...interface{}) {
	c.log(types.LevelDebug, c.debug, format, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	c.log(types.LevelInfo, pterm.Info, format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.log(types.LevelWarn, pterm.Warning, format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.log(types.LevelError, pterm.Error, format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.log(types.LevelInfo, pterm.Success, format, a...)
}

func (c *Console) log(level types.LogLevel, printer pterm.PrefixPrinter, format string, a ...interface{}) {
	if level < c.level {
		return
	}
	fmt.Fprint(c.errOut, printer.Sprintfln(format, a...))
}

// Cores predefinidas para uso consistente
var (
	BoldRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}
