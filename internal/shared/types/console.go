package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogDebug(format string, a ...interface{})
	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	SetLevel(level LogLevel)
	CreateTable() TableInterface
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// LogLevel orders console messages by severity.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var logLevelNames = map[string]LogLevel{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
	"none":  LevelNone,
}

// LogLevelNames lists the accepted --cli-log-level values.
var LogLevelNames = []string{"debug", "info", "warn", "error", "none"}

// ParseLogLevel converts a flag value into a LogLevel.
func ParseLogLevel(s string) (LogLevel, bool) {
	l, ok := logLevelNames[s]
	return l, ok
}

func (l LogLevel) String() string {
	for name, level := range logLevelNames {
		if level == l {
			return name
		}
	}
	return "unknown"
}
