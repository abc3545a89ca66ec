package log

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Level is a logging verbosity, from most to least verbose
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// [15:04:05.000] [module] [LEVEL] message
var recordFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is the leveled logger handed out by New
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module; records are tagged with its name.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects every module's records to w, keeping the current level.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), recordFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(backendLevels[level], "")
	logging.SetBackend(backend)
}

// SetLevel drops records below l for all modules. Unknown levels are ignored.
func SetLevel(l Level) {
	bl, ok := backendLevels[l]
	if !ok {
		return
	}
	level = l
	backend.SetLevel(bl, "")
}

// printfLogger logs core.Logger output at Info
type printfLogger struct {
	logger Logger
}

// NewPrintfLogger wraps the module's logger as a core.Logger for the renderer
func NewPrintfLogger(module string) core.Logger {
	return &printfLogger{logger: New(module)}
}

func (p *printfLogger) Printf(format string, args ...interface{}) {
	// go-logging ends every record with its own newline
	p.logger.Infof(strings.TrimRight(format, "\n"), args...)
}

func init() {
	SetSink(os.Stdout)
}
