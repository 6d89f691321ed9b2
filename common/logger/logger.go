package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter = &NullWriter{}
	level      = ERROR
	Info       *log.Logger
	Warn       *log.Logger
	Error      *log.Logger
	Debug      *log.Logger
	Trace      *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	setWriters(ERROR, nullWriter, nullWriter)
}

// Initialize enables the loggers up to logLevel. Errors go to stderr,
// everything else to stdout.
func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	setWriters(logLevel, os.Stdout, os.Stderr)
}

// InitializeWithWriter sends every enabled level to out.
func InitializeWithWriter(logLevel LogLevel, out io.Writer) {
	setWriters(logLevel, out, out)
}

func Level() LogLevel {
	return level
}

func setWriters(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	level = logLevel

	writerFor := func(l LogLevel, w io.Writer) io.Writer {
		if logLevel >= l {
			return w
		}
		return nullWriter
	}

	Error = log.New(writerFor(ERROR, errOut), "ERROR: ", logFlags)
	Warn = log.New(writerFor(WARN, out), "WARN:  ", logFlags)
	Info = log.New(writerFor(INFO, out), "INFO:  ", logFlags)
	Debug = log.New(writerFor(DEBUG, out), "DEBUG: ", logFlags)
	Trace = log.New(writerFor(TRACE, out), "TRACE: ", logFlags)
}
