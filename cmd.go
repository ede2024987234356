package elastic4s

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var logLevelFlag = kingpin.Flag("log-level", "Minimum level to log.").
	Default("info").
	Enum("debug", "info", "warn", "error")

// SetupLogging sets up zap logging for a command-line tool: a human
// readable config when stdout is a terminal, JSON otherwise. The zap
// globals and the standard library logger are redirected to the
// returned logger.
func SetupLogging() *zap.Logger {
	var conf zap.Config
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		conf = zap.NewDevelopmentConfig()
	} else {
		conf = zap.NewProductionConfig()
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err == nil {
		conf.Level.SetLevel(level)
	}
	logger, err := conf.Build()
	if err != nil {
		panic(err)
	}
	_ = zap.ReplaceGlobals(logger)
	_ = zap.RedirectStdLog(logger)
	return logger
}
