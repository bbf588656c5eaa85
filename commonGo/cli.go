package commonGo

import (
	"fmt"
	"runtime"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
)

// AppHelpTemplate is the help template used by all services
const AppHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

// LogSaveFlag is used when the log output needs to be logged in a file
var LogSaveFlag = cli.BoolFlag{
	Name:  "log-save",
	Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
}

// LogLevelFlag defines the logger level flag. The package name is only used in the usage example
func LogLevelFlag(examplePackage string) cli.StringFlag {
	return cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO," +
			examplePackage + ":DEBUG the logs for all packages will have the INFO level, excepting the " +
			examplePackage + " package which will receive a DEBUG log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
}

// WorkingDirectoryFlag defines a flag for the path where the service stores its logs
func WorkingDirectoryFlag(serviceName string) cli.StringFlag {
	return cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the " + serviceName + " will store its logs.",
		Value: "",
	}
}

// NewApp creates the cli application with the common help template, version and authors
func NewApp(name string, usage string, appVersion string, flags []cli.Flag) *cli.App {
	cli.AppHelpTemplate = AppHelpTemplate

	app := cli.NewApp()
	app.Name = name
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = usage
	app.Flags = flags
	app.Authors = []cli.Author{
		{
			Name:  "Iulian Pascalau",
			Email: "iulian.pascalau@gmail.com",
		},
	}

	return app
}

// ArgsLogging holds the logging setup read from the command line
type ArgsLogging struct {
	LogLevel      string
	SaveLogFile   bool
	WorkingDir    string
	LogFilePrefix string
}

// ConfigureLogging applies the log level and, if required, attaches a rotating log file
func ConfigureLogging(log logger.Logger, args ArgsLogging) (FileLoggingHandler, error) {
	err := logger.SetLogLevel(args.LogLevel)
	if err != nil {
		return nil, err
	}

	fileLogging, err := AttachFileLogger(log, defaultLogsPath, args.LogFilePrefix, args.SaveLogFile, args.WorkingDir)
	if err != nil {
		return nil, err
	}
	if check.IfNil(fileLogging) {
		return nil, nil
	}

	err = fileLogging.ChangeFileLifeSpan(time.Second*time.Duration(logFileLifeSpanInSec), uint64(logFileLifeSpanInMB))
	if err != nil {
		_ = fileLogging.Close()
		return nil, err
	}

	return fileLogging, nil
}
