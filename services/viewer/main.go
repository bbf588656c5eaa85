package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iulianpascalau/xrd-launcher/commonGo"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/config"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/factory"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const logFilePrefix = "viewer"

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

var (
	log = logger.GetOrCreate("viewer")

	logLevel         = commonGo.LogLevelFlag("api")
	workingDirectory = commonGo.WorkingDirectoryFlag("viewer")
	// configurationFile defines a flag for the path to the TOML configuration file
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `filepath` of the TOML configuration file.",
		Value: "./config.toml",
	}
)

func main() {
	app := commonGo.NewApp(
		"XRD pattern viewer",
		"This is the entry point for starting the web service used to stack and compare XRD patterns",
		appVersion,
		[]cli.Flag{
			logLevel,
			commonGo.LogSaveFlag,
			workingDirectory,
			configurationFile,
		},
	)
	app.Action = run

	defer func() {
		if fileLogging != nil {
			_ = fileLogging.Close()
		}
	}()

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	var err error
	fileLogging, err = commonGo.ConfigureLogging(log, commonGo.ArgsLogging{
		LogLevel:      ctx.GlobalString(logLevel.Name),
		SaveLogFile:   ctx.GlobalBool(commonGo.LogSaveFlag.Name),
		WorkingDir:    ctx.GlobalString(workingDirectory.Name),
		LogFilePrefix: logFilePrefix,
	})
	if err != nil {
		return err
	}

	log.Info("Starting viewer service", "version", appVersion, "pid", os.Getpid())

	cfg, err := config.LoadConfig(ctx.GlobalString(configurationFile.Name))
	if err != nil {
		return err
	}

	handler, err := factory.NewComponentsHandler(*cfg)
	if err != nil {
		return err
	}

	handler.Start()

	log.Info("Viewer service started", "address", handler.GetServer().Address())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	<-sigs

	log.Info("Application closing, calling Close on all subcomponents...")

	handler.Close()

	return nil
}
