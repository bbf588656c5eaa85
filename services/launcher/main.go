package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iulianpascalau/xrd-launcher/commonGo"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/config"
	"github.com/iulianpascalau/xrd-launcher/services/launcher/factory"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const logFilePrefix = "launcher"

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler
var exitCode int

var (
	log = logger.GetOrCreate("launcher")

	logLevel         = commonGo.LogLevelFlag("engine")
	workingDirectory = commonGo.WorkingDirectoryFlag("launcher")
	// configurationFile defines a flag for the path to the TOML file holding the launch profiles
	configurationFile = cli.StringFlag{
		Name:  "config",
		Usage: "The `filepath` of the TOML file holding the launch profiles.",
		Value: "./config.toml",
	}
	// profile selects the launch profile
	profile = cli.StringFlag{
		Name:  "profile",
		Usage: "The `name` of the launch profile. If empty, the configured default profile is used.",
		Value: "",
	}
)

func main() {
	app := commonGo.NewApp(
		"XRD viewer launcher",
		"Starts the XRD viewer in background, opens it in the default browser and waits for it to exit",
		appVersion,
		[]cli.Flag{
			logLevel,
			commonGo.LogSaveFlag,
			workingDirectory,
			configurationFile,
			profile,
		},
	)
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		exitCode = 1
	}

	if fileLogging != nil {
		_ = fileLogging.Close()
	}

	os.Exit(exitCode)
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

	cfg, err := config.LoadConfig(ctx.GlobalString(configurationFile.Name))
	if err != nil {
		return err
	}

	profileCfg, err := cfg.Profile(ctx.GlobalString(profile.Name))
	if err != nil {
		return err
	}

	log.Info("Starting launcher", "version", appVersion, "pid", os.Getpid(), "profile", profileCfg.Name)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	handler, err := factory.NewComponentsHandler(profileCfg, os.Environ(), sigs)
	if err != nil {
		return err
	}

	exitCode = handler.Launch()

	log.Info("Entry point exited, closing launcher", "exit code", exitCode)

	return nil
}
