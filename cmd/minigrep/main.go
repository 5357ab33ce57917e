package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv config.LookupFunc, stdout, stderr io.Writer) int {
	name := "minigrep"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	exitCode, terminated := 0, false
	kingpinApp := kingpin.New("minigrep", "Print every line of a file that contains the query.").
		UsageWriter(stdout).
		ErrorWriter(stderr).
		Terminate(func(code int) {
			exitCode, terminated = code, true
		})
	kingpinApp.Version(version)
	positional := kingpinApp.Arg("args", "Query followed by the file to search").Strings()

	_, parseErr := kingpinApp.Parse(kingpinArgs(args))
	if terminated {
		return exitCode
	}
	if parseErr != nil {
		return argumentsError(stderr, parseErr)
	}

	cfg, err := config.New(append([]string{name}, *positional...), lookupEnv)
	if err != nil {
		return argumentsError(stderr, err)
	}

	settings, err := config.LoadSettings(lookupEnv)
	if err != nil {
		return argumentsError(stderr, err)
	}

	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return argumentsError(stderr, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger, application.WithOutput(stdout))
	if err := app.Run(); err != nil {
		logger.Debug("search failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error during execution: %v\n", err)
		return 1
	}

	return 0
}

// kingpinArgs keeps every token positional unless the first one asks for
// help or the version, so queries such as "-x", "--" or "@file" are searched
// for literally instead of being read as flags or argument files.
func kingpinArgs(args []string) []string {
	if len(args) > 0 {
		switch args[0] {
		case "--help", "--version":
			return args[:1]
		}
	}
	return append([]string{"--"}, args...)
}

func argumentsError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error during arguments parsing: %v\n", err)
	return 1
}
