package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/vk/topicgen/internal/app"
	"github.com/vk/topicgen/internal/buildinfo"
)

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "TOPICGEN_"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefaults are the option values taken from the environment when the
// matching flag is not given.
type envDefaults struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	HeaderName string `env:"HEADER_NAME" envDefault:""`
	SourceName string `env:"SOURCE_NAME" envDefault:""`
	Strict     bool   `env:"STRICT" envDefault:"false"`
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return parse(args, output, env.ToMap(os.Environ()))
}

func parse(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("topicgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
topicgen - Generates the mreq topic registry from annotated schema files.

Usage:
  topicgen [options] <schema>... <output_dir>

Arguments:
  schema
    A schema file or a directory searched for *.proto files.
  output_dir
    Directory that receives the generated declarations and definitions.

Environment:
  TOPICGEN_LOG_LEVEL, TOPICGEN_LOG_FORMAT, TOPICGEN_HEADER_NAME,
  TOPICGEN_SOURCE_NAME, TOPICGEN_STRICT provide defaults for the matching flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	headerFlag := flagSet.String("header", "", "File name of the generated declarations header.")
	sourceFlag := flagSet.String("source", "", "File name of the generated definitions source.")
	descriptorSetFlag := flagSet.String("descriptor-set", "", "Serialized FileDescriptorSet produced by the schema compiler.")
	strictFlag := flagSet.Bool("strict", false, "Fail when distinct topics sanitize to the same identifier.")
	checkFlag := flagSet.Bool("check", false, "Verify the output directory is up to date instead of writing.")
	envFileFlag := flagSet.String("env-file", "", "Dotenv file providing TOPICGEN_* defaults.")
	versionFlag := flagSet.Bool("version", false, "Print version information and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *versionFlag {
		fmt.Fprintln(output, buildinfo.String())
		return nil, true, nil
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No schema files provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() == 1 {
		return nil, false, &ExitError{Code: 2, Message: "missing output directory: expected <schema>... <output_dir>"}
	}

	defaults, err := loadEnvDefaults(*envFileFlag, environ)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name, flagValue, envValue string) string {
		if set[name] {
			return flagValue
		}
		return envValue
	}

	logFormat := strings.ToLower(pick("log-format", *logFormatFlag, defaults.LogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(pick("log-level", *logLevelFlag, defaults.LogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	strict := defaults.Strict
	if set["strict"] {
		strict = *strictFlag
	}
	slog.Debug("CLI parameter validation complete.")

	positional := flagSet.Args()
	config, err := app.NewConfig(app.Config{
		Inputs:        positional[:len(positional)-1],
		OutputDir:     positional[len(positional)-1],
		HeaderName:    pick("header", *headerFlag, defaults.HeaderName),
		SourceName:    pick("source", *sourceFlag, defaults.SourceName),
		DescriptorSet: *descriptorSetFlag,
		Strict:        strict,
		Check:         *checkFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// loadEnvDefaults reads the TOPICGEN_* variables. Values from envFile are
// used only where environ does not set the variable; the process
// environment is never modified.
func loadEnvDefaults(envFile string, environ map[string]string) (envDefaults, error) {
	merged := make(map[string]string, len(environ))
	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		if err != nil {
			return envDefaults{}, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range fromFile {
			merged[k] = v
		}
		slog.Debug("Env file loaded.", "path", envFile, "vars", len(fromFile))
	}
	for k, v := range environ {
		merged[k] = v
	}

	var d envDefaults
	err := env.ParseWithOptions(&d, env.Options{
		Prefix:      EnvPrefix,
		Environment: merged,
	})
	if err != nil {
		return envDefaults{}, fmt.Errorf("invalid environment configuration: %w", err)
	}
	return d, nil
}
