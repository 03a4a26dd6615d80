// Package cli provides command-line interface functionality for edfdur.
package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/edfdur/internal/batch"
	"github.com/AndreyAkinshin/edfdur/internal/config"
	"github.com/AndreyAkinshin/edfdur/internal/errors"
	"github.com/AndreyAkinshin/edfdur/internal/filelist"
	"github.com/AndreyAkinshin/edfdur/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the writer shared by all CLI output.
var out = output.New()

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	opts, paths, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		out.Errorln("run 'edfdur --help' for usage")
		return errors.ExitConfigError
	}

	if opts.Help {
		printUsage()
		return errors.ExitSuccess
	}
	if opts.Version {
		out.Println("edfdur %s", Version)
		return errors.ExitSuccess
	}

	cfg, code := loadConfig(opts)
	if code != errors.ExitSuccess {
		return code
	}
	applySettings(cfg, opts)

	envFiles := append(append([]string{}, cfg.EnvFiles...), opts.EnvFiles...)
	if err := loadEnvFiles(envFiles); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if len(paths) == 0 {
		printUsage()
	}

	agg := batch.New(batch.Options{
		Lister: filelist.Loader{CommentPrefix: cfg.List.CommentPrefix},
		Writer: out,
	})
	if _, err := agg.Run(paths); err != nil {
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// GlobalOptions holds parsed flags.
type GlobalOptions struct {
	Help       bool
	Version    bool
	Verbose    bool
	DebugLevel string
	ConfigPath string
	EnvFiles   []string
	Color      string
}

// parseGlobalFlags manually parses flags from arguments.
//
// Flags may appear anywhere among the paths. Everything after -- is a path,
// so files whose names start with a dash can still be given.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var paths []string

	// value returns the argument of a flag given as "--name value" or "--name=value".
	value := func(i int, name string) (string, int, error) {
		arg := args[i]
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"="), i + 1, nil
		}
		if i+1 >= len(args) {
			return "", i, fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], i + 2, nil
	}

	i := 0
	for i < len(args) {
		arg := args[i]
		var err error

		switch {
		case arg == "-h" || arg == "--help":
			opts.Help = true
			i++
		case arg == "--version":
			opts.Version = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--no-color":
			opts.Color = "never"
			i++
		case arg == "--debug-level" || strings.HasPrefix(arg, "--debug-level="):
			opts.DebugLevel, i, err = value(i, "--debug-level")
		case arg == "--config" || strings.HasPrefix(arg, "--config="):
			opts.ConfigPath, i, err = value(i, "--config")
		case arg == "--env-file" || strings.HasPrefix(arg, "--env-file="):
			var f string
			f, i, err = value(i, "--env-file")
			opts.EnvFiles = append(opts.EnvFiles, f)
		case arg == "--color" || strings.HasPrefix(arg, "--color="):
			opts.Color, i, err = value(i, "--color")
		case arg == "--":
			paths = append(paths, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, nil, fmt.Errorf("unknown flag %q", arg)
		default:
			paths = append(paths, arg)
			i++
		}
		if err != nil {
			return nil, nil, err
		}
	}

	if err := validateGlobalOptions(opts); err != nil {
		return nil, nil, err
	}

	return opts, paths, nil
}

// validateGlobalOptions checks that flag values are valid.
func validateGlobalOptions(opts *GlobalOptions) error {
	if opts.Verbose && opts.DebugLevel != "" {
		return fmt.Errorf("--verbose and --debug-level are mutually exclusive")
	}
	if opts.DebugLevel != "" {
		if err := config.ValidateDebugLevel(opts.DebugLevel); err != nil {
			return fmt.Errorf("--debug-level: %v", err)
		}
	}
	if opts.Color != "" {
		if err := config.ValidateColor(opts.Color); err != nil {
			return fmt.Errorf("--color: %v", err)
		}
	}
	return nil
}

// loadConfig reads the config file named by --config, or the nearest
// .edfdur.yaml. Without either, defaults are used.
// Returns the config and exit code 0 on success.
func loadConfig(opts *GlobalOptions) (*config.Config, int) {
	path := opts.ConfigPath
	if path == "" {
		found, err := config.Find()
		if err != nil {
			return config.Default(), errors.ExitSuccess
		}
		path = found
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		out.Warning("%s: %s", path, w)
	}
	if err != nil {
		cerr := errors.Configf("%s: %v", path, err)
		out.ErrorPrefix("%v", cerr)
		return nil, cerr.ExitCode()
	}
	return cfg, errors.ExitSuccess
}

// applySettings configures the output writer. Flags override the config file.
func applySettings(cfg *config.Config, opts *GlobalOptions) {
	color := cfg.Color
	if opts.Color != "" {
		color = opts.Color
	}
	out.SetColor(output.ColorEnabled(color))

	level, _ := output.ParseDebugLevel(cfg.DebugLevel)
	switch {
	case opts.DebugLevel != "":
		level, _ = output.ParseDebugLevel(opts.DebugLevel)
	case opts.Verbose:
		level = output.DebugBrief
	}
	out.SetDebugLevel(level)
	out.Debug(output.DebugBrief, "debug level: %s", level.Title())
}
