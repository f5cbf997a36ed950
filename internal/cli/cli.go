package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/batchignore/internal/app"
	"github.com/zclconf/go-cty/cty"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Output formats accepted by -output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Request is a parsed command line.
type Request struct {
	Config *app.Config

	// List asks for the registered nodes instead of an invocation.
	List bool

	NodeID string
	// Args holds the node inputs as strings; the registry converts them to
	// the declared port types.
	Args   map[string]cty.Value
	Output string
}

// Parse processes command-line arguments. Flag defaults come from the
// environment (see app.LoadEnv). It returns a populated Request, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Request, bool, error) {
	slog.Debug("CLI parser started.")
	defaults, err := app.LoadEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("batchignore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
batchignore - Runs the batch-ignore list nodes outside of the graph editor.

Usage:
  batchignore [options] NODE_ID [input=value ...]
  batchignore -list

Arguments:
  NODE_ID
    Identifier of the node to run, e.g. BatchIgnoreManager.
  input=value
    Value for one node input. Unset inputs take their declared default.

Options:
`)
		flagSet.PrintDefaults()
	}

	listFlag := flagSet.Bool("list", false, "List the registered nodes and exit.")
	outputFlag := flagSet.String("output", OutputText, "Result format. Options: 'text' or 'json'.")
	localeFlag := flagSet.String("locale", defaults.Locale, "Language of status text and display names. Options: 'zh-Hans' or 'en'.")
	manifestsFlag := flagSet.String("manifests", defaults.ManifestsPath, "Directory of .hcl manifests overriding the built-in node definitions.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	outputFormat := strings.ToLower(*outputFlag)
	if outputFormat != OutputText && outputFormat != OutputJSON {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'text' or 'json'"}
	}

	config, err := app.NewConfig(app.Config{
		ManifestsPath: *manifestsFlag,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
		Locale:        *localeFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	req := &Request{
		Config: config,
		List:   *listFlag,
		Output: outputFormat,
	}
	if req.List {
		if flagSet.NArg() > 0 {
			return nil, false, &ExitError{Code: 2, Message: "-list takes no arguments"}
		}
		return req, false, nil
	}

	if flagSet.NArg() == 0 {
		slog.Debug("No node id provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	req.NodeID = flagSet.Arg(0)
	req.Args, err = parseInputs(flagSet.Args()[1:])
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "node", req.NodeID, "inputs", len(req.Args))
	return req, false, nil
}

// parseInputs turns "name=value" pairs into string values. Only the first
// '=' separates, so values may contain '='.
func parseInputs(pairs []string) (map[string]cty.Value, error) {
	inputs := make(map[string]cty.Value, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid input %q: expected name=value", pair)
		}
		if _, dup := inputs[name]; dup {
			return nil, fmt.Errorf("input '%s' given more than once", name)
		}
		inputs[name] = cty.StringVal(value)
	}
	return inputs, nil
}
