package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/specialistvlad/batchignore/internal/app"
	"github.com/specialistvlad/batchignore/internal/cli"
	"github.com/specialistvlad/batchignore/internal/registry"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// main is the entrypoint for the batchignore application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Results go to outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	req, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	batchApp, err := app.NewApp(logW, req.Config)
	if err != nil {
		return fmt.Errorf("application startup failed: %w", err)
	}

	if req.List {
		return printNodes(outW, batchApp)
	}

	outputs, err := batchApp.Invoke(context.Background(), req.NodeID, req.Args)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	if req.Output == cli.OutputJSON {
		return printJSON(outW, outputs)
	}
	return printText(outW, outputs)
}

func printNodes(w io.Writer, a *app.App) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY")
	for _, def := range a.Nodes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", def.ID, def.DisplayName(a.Locale()), def.Category)
	}
	return tw.Flush()
}

// printText writes one output value per line in declaration order. Strings
// are written as-is so a formatted list can be redirected straight to a file.
func printText(w io.Writer, outputs []registry.Output) error {
	for _, out := range outputs {
		if _, err := fmt.Fprintln(w, textValue(out.Value)); err != nil {
			return err
		}
	}
	return nil
}

func textValue(v cty.Value) string {
	switch {
	case v.IsNull():
		return ""
	case v.Type() == cty.String:
		return v.AsString()
	case v.Type() == cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1)
	default:
		return v.GoString()
	}
}

// printJSON writes all outputs as a single JSON object keyed by output name.
func printJSON(w io.Writer, outputs []registry.Output) error {
	attrs := make(map[string]cty.Value, len(outputs))
	for _, out := range outputs {
		attrs[out.Name] = out.Value
	}
	obj := cty.EmptyObjectVal
	if len(attrs) > 0 {
		obj = cty.ObjectVal(attrs)
	}

	data, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return fmt.Errorf("encode outputs: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
