package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Output is one named value of a node's output tuple.
type Output struct {
	Name  string
	Value cty.Value
}

// Invoke runs the node registered under id with args.
//
// Omitted or null arguments take the declared default. Every argument is
// converted to the declared type, so a host may pass text for a bool port.
// The outputs come back in manifest declaration order. A returned error means
// the call itself was malformed (unknown node or input, missing required
// input, unconvertible value); node-level failures are reported inside the
// outputs.
func (r *Registry) Invoke(ctx context.Context, id string, args map[string]cty.Value) ([]Output, error) {
	def, ok := r.definitions[id]
	if !ok {
		return nil, fmt.Errorf("unknown node '%s'", id)
	}
	handler, ok := r.handlers[def.Lifecycle.OnRun]
	if !ok {
		return nil, fmt.Errorf("node '%s': handler '%s' is not registered", id, def.Lifecycle.OnRun)
	}

	var unknown []string
	for name := range args {
		if _, ok := def.Input(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("node '%s' has no input named '%s'", id, strings.Join(unknown, "', '"))
	}

	attrs := make(map[string]cty.Value, len(def.Inputs))
	for _, in := range def.Inputs {
		val, given := args[in.Name]
		if !given || val.IsNull() {
			if in.Default == nil {
				return nil, fmt.Errorf("node '%s': missing required input '%s'", id, in.Name)
			}
			val = *in.Default
		}

		converted, err := convert.Convert(val, in.Type)
		if err != nil {
			return nil, fmt.Errorf("node '%s', input '%s': %w", id, in.Name, err)
		}
		attrs[in.Name] = converted
	}

	ctx = ctxlog.With(ctx, "node", id)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Invoking node.", "handler", def.Lifecycle.OnRun)

	result, err := handler.run(ctx, cty.ObjectVal(attrs), def.OutputObjectType())
	if err != nil {
		return nil, fmt.Errorf("node '%s': %w", id, err)
	}

	outputs := make([]Output, 0, len(def.Outputs))
	for _, out := range def.Outputs {
		outputs = append(outputs, Output{Name: out.Name, Value: result.GetAttr(out.Name)})
	}
	logger.Debug("Node finished.", "outputs", len(outputs))
	return outputs, nil
}
