package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Handler holds the compiled Go parts of a node's on_run function. Input and
// output structs map ports to fields with `cty:"port_name"` tags.
type Handler struct {
	InputType  reflect.Type
	OutputType reflect.Type

	run func(ctx context.Context, in cty.Value, outTy cty.Type) (cty.Value, error)
}

// NewHandler wraps a typed node function.
func NewHandler[I, O any](fn func(ctx context.Context, in *I) *O) *Handler {
	return &Handler{
		InputType:  reflect.TypeFor[I](),
		OutputType: reflect.TypeFor[O](),
		run: func(ctx context.Context, in cty.Value, outTy cty.Type) (cty.Value, error) {
			input := new(I)
			if err := gocty.FromCtyValue(in, input); err != nil {
				return cty.NilVal, fmt.Errorf("decoding input: %w", err)
			}

			out := fn(ctx, input)
			if out == nil {
				return cty.NilVal, errors.New("handler returned no output")
			}

			val, err := gocty.ToCtyValue(*out, outTy)
			if err != nil {
				return cty.NilVal, fmt.Errorf("encoding output: %w", err)
			}
			return val, nil
		},
	}
}

// Register registers a Go handler under name.
func (r *Registry) Register(name string, handler *Handler) {
	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("node handler with name '%s' already registered", name))
	}
	slog.Debug("Registering node handler.", "name", name)
	r.handlers[name] = handler
}
