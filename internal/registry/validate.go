package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// port is the part of an input or output definition the parity check needs.
type port struct {
	name string
	ty   cty.Type
}

// Validate performs a strict parity check between manifests and Go code.
// It checks that every node's handler exists, that the declared ports and the
// struct fields match one to one, and that their types are compatible.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, def := range r.Nodes() {
		handler, ok := r.handlers[def.Lifecycle.OnRun]
		if !ok {
			errs = append(errs, fmt.Sprintf("node '%s': handler '%s' is not registered", def.ID, def.Lifecycle.OnRun))
			continue
		}

		inputs := make([]port, 0, len(def.Inputs))
		for _, in := range def.Inputs {
			inputs = append(inputs, port{name: in.Name, ty: in.Type})
		}
		outputs := make([]port, 0, len(def.Outputs))
		for _, out := range def.Outputs {
			outputs = append(outputs, port{name: out.Name, ty: out.Type})
		}

		errs = append(errs, checkPorts(def.ID, "input", inputs, handler.InputType)...)
		errs = append(errs, checkPorts(def.ID, "output", outputs, handler.OutputType)...)
		logger.Debug("Node checked against its handler.", "node", def.ID, "handler", def.Lifecycle.OnRun)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// checkPorts compares declared ports with the cty-tagged fields of goType.
func checkPorts(nodeID, kind string, ports []port, goType reflect.Type) []string {
	if goType.Kind() != reflect.Struct {
		return []string{fmt.Sprintf("node '%s': Go %s type %s is not a struct", nodeID, kind, goType)}
	}

	var errs []string
	goFields := taggedFields(goType)

	declared := make(map[string]struct{}, len(ports))
	for _, p := range ports {
		declared[p.name] = struct{}{}

		field, ok := goFields[p.name]
		if !ok {
			errs = append(errs, fmt.Sprintf("node '%s': manifest declares %s '%s' which is not found in Go struct", nodeID, kind, p.name))
			continue
		}

		goFieldType, err := gocty.ImpliedType(reflect.Zero(field.Type).Interface())
		if err != nil {
			errs = append(errs, fmt.Sprintf("node '%s', %s '%s': could not imply cty type from Go field type %s: %v", nodeID, kind, p.name, field.Type, err))
			continue
		}
		if !p.ty.Equals(goFieldType) {
			errs = append(errs, fmt.Sprintf("node '%s', %s '%s': type mismatch. Manifest requires '%s' but Go struct field '%s' provides '%s'",
				nodeID, kind, p.name, p.ty.FriendlyName(), field.Name, goFieldType.FriendlyName()))
		}
	}

	for name := range goFields {
		if _, ok := declared[name]; !ok {
			errs = append(errs, fmt.Sprintf("node '%s': Go struct has field for %s '%s' which is not declared in manifest", nodeID, kind, name))
		}
	}
	return errs
}

// taggedFields returns the exported fields of t keyed by their cty tag.
func taggedFields(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("cty"), ",")[0]
		if tag != "" && tag != "-" {
			fields[tag] = field
		}
	}
	return fields
}
