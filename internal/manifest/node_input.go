// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines a node's input ports and the logic for parsing them.
//
// Every input has a declared type, and may have a default. Defaults are what
// the host shows in a freshly created node and what the registry substitutes
// when a caller omits the input, so they must already have the declared type.
package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
)

// InputDefinition defines a single input port of a node.
type InputDefinition struct {
	// Name is taken from the block label, e.g. `input "node_list" {}`.
	Name string

	Type        cty.Type
	Description string

	// Default is used when the caller omits the input. A nil Default makes
	// the input required.
	Default *cty.Value

	// Multiline is an editor hint for text inputs.
	Multiline bool
}

// inputBodySchema is the HCL schema for the body of an `input` block.
var inputBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but we check for its existence manually
		// to provide a better error message.
		{Name: "type"},
		{Name: "description"},
		{Name: "default"},
		{Name: "multiline"},
	},
}

// parseNodeInputs decodes all 'input' blocks in declaration order.
func parseNodeInputs(blocks hcl.Blocks) ([]InputDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var inputs []InputDefinition
	seen := make(map[string]struct{})

	for _, block := range blocks.OfType("input") {
		// The schema guarantees us one label.
		name := block.Labels[0]

		if _, exists := seen[name]; exists {
			diags = append(diags, duplicateDiag("input", name, block))
			continue
		}
		seen[name] = struct{}{}

		content, contentDiags := block.Body.Content(inputBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		typeAttr, exists := content.Attributes["type"]
		if !exists {
			missingItemRange := block.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing 'type' attribute",
				Detail:   "The 'type' attribute is required for all input blocks.",
				Subject:  &missingItemRange,
			})
			continue
		}

		ctyType, typeDiags := typeFromExpr(typeAttr.Expr)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}

		def := InputDefinition{Name: name, Type: ctyType}

		if attr, exists := content.Attributes["description"]; exists {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &def.Description)...)
		}
		if attr, exists := content.Attributes["multiline"]; exists {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &def.Multiline)...)
		}

		if attr, exists := content.Attributes["default"]; exists {
			// A nil eval context is used because defaults must be literal values.
			val, valDiags := attr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			if !val.Type().Equals(ctyType) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid default value type",
					Detail:   fmt.Sprintf("The default value for '%s' is not compatible with its type, '%s'.", name, ctyType.FriendlyName()),
					Subject:  attr.Expr.Range().Ptr(),
				})
				continue
			}
			def.Default = &val
		}

		inputs = append(inputs, def)
	}

	return inputs, diags
}
