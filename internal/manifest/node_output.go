// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines a node's output ports. Their declaration order is the
// order of the tuple the host receives.
package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
)

// OutputDefinition defines a single output port of a node.
type OutputDefinition struct {
	Name        string
	Type        cty.Type
	Description string
}

// outputBodySchema is the HCL schema for the body of an `output` block.
var outputBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "description"},
	},
}

// parseNodeOutputs decodes all 'output' blocks in declaration order.
func parseNodeOutputs(blocks hcl.Blocks) ([]OutputDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var outputs []OutputDefinition
	seen := make(map[string]struct{})

	for _, block := range blocks.OfType("output") {
		name := block.Labels[0]

		if _, exists := seen[name]; exists {
			diags = append(diags, duplicateDiag("output", name, block))
			continue
		}
		seen[name] = struct{}{}

		content, contentDiags := block.Body.Content(outputBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		// The schema enforces that 'type' is present.
		ctyType, typeDiags := typeFromExpr(content.Attributes["type"].Expr)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}

		def := OutputDefinition{Name: name, Type: ctyType}
		if attr, exists := content.Attributes["description"]; exists {
			diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &def.Description)...)
		}

		outputs = append(outputs, def)
	}

	return outputs, diags
}
