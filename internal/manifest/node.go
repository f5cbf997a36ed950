// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Node, the declared contract of one host-visible node: its
// stable identifier, the Go handler that implements it, and its typed ports.
package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/batchignore/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Node is the format-agnostic representation of a node manifest.
type Node struct {
	// ID is the stable identifier the host registers the node under.
	ID            string
	Description   string
	Category      string
	DisplayNames  map[string]string
	FSInformation *FSInfo
	Lifecycle     NodeLifecycle
	Inputs        []InputDefinition
	Outputs       []OutputDefinition
}

// Input returns the input definition called name.
func (n *Node) Input(name string) (InputDefinition, bool) {
	for _, in := range n.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return InputDefinition{}, false
}

// InputObjectType returns the cty object type with one attribute per input.
func (n *Node) InputObjectType() cty.Type {
	attrs := make(map[string]cty.Type, len(n.Inputs))
	for _, in := range n.Inputs {
		attrs[in.Name] = in.Type
	}
	return cty.Object(attrs)
}

// OutputObjectType returns the cty object type with one attribute per output.
func (n *Node) OutputObjectType() cty.Type {
	attrs := make(map[string]cty.Type, len(n.Outputs))
	for _, out := range n.Outputs {
		attrs[out.Name] = out.Type
	}
	return cty.Object(attrs)
}

// fileSchema defines the top-level structure of a manifest file.
type fileSchema struct {
	Nodes []*hclNode `hcl:"node,block"`
}

// hclNode represents a single 'node' block for decoding purposes.
type hclNode struct {
	ID   string   `hcl:"id,label"`
	Body hcl.Body `hcl:",remain"`
}

var nodeBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "category"},
		{Name: "display_names"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "lifecycle"},
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
	},
}

// ParseFile decodes every 'node' block in hclFile.
func ParseFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Node, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing node definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &fileSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	nodes := make([]*Node, 0, len(schema.Nodes))
	for _, parsed := range schema.Nodes {
		content, contentDiags := parsed.Body.Content(nodeBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this node but keep reporting on the others.
		}

		node := &Node{
			ID:            parsed.ID,
			DisplayNames:  map[string]string{},
			FSInformation: NewFSInfo(filePath),
		}

		for name, target := range map[string]any{
			"description":   &node.Description,
			"category":      &node.Category,
			"display_names": &node.DisplayNames,
		} {
			if attr, exists := content.Attributes[name]; exists {
				allDiags = append(allDiags, gohcl.DecodeExpression(attr.Expr, nil, target)...)
			}
		}

		var lifecycleDiags hcl.Diagnostics
		node.Lifecycle, lifecycleDiags = parseNodeLifecycle(content.Blocks, parsed.Body.MissingItemRange())
		allDiags = append(allDiags, lifecycleDiags...)

		var inputDiags hcl.Diagnostics
		node.Inputs, inputDiags = parseNodeInputs(content.Blocks)
		allDiags = append(allDiags, inputDiags...)

		var outputDiags hcl.Diagnostics
		node.Outputs, outputDiags = parseNodeOutputs(content.Blocks)
		allDiags = append(allDiags, outputDiags...)

		nodes = append(nodes, node)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed node definitions", "count", len(nodes))
	return nodes, allDiags
}

// duplicateDiag reports a second block with an already-used label.
func duplicateDiag(kind, name string, block *hcl.Block) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s definition", kind),
		Detail:   fmt.Sprintf("An %s named '%s' has already been defined.", kind, name),
		Subject:  &block.DefRange,
	}
}
