// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file maps a node's lifecycle event to the name of the Go handler the
// registry must invoke for it.
package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// NodeLifecycle maps a node's events to Go handler names.
type NodeLifecycle struct {
	OnRun string `hcl:"on_run,attr"`
}

// parseNodeLifecycle decodes the unique, required 'lifecycle' block.
func parseNodeLifecycle(blocks hcl.Blocks, missing hcl.Range) (NodeLifecycle, hcl.Diagnostics) {
	var lifecycle NodeLifecycle
	var diags hcl.Diagnostics

	found := blocks.OfType("lifecycle")
	switch {
	case len(found) == 0:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing lifecycle block",
			Detail:   "Every node must declare `lifecycle { on_run = \"...\" }` naming its Go handler.",
			Subject:  &missing,
		})
		return lifecycle, diags
	case len(found) > 1:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Duplicate lifecycle block",
			Detail:   "Only one lifecycle block is allowed per node.",
			Subject:  &found[1].DefRange,
		})
		return lifecycle, diags
	}

	diags = append(diags, gohcl.DecodeBody(found[0].Body, nil, &lifecycle)...)
	if !diags.HasErrors() && lifecycle.OnRun == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Empty lifecycle handler",
			Detail:   "The 'on_run' attribute must name a registered Go handler.",
			Subject:  &found[0].DefRange,
		})
	}
	return lifecycle, diags
}
