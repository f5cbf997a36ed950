// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package manifest provides the Go representation of the node manifests: the
// static registration table that tells the host which nodes exist, what they
// are called in each locale, and which typed ports they expose.
//
// A manifest is an HCL file with one or more `node` blocks:
//
//	node "BatchIgnoreManager" {
//	  category      = "utils"
//	  display_names = { "en" = "Batch Ignore Manager" }
//
//	  lifecycle { on_run = "OnRunValidateIgnoreList" }
//
//	  input "ignore_enabled" {
//	    type    = bool
//	    default = false
//	  }
//	  output "status" { type = string }
//	}
//
// Why keep the ports in HCL instead of Go?
//
// The port list is configuration, not logic. Keeping it declarative lets the
// registry check it against the Go handler structs at startup (so the two can
// never drift apart silently) and lets operators override display names or
// defaults without rebuilding. Declaration order is significant: it is the
// order in which the host receives a node's outputs.
package manifest
